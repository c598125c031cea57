package polarity

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/valkey-io/valkey-go"
)

// noPOSField is the hash field used for entries without a POS.
const noPOSField = "_"

// ValkeyOptions configures a ValkeyStore.
type ValkeyOptions struct {
	Address  string
	Password string
	DB       int
	Prefix   string        // key prefix, e.g. "polarity:general"
	Timeout  time.Duration // per lookup
}

// ValkeyStore is a LexiconStore backed by Valkey. Each word is a hash whose
// fields are POS tags and whose values are polarities.
type ValkeyStore struct {
	client   valkey.Client
	prefix   string
	timeout  time.Duration
	analyzer *Analyzer
	log      *slog.Logger
}

// NewValkeyStore connects to Valkey and verifies the connection with PING.
func NewValkeyStore(opts ValkeyOptions, a *Analyzer, log *slog.Logger) (*ValkeyStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:      []string{opts.Address},
		Password:         opts.Password,
		SelectDB:         opts.DB,
		ConnWriteTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("creating valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging valkey: %w", err)
	}

	s := NewValkeyStoreFromClient(client, opts.Prefix, a, log)
	if opts.Timeout > 0 {
		s.timeout = opts.Timeout
	}
	s.log.Info("[ValkeyStore] connected", slog.String("address", opts.Address), slog.String("prefix", s.prefix))
	return s, nil
}

// NewValkeyStoreFromClient wraps an existing client.
func NewValkeyStoreFromClient(client valkey.Client, prefix string, a *Analyzer, log *slog.Logger) *ValkeyStore {
	if a == nil {
		a = NewAnalyzer()
	}
	if log == nil {
		log = slog.Default()
	}
	if prefix == "" {
		prefix = "polarity:lexicon"
	}
	return &ValkeyStore{
		client:   client,
		prefix:   prefix,
		timeout:  time.Second,
		analyzer: a,
		log:      log,
	}
}

// Close releases the underlying client.
func (s *ValkeyStore) Close() {
	s.client.Close()
}

// Put writes entries in a single pipeline.
func (s *ValkeyStore) Put(ctx context.Context, entries ...Entry) error {
	cmds := make([]valkey.Completed, 0, len(entries))
	for _, e := range entries {
		word := s.analyzer.Term(e.Word)
		if word == "" {
			continue
		}
		cmds = append(cmds, s.client.B().Hset().Key(s.key(word)).
			FieldValue().FieldValue(posField(e.POS), formatFloat(e.Polarity)).Build())
	}

	for i, res := range s.client.DoMulti(ctx, cmds...) {
		if err := res.Error(); err != nil {
			return fmt.Errorf("storing entry %d: %w", i, err)
		}
	}

	s.log.Info("[ValkeyStore] stored entries", slog.Int("count", len(cmds)))
	return nil
}

// Lookup fetches the word's hash. Connection errors are logged and treated
// as misses.
func (s *ValkeyStore) Lookup(word, pos string) Entry {
	term := s.analyzer.Term(word)
	if term == "" {
		return missEntry(term)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	fields, err := s.client.Do(ctx, s.client.B().Hgetall().Key(s.key(term)).Build()).AsStrMap()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			s.log.Warn("[ValkeyStore] lookup failed", slog.String("word", term), slog.String("error", err.Error()))
		}
		return missEntry(term)
	}

	return pickEntry(term, fields, pos)
}

func (s *ValkeyStore) key(word string) string {
	return s.prefix + ":" + word
}

func posField(pos string) string {
	if pos == "" {
		return noPOSField
	}
	return pos
}

// pickEntry selects the field matching pos, then the POS-less field, then
// the first field in lexical order.
func pickEntry(word string, fields map[string]string, pos string) Entry {
	if len(fields) == 0 {
		return missEntry(word)
	}

	field := ""
	if _, ok := fields[posField(pos)]; ok && pos != "" {
		field = pos
	} else if _, ok := fields[noPOSField]; ok {
		field = noPOSField
	} else {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		field = keys[0]
	}

	v, err := strconv.ParseFloat(fields[field], 64)
	if err != nil {
		return missEntry(word)
	}

	e := Entry{Word: word, Polarity: v}
	if field != noPOSField {
		e.POS = field
	}
	return e
}
