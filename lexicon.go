package polarity

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// LexiconStore looks up the polarity of a normalized word. A miss returns
// an entry with zero polarity and POS NoPOS; it is never an error.
type LexiconStore interface {
	Lookup(word, pos string) Entry
}

// missEntry is the result of a failed lookup.
func missEntry(word string) Entry {
	return Entry{Word: word, POS: NoPOS}
}

// MemoryStore is an in-memory LexiconStore keyed by normalized word. Each
// word may carry one entry per POS.
type MemoryStore struct {
	words    map[string][]Entry
	analyzer *Analyzer
	mutex    sync.RWMutex
}

// NewMemoryStore creates an empty store. Words are normalized with a.
func NewMemoryStore(a *Analyzer) *MemoryStore {
	if a == nil {
		a = NewAnalyzer()
	}
	return &MemoryStore{
		words:    make(map[string][]Entry),
		analyzer: a,
	}
}

// Add inserts entries, replacing any existing entry with the same word and
// POS. Words that normalize to nothing are ignored.
func (s *MemoryStore) Add(entries ...Entry) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, e := range entries {
		e.Word = s.analyzer.Term(e.Word)
		if e.Word == "" {
			continue
		}

		list := s.words[e.Word]
		replaced := false
		for i := range list {
			if list[i].POS == e.POS {
				list[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			list = append(list, e)
		}
		s.words[e.Word] = list
	}
}

// Lookup returns the entry whose POS equals pos, or else the first entry
// stored for the word.
func (s *MemoryStore) Lookup(word, pos string) Entry {
	term := s.analyzer.Term(word)

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	list := s.words[term]
	if len(list) == 0 {
		return missEntry(term)
	}
	if pos != "" {
		for _, e := range list {
			if e.POS == pos {
				return e
			}
		}
	}
	return list[0]
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	n := 0
	for _, list := range s.words {
		n += len(list)
	}
	return n
}

// Entries returns a copy of all stored entries sorted by word, then POS.
func (s *MemoryStore) Entries() []Entry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var out []Entry
	for _, list := range s.words {
		out = append(out, list...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Word != out[j].Word {
			return out[i].Word < out[j].Word
		}
		return out[i].POS < out[j].POS
	})
	return out
}

// Write saves a gob snapshot of the store to path.
func (s *MemoryStore) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating lexicon snapshot: %w", err)
	}

	if err := gob.NewEncoder(f).Encode(s.Entries()); err != nil {
		f.Close()
		return fmt.Errorf("encoding lexicon snapshot: %w", err)
	}
	return f.Close()
}

// LoadMemoryStore reads a snapshot written by Write.
func LoadMemoryStore(path string, a *Analyzer) (*MemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingInput, err)
	}
	defer f.Close()

	var entries []Entry
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding lexicon snapshot: %w", err)
	}

	s := NewMemoryStore(a)
	s.Add(entries...)
	return s, nil
}

// ReadPolArt parses a PolArt lexicon. Each line has the form
// "word POS=value TAG" or "word NEG=value TAG"; NEG entries are negated and
// lines with any other prefix (shifters, intensifiers) are skipped. Tags are
// reduced with MapSTTS.
func ReadPolArt(r io.Reader, log *slog.Logger) ([]Entry, error) {
	if log == nil {
		log = slog.Default()
	}

	var entries []Entry
	err := scanLines(r, func(lineNo int, line string) {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			log.Warn("skipping polart line", slog.Int("line", lineNo), slog.String("reason", "want 3 fields"))
			return
		}

		kind, value, ok := strings.Cut(fields[1], "=")
		if !ok || (kind != "POS" && kind != "NEG") {
			return
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Warn("skipping polart line", slog.Int("line", lineNo), slog.String("error", err.Error()))
			return
		}
		if kind == "NEG" {
			v = -v
		}

		entries = append(entries, Entry{Word: fields[0], POS: MapSTTS(fields[2]), Polarity: v})
	})
	if err != nil {
		return nil, fmt.Errorf("reading polart lexicon: %w", err)
	}

	return entries, nil
}

// ReadDomainLexicon parses "word polarity" lines. Entries carry no POS.
func ReadDomainLexicon(r io.Reader, log *slog.Logger) ([]Entry, error) {
	if log == nil {
		log = slog.Default()
	}

	var entries []Entry
	err := scanLines(r, func(lineNo int, line string) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Warn("skipping domain lexicon line", slog.Int("line", lineNo), slog.String("reason", "want 2 fields"))
			return
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			log.Warn("skipping domain lexicon line", slog.Int("line", lineNo), slog.String("error", err.Error()))
			return
		}
		entries = append(entries, Entry{Word: fields[0], Polarity: v})
	})
	if err != nil {
		return nil, fmt.Errorf("reading domain lexicon: %w", err)
	}

	return entries, nil
}

// LoadLexicon opens path and parses it with read.
func LoadLexicon(path string, read func(io.Reader, *slog.Logger) ([]Entry, error), log *slog.Logger) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingInput, err)
	}
	defer f.Close()

	return read(f, log)
}

func scanLines(r io.Reader, fn func(lineNo int, line string)) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fn(lineNo, line)
	}
	return scanner.Err()
}
