package polarity

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// BuildMode selects what the feature builder emits.
type BuildMode int

const (
	// BayesMode emits Laplace-corrected naive-Bayes features.
	BayesMode BuildMode = iota
	// DomainMode emits a plain word polarity lexicon.
	DomainMode
)

// String returns the mode name.
func (m BuildMode) String() string {
	if m == DomainMode {
		return "domain"
	}
	return "bayes"
}

// Feature is a single word or a 2-3 word combination with its class
// statistics.
type Feature struct {
	Tokens []string

	PosDocs int // documents of the positive class containing the feature
	NegDocs int

	PPos float64 // P(present | positive)
	PNeg float64 // P(present | negative)

	PosPMI   float64
	NegPMI   float64
	Polarity float64

	Relevant bool
}

// Key returns the space-joined tokens.
func (f Feature) Key() string {
	return combinationKey(f.Tokens)
}

// Frequency is the number of documents containing the feature.
func (f Feature) Frequency() int {
	return f.PosDocs + f.NegDocs
}

// IsCombination reports whether the feature spans more than one token.
func (f Feature) IsCombination() bool {
	return len(f.Tokens) > 1
}

func (f Feature) isRelevant(minPMI float64, minFrequency int) bool {
	return max(f.PosPMI, f.NegPMI) >= minPMI && f.Frequency() >= minFrequency
}

// FeatureBuilder computes PMI statistics over a labeled corpus.
type FeatureBuilder struct {
	cfg Config
}

// NewFeatureBuilder creates a builder with the given thresholds.
func NewFeatureBuilder(cfg Config) *FeatureBuilder {
	return &FeatureBuilder{cfg: cfg}
}

// Words scores every distinct content word of the usable reviews. In
// BayesMode zero class counts are bumped to one before scoring.
func (b *FeatureBuilder) Words(reviews []Review, mode BuildMode) []Feature {
	order, counts := countDocuments(reviews, func(r Review) [][]string {
		var out [][]string
		for _, tok := range r.Tokens {
			out = append(out, []string{tok})
		}
		return out
	})

	b.cfg.logger().Info("scored word features",
		slog.String("mode", mode.String()),
		slog.Int("candidates", len(order)))

	return b.score(order, counts, totalsOf(reviews), mode == BayesMode)
}

// Combinations scores every distinct 2-3 token combination of the
// negation-preserving token streams. Combinations are always
// Laplace-corrected.
func (b *FeatureBuilder) Combinations(reviews []Review) []Feature {
	size := b.cfg.windowSize()
	order, counts := countDocuments(reviews, func(r Review) [][]string {
		return Combinations(r.NegationTokens, size)
	})

	b.cfg.logger().Info("scored combination features",
		slog.Int("window", size),
		slog.Int("candidates", len(order)))

	return b.score(order, counts, totalsOf(reviews), true)
}

// DomainLexicon builds the relevant entries of a domain-specific lexicon.
func (b *FeatureBuilder) DomainLexicon(reviews []Review) []Entry {
	var entries []Entry
	for _, f := range b.Words(reviews, DomainMode) {
		if f.Relevant {
			entries = append(entries, Entry{Word: f.Key(), Polarity: f.Polarity})
		}
	}
	return entries
}

type docCount struct {
	tokens []string
	pos    int
	neg    int
}

// countDocuments counts, per candidate, the usable documents of each class
// that contain it. Candidates are returned in order of first appearance.
func countDocuments(reviews []Review, extract func(Review) [][]string) ([]string, map[string]*docCount) {
	var order []string
	counts := make(map[string]*docCount)

	for _, r := range reviews {
		if !r.Usable() {
			continue
		}
		seen := make(map[string]bool)
		for _, tokens := range extract(r) {
			key := combinationKey(tokens)
			if seen[key] {
				continue
			}
			seen[key] = true

			c, ok := counts[key]
			if !ok {
				c = &docCount{tokens: tokens}
				counts[key] = c
				order = append(order, key)
			}
			if r.Label == Positive {
				c.pos++
			} else {
				c.neg++
			}
		}
	}

	return order, counts
}

func (b *FeatureBuilder) score(order []string, counts map[string]*docCount, totals classTotals, correct bool) []Feature {
	features := make([]Feature, len(order))
	posPMI := make([]float64, len(order))
	negPMI := make([]float64, len(order))
	polarity := make([]float64, len(order))

	n := totals.total()
	for i, key := range order {
		c := counts[key]
		pos, neg := c.pos, c.neg
		if correct {
			pos, neg = laplace(pos), laplace(neg)
		}

		f := Feature{
			Tokens:  c.tokens,
			PosDocs: pos,
			NegDocs: neg,
			PPos:    presence(c.pos, totals.pos),
			PNeg:    presence(c.neg, totals.neg),
		}
		posPMI[i] = pmi(pos, pos+neg, totals.pos, n)
		negPMI[i] = pmi(neg, pos+neg, totals.neg, n)
		polarity[i] = posPMI[i] - negPMI[i]
		features[i] = f
	}

	posPMI = normalizeSigned(posPMI)
	negPMI = normalizeSigned(negPMI)
	polarity = normalizeSigned(polarity)

	for i := range features {
		features[i].PosPMI = posPMI[i]
		features[i].NegPMI = negPMI[i]
		features[i].Polarity = polarity[i]
		features[i].Relevant = features[i].isRelevant(b.cfg.MinPMI, b.cfg.MinFrequency)
	}

	return features
}

// presence is the add-one estimate of P(present | class). It is strictly
// between 0 and 1 for any non-empty class.
func presence(count, classTotal int) float64 {
	return float64(count+1) / float64(classTotal+2)
}

// Relevant returns the features flagged as relevant.
func Relevant(features []Feature) []Feature {
	var out []Feature
	for _, f := range features {
		if f.Relevant {
			out = append(out, f)
		}
	}
	return out
}

// DefinitionVector merges feature tables and re-applies the relevance
// thresholds, so one persisted table can serve several configurations.
func DefinitionVector(minPMI float64, minFrequency int, tables ...[]Feature) []Feature {
	var out []Feature
	for _, table := range tables {
		for _, f := range table {
			if f.isRelevant(minPMI, minFrequency) {
				f.Relevant = true
				out = append(out, f)
			}
		}
	}
	return out
}

// WriteFeatureTable writes one feature per line as
// words#posDocs#negDocs#P(f|pos)#P(f|neg)#posPMI#negPMI.
func WriteFeatureTable(w io.Writer, features []Feature) error {
	bw := bufio.NewWriter(w)
	for _, f := range features {
		_, err := fmt.Fprintf(bw, "%s#%d#%d#%s#%s#%s#%s\n",
			f.Key(), f.PosDocs, f.NegDocs,
			formatFloat(f.PPos), formatFloat(f.PNeg),
			formatFloat(f.PosPMI), formatFloat(f.NegPMI))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFeatureTable parses a feature table. Malformed lines are logged and
// skipped.
func ReadFeatureTable(r io.Reader, log *slog.Logger) ([]Feature, error) {
	if log == nil {
		log = slog.Default()
	}

	var features []Feature
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		f, err := parseFeature(line)
		if err != nil {
			log.Warn("skipping feature line", slog.Int("line", lineNo), slog.String("error", err.Error()))
			continue
		}
		features = append(features, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading feature table: %w", err)
	}

	return features, nil
}

// LoadFeatureTable reads the feature table at path.
func LoadFeatureTable(path string, log *slog.Logger) ([]Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingInput, err)
	}
	defer f.Close()

	return ReadFeatureTable(f, log)
}

// SaveFeatureTable writes features to the file at path.
func SaveFeatureTable(path string, features []Feature) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFeatureTable(f, features); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseFeature(line string) (Feature, error) {
	fields := strings.Split(line, "#")
	if len(fields) != 7 {
		return Feature{}, fmt.Errorf("%w: want 7 fields, got %d", ErrMalformedRecord, len(fields))
	}

	tokens := strings.Fields(fields[0])
	if len(tokens) == 0 {
		return Feature{}, fmt.Errorf("%w: empty feature", ErrMalformedRecord)
	}

	var ints [2]int
	for i := range ints {
		v, err := strconv.Atoi(fields[1+i])
		if err != nil {
			return Feature{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		ints[i] = v
	}

	var floats [4]float64
	for i := range floats {
		v, err := strconv.ParseFloat(fields[3+i], 64)
		if err != nil {
			return Feature{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		floats[i] = v
	}
	for _, p := range floats[:2] {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return Feature{}, fmt.Errorf("%w: probability %v outside [0, 1]", ErrMalformedRecord, p)
		}
	}

	return Feature{
		Tokens:  tokens,
		PosDocs: ints[0],
		NegDocs: ints[1],
		PPos:    floats[0],
		PNeg:    floats[1],
		PosPMI:  floats[2],
		NegPMI:  floats[3],
	}, nil
}

// WriteDomainLexicon writes entries as "word polarity" lines.
func WriteDomainLexicon(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.Word, formatFloat(e.Polarity)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
