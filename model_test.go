package polarity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func endToEndModel(t *testing.T) (*Model, Tagger) {
	t.Helper()
	general := NewMemoryStore(nil)
	general.Add(
		Entry{Word: "gut", POS: POSAdjective, Polarity: 1},
		Entry{Word: "schlecht", POS: POSAdjective, Polarity: -1},
	)
	tagger := NewLexiconTagger(map[string]string{
		"gut":      POSAdjective,
		"schlecht": POSAdjective,
		"Produkt":  POSNoun,
		"sehr":     POSAdverb,
	}, "X", nil)

	m := ModelFromData("test", twoReviewCorpus(t), general, NewAnalyzer(), DefaultConfig())
	return m, tagger
}

func assertEndToEnd(t *testing.T, m *Model, tagger Tagger) {
	t.Helper()
	classifiers, err := m.Classifiers(tagger)
	if err != nil {
		t.Fatalf("Classifiers failed: %v", err)
	}
	if len(classifiers) != len(Kinds()) {
		t.Fatalf("Got %d classifiers, want %d", len(classifiers), len(Kinds()))
	}

	for _, c := range classifiers {
		if got := c.Classify("Das Produkt ist sehr gut").Polarity; got != Positive {
			t.Errorf("%s: positive review classified as %v", c.Kind(), got)
		}
		if got := c.Classify("Das Produkt ist sehr schlecht").Polarity; got != Negative {
			t.Errorf("%s: negative review classified as %v", c.Kind(), got)
		}
	}

	evals, err := EvaluateAll(twoReviewCorpus(t), classifiers...)
	if err != nil {
		t.Fatalf("EvaluateAll failed: %v", err)
	}
	for _, e := range evals {
		if e.Accuracy != 1 {
			t.Errorf("%s: accuracy %v, want 1", e.Kind, e.Accuracy)
		}
	}
}

func TestModelEndToEnd(t *testing.T) {
	m, tagger := endToEndModel(t)

	domain, ok := m.Domain.(*MemoryStore)
	if !ok {
		t.Fatalf("Expected an in-memory domain lexicon, got %T", m.Domain)
	}
	if domain.Len() != 3 {
		t.Errorf("Domain lexicon has %d entries, want 3", domain.Len())
	}
	if got := m.Domain.Lookup("gut", "").Polarity; got != 1 {
		t.Errorf("Domain polarity of gut = %v, want 1", got)
	}
	if got := m.Domain.Lookup("schlecht", "").Polarity; got != -1 {
		t.Errorf("Domain polarity of schlecht = %v, want -1", got)
	}

	assertEndToEnd(t, m, tagger)
}

func TestModelRoundTrip(t *testing.T) {
	m, tagger := endToEndModel(t)

	dir := t.TempDir()
	if err := m.Write(dir); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := ModelFromDisk(dir, NewAnalyzer(), DefaultConfig())
	if err != nil {
		t.Fatalf("ModelFromDisk failed: %v", err)
	}
	if len(loaded.Words) != len(m.Words) || len(loaded.Combinations) != len(m.Combinations) {
		t.Errorf("Feature tables changed: %d/%d words, %d/%d combinations",
			len(loaded.Words), len(m.Words), len(loaded.Combinations), len(m.Combinations))
	}
	if loaded.Priors != m.Priors {
		t.Errorf("Priors changed: %+v, want %+v", loaded.Priors, m.Priors)
	}
	if loaded.General == nil {
		t.Fatal("General lexicon was not restored")
	}

	assertEndToEnd(t, loaded, tagger)
}

func TestModelWithoutTagger(t *testing.T) {
	m, _ := endToEndModel(t)

	classifiers, err := m.Classifiers(nil)
	if err != nil {
		t.Fatalf("Classifiers failed: %v", err)
	}
	for _, c := range classifiers {
		if c.Kind() == RuleBased {
			t.Error("Rule-based classifier needs a tagger")
		}
	}

	if _, err := m.Classifier(RuleBased, nil); err == nil {
		t.Error("Expected an error without a tagger")
	}
	if _, err := m.Classifier(Kind(42), nil); err == nil {
		t.Error("Expected an error for an unknown kind")
	}
}

func TestModelFromDiskMissing(t *testing.T) {
	if _, err := ModelFromDisk(t.TempDir(), nil, DefaultConfig()); err == nil {
		t.Error("Expected an error for an empty directory")
	}
}

// externalStore stands in for a lexicon held outside the process.
type externalStore map[string]float64

func (s externalStore) Lookup(word, _ string) Entry {
	p, ok := s[word]
	if !ok {
		return missEntry(word)
	}
	return Entry{Word: word, Polarity: p}
}

func TestModelExternalDomainStore(t *testing.T) {
	m, tagger := endToEndModel(t)
	m.Domain = externalStore{"gut": 1, "schlecht": -1}

	dir := t.TempDir()
	if err := m.Write(dir); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, domainFile)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected no domain file for an external store, got %v", err)
	}

	loaded, err := ModelFromDisk(dir, NewAnalyzer(), DefaultConfig())
	if err != nil {
		t.Fatalf("ModelFromDisk failed: %v", err)
	}
	if loaded.Domain != nil {
		t.Fatalf("Expected no domain lexicon, got %T", loaded.Domain)
	}
	if _, err := loaded.Classifier(DomainSpecific, nil); err == nil {
		t.Error("Expected an error without a domain lexicon")
	}

	classifiers, err := loaded.Classifiers(tagger)
	if err != nil {
		t.Fatalf("Classifiers failed: %v", err)
	}
	for _, c := range classifiers {
		if c.Kind() == DomainSpecific {
			t.Error("Domain-specific classifier needs a domain lexicon")
		}
	}

	loaded.Domain = externalStore{"gut": 1, "schlecht": -1}
	assertEndToEnd(t, loaded, tagger)
}
