package polarity

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Model bundles everything the classifiers need: the naive-Bayes feature
// tables with their class priors, the general lexicon and the domain
// lexicon. The two lexicons are independent stores; either may live outside
// the process. A Model is read-only once built.
type Model struct {
	Name string

	Words        []Feature
	Combinations []Feature
	Priors       Priors

	General LexiconStore
	Domain  LexiconStore

	analyzer *Analyzer
	cfg      Config
}

// File names used by Write and ModelFromDisk.
const (
	wordsFile        = "words.txt"
	combinationsFile = "combinations.txt"
	domainFile       = "domain.txt"
	priorsFile       = "priors.txt"
	generalFile      = "general.gob"
)

// ModelFromData trains the feature tables and the domain lexicon on the
// usable reviews of train. general is the sentiment lexicon used by the
// primitive and rule-based classifiers.
func ModelFromData(name string, train []Review, general LexiconStore, a *Analyzer, cfg Config) *Model {
	if a == nil {
		a = NewAnalyzer()
	}
	b := NewFeatureBuilder(cfg)

	domain := NewMemoryStore(a)
	domain.Add(b.DomainLexicon(train)...)

	m := &Model{
		Name:         name,
		Words:        Relevant(b.Words(train, BayesMode)),
		Combinations: Relevant(b.Combinations(train)),
		Priors:       PriorsOf(train),
		General:      general,
		Domain:       domain,
		analyzer:     a,
		cfg:          cfg,
	}

	cfg.logger().Info("model trained",
		slog.String("name", name),
		slog.Int("words", len(m.Words)),
		slog.Int("combinations", len(m.Combinations)),
		slog.Int("domain", domain.Len()))

	return m
}

// ModelFromDisk loads a model written by Write. The general lexicon and the
// domain lexicon are loaded when the directory holds them; otherwise General
// or Domain is nil and must be set by the caller.
func ModelFromDisk(path string, a *Analyzer, cfg Config) (*Model, error) {
	if a == nil {
		a = NewAnalyzer()
	}
	log := cfg.logger()

	words, err := LoadFeatureTable(filepath.Join(path, wordsFile), log)
	if err != nil {
		return nil, err
	}
	combos, err := LoadFeatureTable(filepath.Join(path, combinationsFile), log)
	if err != nil {
		return nil, err
	}
	priors, err := loadPriors(filepath.Join(path, priorsFile))
	if err != nil {
		return nil, err
	}

	m := &Model{
		Name:         filepath.Base(path),
		Words:        words,
		Combinations: combos,
		Priors:       priors,
		analyzer:     a,
		cfg:          cfg,
	}

	entries, err := LoadLexicon(filepath.Join(path, domainFile), ReadDomainLexicon, log)
	switch {
	case err == nil:
		domain := NewMemoryStore(a)
		domain.Add(entries...)
		m.Domain = domain
	case !errors.Is(err, ErrMissingInput):
		return nil, err
	}

	general, err := LoadMemoryStore(filepath.Join(path, generalFile), a)
	switch {
	case err == nil:
		m.General = general
	case !errors.Is(err, ErrMissingInput):
		return nil, err
	}

	return m, nil
}

// Write saves the model to the directory at path.
func (m *Model) Write(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return err
	}

	if err := SaveFeatureTable(filepath.Join(path, wordsFile), m.Words); err != nil {
		return fmt.Errorf("writing word features: %w", err)
	}
	if err := SaveFeatureTable(filepath.Join(path, combinationsFile), m.Combinations); err != nil {
		return fmt.Errorf("writing combination features: %w", err)
	}
	if err := savePriors(filepath.Join(path, priorsFile), m.Priors); err != nil {
		return fmt.Errorf("writing priors: %w", err)
	}

	if domain, ok := m.Domain.(*MemoryStore); ok {
		if err := writeDomainFile(filepath.Join(path, domainFile), domain.Entries()); err != nil {
			return fmt.Errorf("writing domain lexicon: %w", err)
		}
	} else if m.Domain != nil {
		m.cfg.logger().Info("domain lexicon is held by an external store, not written",
			slog.String("path", path))
	}

	if general, ok := m.General.(*MemoryStore); ok {
		return general.Write(filepath.Join(path, generalFile))
	}
	return nil
}

func writeDomainFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDomainLexicon(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Features returns the definition vector for the given thresholds.
func (m *Model) Features(minPMI float64, minFrequency int) []Feature {
	return DefinitionVector(minPMI, minFrequency, m.Words, m.Combinations)
}

// Classifier builds the classifier of the given kind. The rule-based
// classifier needs a tagger.
func (m *Model) Classifier(kind Kind, tagger Tagger) (Classifier, error) {
	switch kind {
	case PrimitiveNoPolarity, PrimitiveWithPolarity:
		if m.General == nil {
			return nil, fmt.Errorf("%s: no general lexicon", kind)
		}
		return NewPrimitiveClassifier(m.General, m.analyzer, kind == PrimitiveWithPolarity), nil
	case RuleBased:
		if m.General == nil {
			return nil, fmt.Errorf("%s: no general lexicon", kind)
		}
		if tagger == nil {
			return nil, fmt.Errorf("%s: no tagger", kind)
		}
		return NewRuleBasedClassifier(m.General, tagger, m.analyzer, m.cfg), nil
	case NaiveBayes:
		return NewBayesClassifier(m.Features(m.cfg.MinPMI, m.cfg.MinFrequency), m.Priors, m.analyzer, m.cfg), nil
	case DomainSpecific:
		if m.Domain == nil {
			return nil, fmt.Errorf("%s: no domain lexicon", kind)
		}
		return NewDomainClassifier(m.Domain, m.analyzer), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownClassifier, kind)
	}
}

// Classifiers builds every classifier in evaluation order. The rule-based
// classifier is left out when tagger is nil and the domain-specific one when
// there is no domain lexicon.
func (m *Model) Classifiers(tagger Tagger) ([]Classifier, error) {
	var out []Classifier
	for _, kind := range Kinds() {
		if kind == RuleBased && tagger == nil {
			continue
		}
		if kind == DomainSpecific && m.Domain == nil {
			m.cfg.logger().Warn("no domain lexicon, skipping classifier", slog.String("kind", kind.String()))
			continue
		}
		c, err := m.Classifier(kind, tagger)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func savePriors(path string, p Priors) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("%s %s\n", formatFloat(p.Positive), formatFloat(p.Negative))), 0o644)
}

func loadPriors(path string) (Priors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Priors{}, fmt.Errorf("%w: %w", ErrMissingInput, err)
	}
	var p Priors
	if _, err := fmt.Sscan(string(data), &p.Positive, &p.Negative); err != nil {
		return Priors{}, fmt.Errorf("%w: priors: %w", ErrMalformedRecord, err)
	}
	return p, nil
}
