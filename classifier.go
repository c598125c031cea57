package polarity

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Kind identifies a classification strategy.
type Kind int

// Classifier kinds, in the order the evaluator runs them.
const (
	PrimitiveNoPolarity Kind = iota
	PrimitiveWithPolarity
	RuleBased
	NaiveBayes
	DomainSpecific
)

var kindNames = []string{
	PrimitiveNoPolarity:   "primitive-no-polarity",
	PrimitiveWithPolarity: "primitive-with-polarity",
	RuleBased:             "rule-based",
	NaiveBayes:            "naive-bayes",
	DomainSpecific:        "domain-specific",
}

// Kinds returns every classifier kind in evaluation order.
func Kinds() []Kind {
	return []Kind{PrimitiveNoPolarity, PrimitiveWithPolarity, RuleBased, NaiveBayes, DomainSpecific}
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a kind name such as "naive-bayes" or "NAIVE_BAYES".
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range kindNames {
		if n == norm || strings.ReplaceAll(n, "-", "") == norm {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClassifier, name)
}

// Classifier decides the polarity of a text.
type Classifier interface {
	Kind() Kind
	Classify(text string) Opinion
}

// PrimitiveClassifier scans the tokens of a text in the general lexicon.
// Without polarity it compares the number of positive and negative words;
// with polarity it uses the sign of the mean.
type PrimitiveClassifier struct {
	store        LexiconStore
	analyzer     *Analyzer
	withPolarity bool
}

// NewPrimitiveClassifier creates a lexicon-scanning classifier.
func NewPrimitiveClassifier(store LexiconStore, a *Analyzer, withPolarity bool) *PrimitiveClassifier {
	if a == nil {
		a = NewAnalyzer()
	}
	return &PrimitiveClassifier{store: store, analyzer: a, withPolarity: withPolarity}
}

// Kind implements Classifier.
func (c *PrimitiveClassifier) Kind() Kind {
	if c.withPolarity {
		return PrimitiveWithPolarity
	}
	return PrimitiveNoPolarity
}

// Classify implements Classifier.
func (c *PrimitiveClassifier) Classify(text string) Opinion {
	op := scanLexicon(c.store, c.analyzer.Tokens(text))

	positive := op.Positive > op.Negative
	if c.withPolarity {
		positive = op.Score > 0
	}
	op.Polarity = Negative
	if positive {
		op.Polarity = Positive
	}
	return op
}

// DomainClassifier scans the tokens of a text in a domain-specific lexicon
// and decides by the mean polarity. A mean of exactly zero is positive.
type DomainClassifier struct {
	store    LexiconStore
	analyzer *Analyzer
}

// NewDomainClassifier creates a domain-lexicon classifier.
func NewDomainClassifier(store LexiconStore, a *Analyzer) *DomainClassifier {
	if a == nil {
		a = NewAnalyzer()
	}
	return &DomainClassifier{store: store, analyzer: a}
}

// Kind implements Classifier.
func (c *DomainClassifier) Kind() Kind {
	return DomainSpecific
}

// Classify implements Classifier.
func (c *DomainClassifier) Classify(text string) Opinion {
	op := scanLexicon(c.store, c.analyzer.Tokens(text))
	op.Polarity = Positive
	if op.Score < 0 {
		op.Polarity = Negative
	}
	return op
}

// scanLexicon looks up every token and returns the word counts and the mean
// polarity. An empty token list has mean zero.
func scanLexicon(store LexiconStore, tokens []string) Opinion {
	var op Opinion
	if len(tokens) == 0 {
		return op
	}

	polarities := make([]float64, len(tokens))
	for i, tok := range tokens {
		p := store.Lookup(tok, "").Polarity
		polarities[i] = p
		switch {
		case p > 0:
			op.Positive++
		case p < 0:
			op.Negative++
		default:
			op.Neutral++
		}
	}
	op.Score = stat.Mean(polarities, nil)
	return op
}
