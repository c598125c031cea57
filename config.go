package polarity

import (
	"errors"
	"log/slog"
)

var (
	// ErrMissingInput is returned when a required input file is absent or
	// unreadable.
	ErrMissingInput = errors.New("missing input")

	// ErrMalformedRecord marks a single line that could not be parsed.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrEmptyClass is returned when an evaluation set has no positive or no
	// negative reviews.
	ErrEmptyClass = errors.New("evaluation set has an empty class")

	// ErrUnknownClassifier is returned by ParseKind.
	ErrUnknownClassifier = errors.New("unknown classifier")
)

// Config holds the thresholds and switches shared by the builders and the
// classifiers. It is passed by value and never mutated after construction.
type Config struct {
	MinPMI       float64 // relevance threshold on max(PMI_pos, PMI_neg)
	MinFrequency int     // relevance threshold on document frequency

	WindowSize    int     // tokens per combination window
	ScopeSize     int     // max neighbors on each side of a word
	NegationShift float64 // flat offset applied by the negation rule

	Rules RuleOptions

	Logger *slog.Logger
}

// RuleOptions toggles the individual rules of the rule-based classifier.
type RuleOptions struct {
	MatchPOS       bool // suppress lexicon polarity when the tagged POS disagrees
	Negation       bool
	PolarAdjective bool
	Intensifiers   bool
	Modals         bool
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		MinPMI:        0.0,
		MinFrequency:  1,
		WindowSize:    5,
		ScopeSize:     4,
		NegationShift: 1.3,
		Rules:         DefaultRuleOptions(),
	}
}

// DefaultRuleOptions enables every rule.
func DefaultRuleOptions() RuleOptions {
	return RuleOptions{
		MatchPOS:       true,
		Negation:       true,
		PolarAdjective: true,
		Intensifiers:   true,
		Modals:         true,
	}
}

// EvaluationRuleOptions are the rule switches used when comparing
// classifiers: POS matching and the modal rule are off.
func EvaluationRuleOptions() RuleOptions {
	opts := DefaultRuleOptions()
	opts.MatchPOS = false
	opts.Modals = false
	return opts
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c Config) windowSize() int {
	if c.WindowSize < 2 {
		return 5
	}
	return c.WindowSize
}

func (c Config) scopeSize() int {
	if c.ScopeSize < 1 {
		return 4
	}
	return c.ScopeSize
}

func (c Config) negationShift() float64 {
	if c.NegationShift == 0 {
		return 1.3
	}
	return c.NegationShift
}
