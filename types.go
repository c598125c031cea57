// Package polarity classifies the polarity of German product reviews with
// lexicon, rule-based, naive-Bayes and domain-lexicon strategies.
package polarity

import "fmt"

// Polarity is the class of a review or the decision of a classifier.
type Polarity int

// Polarity classes. Neutral reviews are excluded from statistics.
const (
	Negative Polarity = -1
	Neutral  Polarity = 0
	Positive Polarity = 1
)

// String returns the lowercase name of the class.
func (p Polarity) String() string {
	switch p {
	case Negative:
		return "negative"
	case Neutral:
		return "neutral"
	case Positive:
		return "positive"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// Coarse part-of-speech classes used by the lexicon and the rule engine.
const (
	POSAdjective    = "adj"
	POSAdverb       = "adv"
	POSNoun         = "nomen"
	POSVerb         = "verben"
	POSVerbParticle = "verbzusatz"

	// NoPOS marks a lexicon miss.
	NoPOS = "NaN"
)

// TaggedWord is a token paired with the tag assigned by a Tagger.
type TaggedWord struct {
	Word string
	Tag  string
}

// OrderedWord is a content-bearing token of a sentence.
type OrderedWord struct {
	Word  string
	Order int // 1-based, contiguous within a sentence
	POS   string
}

// Entry is one lexicon record. POS is empty for entries that match by word
// alone.
type Entry struct {
	Word     string
	POS      string
	Polarity float64
}

// Opinion is the result of classifying a single text.
type Opinion struct {
	Polarity Polarity
	Score    float64

	// Word counts for the lexicon scanning classifiers.
	Positive int
	Negative int
	Neutral  int
}
