package polarity

import (
	"log/slog"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// maxWordScore is the largest magnitude a word can reach after the adjective
// and intensifier rules have each doubled it.
const maxWordScore = 4.0

// rule transforms the polarity of one word given its scope.
type rule func(polarity float64, w OrderedWord, scope []OrderedWord) float64

// RuleBasedClassifier scores each word of each sentence from the general
// lexicon and adjusts it by the modifiers found in its scope.
type RuleBasedClassifier struct {
	store     LexiconStore
	tagger    Tagger
	analyzer  *Analyzer
	modifiers Modifiers
	cfg       Config
	rules     []rule
}

// NewRuleBasedClassifier creates a rule-based classifier. The rules enabled
// in cfg.Rules run in a fixed order: negation, adjective weighting,
// intensifiers, modals.
func NewRuleBasedClassifier(store LexiconStore, tagger Tagger, a *Analyzer, cfg Config) *RuleBasedClassifier {
	if a == nil {
		a = NewAnalyzer()
	}
	c := &RuleBasedClassifier{
		store:     store,
		tagger:    tagger,
		analyzer:  a,
		modifiers: GermanModifiers(a),
		cfg:       cfg,
	}

	if cfg.Rules.Negation {
		c.rules = append(c.rules, c.negationRule)
	}
	if cfg.Rules.PolarAdjective {
		c.rules = append(c.rules, polarAdjectiveRule)
	}
	if cfg.Rules.Intensifiers {
		c.rules = append(c.rules, c.intensifierRule)
	}
	if cfg.Rules.Modals {
		c.rules = append(c.rules, c.modalRule)
	}
	return c
}

// Kind implements Classifier.
func (c *RuleBasedClassifier) Kind() Kind {
	return RuleBased
}

// Classify averages word scores per sentence, averages the sentences and
// scales the result by maxWordScore. Sentences without content words do
// not contribute.
func (c *RuleBasedClassifier) Classify(text string) Opinion {
	var op Opinion
	var sentenceScores []float64

	for _, sentence := range c.analyzer.Sentences(text) {
		words := c.OrderedWords(sentence)
		if len(words) == 0 {
			continue
		}

		scores := make([]float64, len(words))
		for i, w := range words {
			scores[i] = c.wordScore(w, words)
			switch {
			case scores[i] > 0:
				op.Positive++
			case scores[i] < 0:
				op.Negative++
			default:
				op.Neutral++
			}
		}
		sentenceScores = append(sentenceScores, stat.Mean(scores, nil))
	}

	if len(sentenceScores) > 0 {
		op.Score = stat.Mean(sentenceScores, nil) / maxWordScore
	}
	op.Polarity = Negative
	if op.Score > 0 {
		op.Polarity = Positive
	}
	return op
}

// OrderedWords tags a sentence, normalizes the tagged words and drops stop
// words that are not modifiers. Orders are 1-based and contiguous. A tagger
// failure yields no words.
func (c *RuleBasedClassifier) OrderedWords(sentence string) []OrderedWord {
	tagged, err := c.tagger.Tag(strings.Fields(sentence))
	if err != nil {
		c.cfg.logger().Warn("tagging failed", slog.String("sentence", sentence), slog.String("error", err.Error()))
		return nil
	}

	var words []OrderedWord
	for _, tw := range tagged {
		term := c.analyzer.Term(tw.Word)
		if term == "" {
			continue
		}
		if c.analyzer.IsStopWord(term) && !c.modifiers.IsModifier(term) {
			continue
		}
		words = append(words, OrderedWord{Word: term, Order: len(words) + 1, POS: tw.Tag})
	}
	return words
}

// Scope returns the neighbors of the word at order: up to size words on
// each side. The first word only looks ahead and the last only looks back.
// Lists with fewer than two words are their own scope.
func Scope(order int, words []OrderedWord, size int) []OrderedWord {
	if len(words) < 2 {
		return words
	}

	switch order {
	case 1:
		return takeFirst(words[1:], size)
	case words[len(words)-1].Order:
		return takeLast(words[:len(words)-1], size)
	}

	var before, after []OrderedWord
	for _, w := range words {
		switch {
		case w.Order < order:
			before = append(before, w)
		case w.Order > order:
			after = append(after, w)
		}
	}
	return append(takeLast(before, size), takeFirst(after, size)...)
}

func takeFirst(words []OrderedWord, n int) []OrderedWord {
	if len(words) > n {
		return words[:n]
	}
	return words
}

func takeLast(words []OrderedWord, n int) []OrderedWord {
	if len(words) > n {
		return words[len(words)-n:]
	}
	return words
}

func (c *RuleBasedClassifier) wordScore(w OrderedWord, words []OrderedWord) float64 {
	scope := Scope(w.Order, words, c.cfg.scopeSize())
	p := c.lexiconPolarity(w)
	for _, r := range c.rules {
		p = r(p, w, scope)
	}
	return p
}

// lexiconPolarity looks the word up in the general lexicon. With POS
// matching enabled a non-zero polarity stored for a different POS is
// suppressed.
func (c *RuleBasedClassifier) lexiconPolarity(w OrderedWord) float64 {
	e := c.store.Lookup(w.Word, w.POS)
	if !c.cfg.Rules.MatchPOS {
		return e.Polarity
	}
	if e.Polarity != 0 && e.POS != w.POS {
		return 0
	}
	return e.Polarity
}

// negationRule moves the polarity toward zero by a flat offset.
func (c *RuleBasedClassifier) negationRule(p float64, w OrderedWord, scope []OrderedWord) float64 {
	if !c.modifiers.hasShifter(scope, w.POS) {
		return p
	}
	return shiftTowardZero(p, c.cfg.negationShift())
}

func shiftTowardZero(p, offset float64) float64 {
	switch {
	case p < 0:
		return p + offset
	case p > 0:
		return p - offset
	default:
		return p
	}
}

func polarAdjectiveRule(p float64, w OrderedWord, _ []OrderedWord) float64 {
	if w.POS == POSAdjective {
		return 2 * p
	}
	return p
}

func (c *RuleBasedClassifier) intensifierRule(p float64, w OrderedWord, scope []OrderedWord) float64 {
	if c.modifiers.hasIntensifier(scope, w.POS) {
		return 2 * p
	}
	return p
}

func (c *RuleBasedClassifier) modalRule(p float64, _ OrderedWord, scope []OrderedWord) float64 {
	if c.modifiers.hasModal(scope) {
		return 0
	}
	return p
}
