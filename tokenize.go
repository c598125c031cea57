package polarity

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Analyzer turns German text into the token streams used for statistics and
// classification. An Analyzer is safe for concurrent use.
type Analyzer struct {
	stop     map[string]bool
	negation map[string]bool
	library  bool
	fold     bool

	negationTerms map[string]bool
}

// AnalyzerOptFunc configures an Analyzer.
type AnalyzerOptFunc func(*Analyzer)

// UsingStopWords replaces the ordinary stop list.
func UsingStopWords(words []string) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.stop = wordSet(words)
	}
}

// UsingLibraryStopWords additionally filters ordinary tokens through the
// stop-word list of github.com/bbalet/stopwords. That list is much larger
// than the built-in one and contains evaluative words, so it is off by
// default.
func UsingLibraryStopWords() AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.library = true
	}
}

// WithFolding controls whether ß and umlauts are folded to ASCII digraphs.
func WithFolding(fold bool) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.fold = fold
	}
}

// NewAnalyzer creates a German analyzer.
func NewAnalyzer(opts ...AnalyzerOptFunc) *Analyzer {
	a := &Analyzer{
		stop:     wordSet(germanStopWords),
		negation: wordSet(negationStopWords),
		fold:     true,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.negationTerms = make(map[string]bool, len(a.negation))
	for w := range a.negation {
		a.negationTerms[a.finish(w)] = true
	}
	return a
}

var wordRE = regexp.MustCompile(`[\pL\pM\pN]+(?:['.][\pL\pM\pN]+)*`)

// Tokens returns the cleaned content tokens of text with the ordinary stop
// list applied.
func (a *Analyzer) Tokens(text string) []string {
	return a.tokens(text, a.stop, a.library)
}

// NegationTokens returns the cleaned content tokens of text, keeping
// negation particles.
func (a *Analyzer) NegationTokens(text string) []string {
	return a.tokens(text, a.negation, false)
}

func (a *Analyzer) tokens(text string, stop map[string]bool, library bool) []string {
	var out []string
	for _, tok := range wordRE.FindAllString(lowerGerman(text), -1) {
		if stop[tok] || !isClean(tok) {
			continue
		}
		if library && isLibraryStopWord(tok) {
			continue
		}
		out = append(out, a.finish(tok))
	}
	return out
}

// Term normalizes a single word the way tokens are normalized, without
// stop-word removal. It returns "" for words that would be dropped.
func (a *Analyzer) Term(word string) string {
	word = strings.TrimSpace(lowerGerman(word))
	if word == "" || !isClean(word) {
		return ""
	}
	return a.finish(word)
}

// IsStopWord reports whether the normalized word is on the
// negation-preserving stop list.
func (a *Analyzer) IsStopWord(term string) bool {
	return a.negationTerms[term]
}

func (a *Analyzer) finish(tok string) string {
	if a.fold {
		return foldGerman(tok)
	}
	return tok
}

// Sentences splits text at punctuation. A hyphen only separates sentences
// when it is not surrounded by letters on both sides, so compounds such as
// "Preis-Leistung" stay intact. Blank sentences are dropped.
func (a *Analyzer) Sentences(text string) []string {
	runes := []rune(strings.ReplaceAll(text, "<br>", " "))

	var sentences []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	for i, r := range runes {
		if isSentenceBreak(runes, i) {
			flush()
			continue
		}
		b.WriteRune(r)
	}
	flush()

	return sentences
}

const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func isSentenceBreak(runes []rune, i int) bool {
	r := runes[i]
	if r == '-' {
		before := i > 0 && unicode.IsLetter(runes[i-1])
		after := i+1 < len(runes) && unicode.IsLetter(runes[i+1])
		return !before || !after
	}
	return strings.ContainsRune(asciiPunct, r) || unicode.IsPunct(r)
}

// isClean reports whether a token is free of digits, punctuation and
// symbols.
func isClean(tok string) bool {
	for _, r := range tok {
		if unicode.IsNumber(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) ||
			strings.ContainsRune(asciiPunct, r) {
			return false
		}
	}
	return true
}

func isLibraryStopWord(tok string) bool {
	return strings.TrimSpace(stopwords.CleanString(tok, "de", false)) == ""
}

func lowerGerman(s string) string {
	return norm.NFC.String(cases.Lower(language.German).String(s))
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[lowerGerman(w)] = true
	}
	return set
}
