package polarity

// Target is the class of words a shifter or intensifier applies to.
type Target int

const (
	// TargetEverything applies to adjectives and nouns.
	TargetEverything Target = iota
	// TargetNouns applies to nouns only.
	TargetNouns
)

// Shifter is a negation-triggering word.
type Shifter struct {
	Word   string
	Target Target
}

// Intensifier doubles the polarity of words in its scope. POS is the tag the
// intensifier itself must carry.
type Intensifier struct {
	Word   string
	POS    string
	Target Target
}

// Modifiers holds the normalized closed word lists used by the rule engine.
// Order matters: the first matching shifter or intensifier decides.
type Modifiers struct {
	Shifters     []Shifter
	Intensifiers []Intensifier
	Modals       []string

	words map[string]bool
}

var germanShifters = []Shifter{
	{"nicht", TargetEverything},
	{"aufhören", TargetNouns}, {"aufhört", TargetNouns}, {"aufhörst", TargetNouns},
	{"aufgehört", TargetNouns}, {"beenden", TargetNouns}, {"beendet", TargetNouns},
	{"abflauen", TargetNouns}, {"bewältigen", TargetNouns},
	{"nie", TargetNouns}, {"nix", TargetNouns}, {"keinsterweise", TargetNouns},
	{"keinerweise", TargetNouns}, {"niemals", TargetNouns}, {"nichts", TargetNouns},
	{"trotzen", TargetNouns}, {"ohne", TargetNouns},
	{"kein", TargetEverything}, {"keine", TargetEverything}, {"keinen", TargetEverything},
	{"keinem", TargetEverything}, {"keiner", TargetEverything}, {"keines", TargetEverything},
	{"einzigartig", TargetEverything}, {"weniger", TargetEverything},
	{"kaum", TargetNouns}, {"keinesfalls", TargetNouns}, {"ebensowenig", TargetNouns},
}

var germanModals = []string{
	"darf", "darfst", "dürfen", "dürft", "durfte", "dürfte",
	"kann", "kannst", "können", "könnt", "konnte", "könnte",
	"soll", "sollst", "sollen", "sollt", "sollte",
}

var germanIntensifiers = []Intensifier{
	{"besonders", POSAdverb, TargetEverything},
	{"ständig", POSAdjective, TargetEverything},
	{"völlig", POSAdjective, TargetEverything},
	{"steigern", POSVerb, TargetNouns},
	{"sehr", POSAdverb, TargetEverything},
	{"äusserst", POSAdjective, TargetEverything},
	{"äußerst", POSAdjective, TargetEverything},
	{"enorm", POSAdjective, TargetEverything},
	{"erheblich", POSAdjective, TargetEverything},
	{"bleiben", POSVerb, TargetNouns},
	{"exzeptionell", POSAdjective, TargetEverything},
	{"viel", POSAdverb, TargetEverything},
	{"ziemlich", POSAdverb, TargetEverything},
	{"zusätzlich", POSAdjective, TargetEverything},
	{"maximal", POSAdjective, TargetEverything},
	{"extrem", POSAdjective, TargetEverything},
	{"intensiv", POSAdjective, TargetEverything},
	{"unvermindert", POSAdjective, TargetEverything},
	{"groß", POSAdjective, TargetEverything},
	{"gross", POSAdjective, TargetEverything},
	{"recht", POSAdjective, TargetEverything},
	{"tatsächlich", POSAdjective, TargetEverything},
	{"unglaublich", POSAdjective, TargetEverything},
	{"wirklich", POSAdjective, TargetEverything},
	{"richtig", POSAdjective, TargetEverything},
	{"verdammt", POSAdjective, TargetEverything},
}

// GermanModifiers returns the German word lists normalized with a.
func GermanModifiers(a *Analyzer) Modifiers {
	if a == nil {
		a = NewAnalyzer()
	}

	m := Modifiers{words: make(map[string]bool)}
	for _, s := range germanShifters {
		s.Word = a.Term(s.Word)
		m.Shifters = append(m.Shifters, s)
		m.words[s.Word] = true
	}
	for _, i := range germanIntensifiers {
		i.Word = a.Term(i.Word)
		m.Intensifiers = append(m.Intensifiers, i)
		m.words[i.Word] = true
	}
	for _, w := range germanModals {
		w = a.Term(w)
		m.Modals = append(m.Modals, w)
		m.words[w] = true
	}
	return m
}

// IsModifier reports whether term is on any of the lists.
func (m Modifiers) IsModifier(term string) bool {
	return m.words[term]
}

// hasShifter reports whether scope contains a shifter that applies to a word
// tagged pos. A nouns-only shifter decides immediately; a shifter for
// everything only decides when pos is an adjective or noun.
func (m Modifiers) hasShifter(scope []OrderedWord, pos string) bool {
	for _, s := range m.Shifters {
		if !scopeContains(scope, s.Word) {
			continue
		}
		if s.Target == TargetNouns {
			return pos == POSNoun
		}
		if pos == POSNoun || pos == POSAdjective {
			return true
		}
	}
	return false
}

// hasIntensifier reports whether scope contains an intensifier, tagged with
// the intensifier's own POS, that applies to a word tagged pos.
func (m Modifiers) hasIntensifier(scope []OrderedWord, pos string) bool {
	for _, i := range m.Intensifiers {
		w, ok := scopeFind(scope, i.Word)
		if !ok || w.POS != i.POS {
			continue
		}
		if i.Target == TargetNouns {
			return pos == POSNoun
		}
		if pos == POSAdjective || pos == POSNoun {
			return true
		}
	}
	return false
}

// hasModal reports whether scope contains any modal verb.
func (m Modifiers) hasModal(scope []OrderedWord) bool {
	for _, modal := range m.Modals {
		if scopeContains(scope, modal) {
			return true
		}
	}
	return false
}

func scopeFind(scope []OrderedWord, word string) (OrderedWord, bool) {
	for _, w := range scope {
		if w.Word == word {
			return w, true
		}
	}
	return OrderedWord{}, false
}

func scopeContains(scope []OrderedWord, word string) bool {
	_, ok := scopeFind(scope, word)
	return ok
}
