package polarity

import (
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		text     string
		tokens   []string
		negation []string
		desc     string
	}{
		{
			"Das Produkt ist sehr gut!",
			[]string{"produkt", "gut"},
			[]string{"produkt", "gut"},
			"Stop words removed",
		},
		{
			"Das ist nicht gut",
			[]string{"gut"},
			[]string{"nicht", "gut"},
			"Negation kept only in negation tokens",
		},
		{
			"Größe 42 passt, kein Problem.",
			[]string{"groesse", "passt", "problem"},
			[]string{"groesse", "passt", "kein", "problem"},
			"Digits dropped and umlauts folded",
		},
		{
			"!!! 123 ...",
			nil,
			nil,
			"Nothing left",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := a.Tokens(tt.text); !reflect.DeepEqual(got, tt.tokens) {
				t.Errorf("Tokens(%q) = %v, want %v", tt.text, got, tt.tokens)
			}
			if got := a.NegationTokens(tt.text); !reflect.DeepEqual(got, tt.negation) {
				t.Errorf("NegationTokens(%q) = %v, want %v", tt.text, got, tt.negation)
			}
		})
	}
}

func TestTokensWithoutFolding(t *testing.T) {
	a := NewAnalyzer(WithFolding(false))
	got := a.Tokens("Schöne Größe")
	want := []string{"schöne", "größe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}

func TestUsingStopWords(t *testing.T) {
	a := NewAnalyzer(UsingStopWords([]string{"Produkt"}))
	got := a.Tokens("Das Produkt")
	want := []string{"das"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}

func TestLibraryStopWordsKeepContent(t *testing.T) {
	a := NewAnalyzer(UsingLibraryStopWords())
	got := a.Tokens("Der Staubsauger und die Verpackung")
	want := []string{"staubsauger", "verpackung"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}

func TestTerm(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		word     string
		expected string
	}{
		{"Äußerst", "aeusserst"},
		{"  gut ", "gut"},
		{"Müll", "muell"},
		{"42", ""},
		{"gut!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := a.Term(tt.word); got != tt.expected {
			t.Errorf("Term(%q) = %q, want %q", tt.word, got, tt.expected)
		}
	}
}

func TestIsStopWord(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		term     string
		expected bool
	}{
		{"das", true},
		{"ueber", true},
		{"nicht", false},
		{"kein", false},
		{"gut", false},
	}

	for _, tt := range tests {
		if got := a.IsStopWord(tt.term); got != tt.expected {
			t.Errorf("IsStopWord(%q) = %v, want %v", tt.term, got, tt.expected)
		}
	}
}

func TestSentences(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{
			"Gut. Sehr gut!",
			[]string{"Gut", "Sehr gut"},
			"Split at punctuation",
		},
		{
			"Das Preis-Leistung-Verhältnis stimmt",
			[]string{"Das Preis-Leistung-Verhältnis stimmt"},
			"Hyphenated compound stays intact",
		},
		{
			"Top - leider laut",
			[]string{"Top", "leider laut"},
			"Free-standing hyphen splits",
		},
		{
			"Sehr gut<br>Preiswert",
			[]string{"Sehr gut Preiswert"},
			"Line break markup removed",
		},
		{
			"...!?",
			nil,
			"Only punctuation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := a.Sentences(tt.text); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Sentences(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}
