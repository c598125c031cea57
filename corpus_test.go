package polarity

import (
	"bytes"
	"strings"
	"testing"
)

func TestLabelFromStars(t *testing.T) {
	tests := []struct {
		stars    float64
		expected Polarity
	}{
		{1, Negative},
		{2, Negative},
		{3, Neutral},
		{4, Positive},
		{5, Positive},
		{0, Neutral},
		{2.5, Neutral},
	}

	for _, tt := range tests {
		if got := LabelFromStars(tt.stars); got != tt.expected {
			t.Errorf("LabelFromStars(%v) = %v, want %v", tt.stars, got, tt.expected)
		}
	}
}

func TestParseReview(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		line       string
		label      Polarity
		hasContent bool
		desc       string
	}{
		{"5 Das Produkt ist sehr gut", Positive, true, "Positive review"},
		{"1.0 Leider völlig kaputt", Negative, true, "Decimal star rating"},
		{"3 Ganz okay", Neutral, true, "Neutral review"},
		{"gut Das Produkt", Neutral, false, "Non-numeric star field"},
		{"5", Neutral, false, "No content"},
		{"4 123 !!!", Positive, false, "Content without words"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			r := ParseReview(tt.line, a)
			if r.Label != tt.label {
				t.Errorf("Line %q: label = %v, want %v", tt.line, r.Label, tt.label)
			}
			if r.HasContent() != tt.hasContent {
				t.Errorf("Line %q: HasContent = %v, want %v (tokens %v)", tt.line, r.HasContent(), tt.hasContent, r.Tokens)
			}
		})
	}
}

func TestReviewUsable(t *testing.T) {
	a := NewAnalyzer()
	if r := ParseReview("3 Ganz okay", a); r.Usable() {
		t.Errorf("Neutral review should not be usable")
	}
	if r := ParseReview("4 123", a); r.Usable() {
		t.Errorf("Review without content should not be usable")
	}
	if r := ParseReview("4 Super Teil", a); !r.IsPositive() || r.IsNegative() {
		t.Errorf("Expected a usable positive review")
	}
}

func TestReadCorpusAndSummary(t *testing.T) {
	input := strings.Join([]string{
		"5 Tolles Gerät",
		"",
		"1 Schlechte Verarbeitung",
		"2 Nicht zu empfehlen",
		"3 Geht so",
		"x kaputt",
	}, "\n")

	reviews, err := ReadCorpus(strings.NewReader(input), NewAnalyzer())
	if err != nil {
		t.Fatalf("ReadCorpus failed: %v", err)
	}
	if len(reviews) != 5 {
		t.Fatalf("Expected 5 reviews (blank line skipped), got %d", len(reviews))
	}

	pos, neg := Summary(reviews)
	if pos != 1 || neg != 2 {
		t.Errorf("Summary = (%d, %d), want (1, 2)", pos, neg)
	}

	priors := PriorsOf(reviews)
	if priors.Positive != 1.0/3.0 || priors.Negative != 2.0/3.0 {
		t.Errorf("Unexpected priors %+v", priors)
	}
}

func TestLoadCorpusMissingFile(t *testing.T) {
	_, err := LoadCorpus(t.TempDir()+"/missing.txt", NewAnalyzer())
	if err == nil {
		t.Fatal("Expected an error for a missing corpus")
	}
	if !strings.Contains(err.Error(), ErrMissingInput.Error()) {
		t.Errorf("Expected ErrMissingInput, got %v", err)
	}
}

func TestBalance(t *testing.T) {
	a := NewAnalyzer()
	var reviews []Review
	for _, line := range []string{
		"5 gut eins", "5 gut zwei", "1 schlecht eins", "5 gut drei", "3 mittel", "2 schlecht zwei",
	} {
		reviews = append(reviews, ParseReview(line, a))
	}

	balanced := Balance(reviews)
	pos, neg := Summary(balanced)
	if pos != 2 || neg != 2 {
		t.Fatalf("Balanced summary = (%d, %d), want (2, 2)", pos, neg)
	}

	want := []string{"gut eins", "gut zwei", "schlecht eins", "schlecht zwei"}
	for i, r := range balanced {
		if r.Content != want[i] {
			t.Errorf("Review %d: got %q, want %q", i, r.Content, want[i])
		}
	}

	var buf bytes.Buffer
	if err := WriteCorpus(&buf, balanced[:1]); err != nil {
		t.Fatalf("WriteCorpus failed: %v", err)
	}
	if buf.String() != "5 gut eins\n" {
		t.Errorf("WriteCorpus wrote %q", buf.String())
	}
}
