package polarity

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Review is one labeled line of a corpus. Reviews are immutable once parsed.
type Review struct {
	Stars   float64
	Label   Polarity
	Content string

	// Tokens is the cleaned content with the ordinary stop list applied.
	Tokens []string
	// NegationTokens is the cleaned content with negation particles kept.
	NegationTokens []string
}

// HasContent reports whether the cleaned content is non-empty. Reviews
// without content are excluded from statistics and evaluation.
func (r Review) HasContent() bool {
	return len(r.Tokens) > 0
}

// IsPositive reports whether the review is a usable positive example.
func (r Review) IsPositive() bool {
	return r.Label == Positive && r.HasContent()
}

// IsNegative reports whether the review is a usable negative example.
func (r Review) IsNegative() bool {
	return r.Label == Negative && r.HasContent()
}

// Usable reports whether the review counts for either class.
func (r Review) Usable() bool {
	return r.IsPositive() || r.IsNegative()
}

// LabelFromStars maps a star rating to a class: 1 and 2 stars are negative,
// 4 and 5 stars positive, anything else neutral.
func LabelFromStars(stars float64) Polarity {
	switch stars {
	case 1, 2:
		return Negative
	case 4, 5:
		return Positive
	default:
		return Neutral
	}
}

// ParseReview parses a line of the form "<stars> <content>". Lines whose
// star field is not numeric, or that have no content, produce a review
// without content.
func ParseReview(line string, a *Analyzer) Review {
	line = strings.TrimSpace(line)
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return Review{}
	}

	stars, err := strconv.ParseFloat(line[:idx], 64)
	if err != nil {
		return Review{}
	}

	content := strings.TrimSpace(line[idx:])
	return Review{
		Stars:          stars,
		Label:          LabelFromStars(stars),
		Content:        content,
		Tokens:         a.Tokens(content),
		NegationTokens: a.NegationTokens(content),
	}
}

// ReadCorpus parses one review per non-blank line of r.
func ReadCorpus(r io.Reader, a *Analyzer) ([]Review, error) {
	var reviews []Review

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		reviews = append(reviews, ParseReview(line, a))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	return reviews, nil
}

// LoadCorpus reads the corpus file at path.
func LoadCorpus(path string, a *Analyzer) ([]Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingInput, err)
	}
	defer f.Close()

	return ReadCorpus(f, a)
}

// WriteCorpus writes reviews back in "<stars> <content>" form.
func WriteCorpus(w io.Writer, reviews []Review) error {
	bw := bufio.NewWriter(w)
	for _, r := range reviews {
		if _, err := fmt.Fprintf(bw, "%s %s\n", strconv.FormatFloat(r.Stars, 'f', -1, 64), r.Content); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Summary counts the usable positive and negative reviews.
func Summary(reviews []Review) (positive, negative int) {
	for _, r := range reviews {
		switch {
		case r.IsPositive():
			positive++
		case r.IsNegative():
			negative++
		}
	}
	return positive, negative
}

// Priors are the class probabilities used by naive Bayes.
type Priors struct {
	Positive float64
	Negative float64
}

// PriorsOf derives class priors from the usable reviews of a corpus. An
// empty corpus yields uniform priors.
func PriorsOf(reviews []Review) Priors {
	pos, neg := Summary(reviews)
	if pos+neg == 0 {
		return Priors{Positive: 0.5, Negative: 0.5}
	}
	total := float64(pos + neg)
	return Priors{Positive: float64(pos) / total, Negative: float64(neg) / total}
}

// Balance keeps the first min(positive, negative) usable reviews of each
// class, preserving corpus order.
func Balance(reviews []Review) []Review {
	pos, neg := Summary(reviews)
	limit := min(pos, neg)

	var out []Review
	var keptPos, keptNeg int
	for _, r := range reviews {
		switch {
		case r.IsPositive() && keptPos < limit:
			keptPos++
			out = append(out, r)
		case r.IsNegative() && keptNeg < limit:
			keptNeg++
			out = append(out, r)
		}
	}
	return out
}
