package polarity

import (
	"fmt"
	"strings"
)

// Evaluation holds the confusion-derived metrics of one classifier on a
// labeled test set.
type Evaluation struct {
	Kind Kind

	TotalPositive int
	TotalNegative int
	RightPositive int
	RightNegative int

	Sensitivity float64 // RightPositive / TotalPositive
	Specificity float64 // RightNegative / TotalNegative
	Accuracy    float64
}

// NewEvaluation computes the metrics from raw counts. Both class totals must
// be non-zero.
func NewEvaluation(kind Kind, totalPositive, totalNegative, rightPositive, rightNegative int) (Evaluation, error) {
	if totalPositive == 0 || totalNegative == 0 {
		return Evaluation{}, fmt.Errorf("%w: %d positive, %d negative", ErrEmptyClass, totalPositive, totalNegative)
	}

	return Evaluation{
		Kind:          kind,
		TotalPositive: totalPositive,
		TotalNegative: totalNegative,
		RightPositive: rightPositive,
		RightNegative: rightNegative,
		Sensitivity:   float64(rightPositive) / float64(totalPositive),
		Specificity:   float64(rightNegative) / float64(totalNegative),
		Accuracy:      float64(rightPositive+rightNegative) / float64(totalPositive+totalNegative),
	}, nil
}

// Evaluate classifies every usable review and counts the correct decisions
// per class.
func Evaluate(reviews []Review, c Classifier) (Evaluation, error) {
	totalPos, totalNeg := Summary(reviews)
	if totalPos == 0 || totalNeg == 0 {
		return Evaluation{}, fmt.Errorf("%w: %d positive, %d negative", ErrEmptyClass, totalPos, totalNeg)
	}

	var rightPos, rightNeg int
	for _, r := range reviews {
		if !r.Usable() {
			continue
		}
		if c.Classify(r.Content).Polarity != r.Label {
			continue
		}
		if r.Label == Positive {
			rightPos++
		} else {
			rightNeg++
		}
	}

	return NewEvaluation(c.Kind(), totalPos, totalNeg, rightPos, rightNeg)
}

// EvaluateAll evaluates each classifier on the same reviews, in the order
// given.
func EvaluateAll(reviews []Review, classifiers ...Classifier) ([]Evaluation, error) {
	out := make([]Evaluation, 0, len(classifiers))
	for _, c := range classifiers {
		e, err := Evaluate(reviews, c)
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", c.Kind(), err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Report renders the evaluation as a labeled text block.
func (e Evaluation) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis with %s\n", e.Kind)
	fmt.Fprintf(&b, "Right positive tuples: %d of %d\n", e.RightPositive, e.TotalPositive)
	fmt.Fprintf(&b, "Right negative tuples: %d of %d\n", e.RightNegative, e.TotalNegative)
	fmt.Fprintf(&b, "Sensitivity: %.4f\n", e.Sensitivity)
	fmt.Fprintf(&b, "Specificity: %.4f\n", e.Specificity)
	fmt.Fprintf(&b, "Accuracy: %.4f\n", e.Accuracy)
	return b.String()
}
