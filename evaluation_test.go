package polarity

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type fixedClassifier struct {
	polarity Polarity
}

func (c fixedClassifier) Kind() Kind { return DomainSpecific }

func (c fixedClassifier) Classify(string) Opinion {
	return Opinion{Polarity: c.polarity}
}

func TestNewEvaluation(t *testing.T) {
	e, err := NewEvaluation(NaiveBayes, 10, 10, 8, 6)
	if err != nil {
		t.Fatalf("NewEvaluation failed: %v", err)
	}

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"Sensitivity", e.Sensitivity, 0.8},
		{"Specificity", e.Specificity, 0.6},
		{"Accuracy", e.Accuracy, 0.7},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.expected) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
		}
	}

	report := e.Report()
	for _, want := range []string{
		"Analysis with naive-bayes",
		"Right positive tuples: 8 of 10",
		"Right negative tuples: 6 of 10",
		"Sensitivity: 0.8000",
		"Specificity: 0.6000",
		"Accuracy: 0.7000",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("Report is missing %q:\n%s", want, report)
		}
	}
}

func TestNewEvaluationEmptyClass(t *testing.T) {
	if _, err := NewEvaluation(RuleBased, 0, 10, 0, 5); !errors.Is(err, ErrEmptyClass) {
		t.Errorf("Expected ErrEmptyClass, got %v", err)
	}
	if _, err := NewEvaluation(RuleBased, 10, 0, 5, 0); !errors.Is(err, ErrEmptyClass) {
		t.Errorf("Expected ErrEmptyClass, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	a := NewAnalyzer()
	var reviews []Review
	for _, line := range []string{"5 gut", "4 toll", "3 egal", "1 schlecht", "2 kaputt", "1 mies"} {
		reviews = append(reviews, ParseReview(line, a))
	}

	e, err := Evaluate(reviews, fixedClassifier{polarity: Positive})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if e.TotalPositive != 2 || e.TotalNegative != 3 || e.RightPositive != 2 || e.RightNegative != 0 {
		t.Errorf("Unexpected counts %+v", e)
	}
	if e.Sensitivity != 1 || e.Specificity != 0 {
		t.Errorf("Unexpected metrics %+v", e)
	}
	if e.Sensitivity+e.Specificity == 0 || e.Accuracy < 0 || e.Accuracy > 1 {
		t.Errorf("Metrics out of range %+v", e)
	}

	all, err := EvaluateAll(reviews, fixedClassifier{polarity: Positive}, fixedClassifier{polarity: Negative})
	if err != nil {
		t.Fatalf("EvaluateAll failed: %v", err)
	}
	if len(all) != 2 || all[1].RightNegative != 3 {
		t.Errorf("Unexpected evaluations %+v", all)
	}

	if _, err := Evaluate(reviews[:3], fixedClassifier{}); !errors.Is(err, ErrEmptyClass) {
		t.Errorf("Expected ErrEmptyClass, got %v", err)
	}
}
