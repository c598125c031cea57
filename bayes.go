package polarity

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// BayesClassifier is a Bernoulli naive-Bayes classifier over a definition
// vector of word and combination features. All smoothing lives in the
// stored feature probabilities.
type BayesClassifier struct {
	features []Feature
	priors   Priors
	analyzer *Analyzer
	window   int

	// log P(present|class) and log(1 - P(present|class)) per feature.
	presentPos *mat.VecDense
	presentNeg *mat.VecDense
	absentPos  *mat.VecDense
	absentNeg  *mat.VecDense
}

// NewBayesClassifier creates a classifier for the given definition vector.
func NewBayesClassifier(features []Feature, priors Priors, a *Analyzer, cfg Config) *BayesClassifier {
	if a == nil {
		a = NewAnalyzer()
	}
	c := &BayesClassifier{
		features: features,
		priors:   priors,
		analyzer: a,
		window:   cfg.windowSize(),
	}

	n := len(features)
	if n == 0 {
		return c
	}

	pp := make([]float64, n)
	pn := make([]float64, n)
	ap := make([]float64, n)
	an := make([]float64, n)
	for i, f := range features {
		pp[i] = math.Log(f.PPos)
		pn[i] = math.Log(f.PNeg)
		ap[i] = math.Log(1 - f.PPos)
		an[i] = math.Log(1 - f.PNeg)
	}
	c.presentPos = mat.NewVecDense(n, pp)
	c.presentNeg = mat.NewVecDense(n, pn)
	c.absentPos = mat.NewVecDense(n, ap)
	c.absentNeg = mat.NewVecDense(n, an)

	return c
}

// Kind implements Classifier.
func (c *BayesClassifier) Kind() Kind {
	return NaiveBayes
}

// Vector returns the binary presence vector of text. Single words match the
// cleaned tokens; combinations match the combinations generated from the
// negation-preserving tokens.
func (c *BayesClassifier) Vector(text string) []float64 {
	words := make(map[string]bool)
	for _, tok := range c.analyzer.Tokens(text) {
		words[tok] = true
	}
	combos := make(map[string]bool)
	for _, comb := range Combinations(c.analyzer.NegationTokens(text), c.window) {
		combos[combinationKey(comb)] = true
	}

	v := make([]float64, len(c.features))
	for i, f := range c.features {
		present := words[f.Key()]
		if f.IsCombination() {
			present = combos[f.Key()]
		}
		if present {
			v[i] = 1
		}
	}
	return v
}

// Scores returns the log-likelihood of each class for text. Each feature
// contributes log P(present|class) when present and log(1 - P) when absent,
// so a feature that is certain for a class never turns the sum into NaN.
func (c *BayesClassifier) Scores(text string) (pos, neg float64) {
	pos = math.Log(c.priors.Positive)
	neg = math.Log(c.priors.Negative)
	if len(c.features) == 0 {
		return pos, neg
	}

	data := c.Vector(text)
	selPos := mat.NewVecDense(len(data), nil)
	selNeg := mat.NewVecDense(len(data), nil)
	for i, x := range data {
		if x == 1 {
			selPos.SetVec(i, c.presentPos.AtVec(i))
			selNeg.SetVec(i, c.presentNeg.AtVec(i))
		} else {
			selPos.SetVec(i, c.absentPos.AtVec(i))
			selNeg.SetVec(i, c.absentNeg.AtVec(i))
		}
	}

	pos += mat.Sum(selPos)
	neg += mat.Sum(selNeg)
	return pos, neg
}

// Classify predicts positive when the positive likelihood is strictly
// greater. Score is the log-likelihood ratio.
func (c *BayesClassifier) Classify(text string) Opinion {
	pos, neg := c.Scores(text)
	op := Opinion{Polarity: Negative, Score: pos - neg}
	if pos > neg {
		op.Polarity = Positive
	}
	return op
}
