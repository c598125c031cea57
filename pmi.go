package polarity

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// classTotals holds the number of usable documents of each class.
type classTotals struct {
	pos int
	neg int
}

func (t classTotals) total() int {
	return t.pos + t.neg
}

func totalsOf(reviews []Review) classTotals {
	pos, neg := Summary(reviews)
	return classTotals{pos: pos, neg: neg}
}

// laplace bumps a zero document count to one.
func laplace(count int) int {
	if count == 0 {
		return 1
	}
	return count
}

// pmi returns log2(P(class, f) / (P(f) * P(class))) from document counts.
// A feature never seen with the class has no evidence and scores 0.
func pmi(classCount, featureCount, classTotal, total int) float64 {
	if classCount == 0 || featureCount == 0 || classTotal == 0 || total == 0 {
		return 0
	}
	n := float64(total)
	joint := float64(classCount) / n
	pf := float64(featureCount) / n
	pc := float64(classTotal) / n
	return math.Log2(joint / (pf * pc))
}

// normalizeSigned rescales positive values into [0,1] against the population
// maximum and negative values into [-1,0] against the population minimum.
// Zero stays zero.
func normalizeSigned(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	hi := floats.Max(values)
	lo := floats.Min(values)
	for i, v := range values {
		switch {
		case v > 0:
			out[i] = minMaxScale(v, 0, hi, 0, 1)
		case v < 0:
			out[i] = minMaxScale(v, lo, 0, -1, 0)
		}
	}
	return out
}

// minMaxScale maps v from [lo,hi] onto [l,r].
func minMaxScale(v, lo, hi, l, r float64) float64 {
	return (r-l)*((v-lo)/(hi-lo)) + l
}
