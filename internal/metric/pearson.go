package metric

import "gonum.org/v1/gonum/stat"

const PearsonName = "PEAR"

// NewPearson scores a list by Pearson's r between labels and predicted
// scores.
func NewPearson() Scorer {
	return newCorrelationScorer(PearsonName, pearson)
}

func pearson(labels, preds []float64) float64 {
	return stat.Correlation(labels, preds, nil)
}
