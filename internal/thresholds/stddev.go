package thresholds

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation; samples of fewer than two
// values have no spread.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var variance float64
	for _, v := range values {
		variance += (v - m) * (v - m)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// stddevCutoffs returns [mean] for two categories and
// [max(0, mean-0.5s), mean+0.5s] for three. The lower bound clamps at zero
// because durations and quality ratios are non-negative.
func stddevCutoffs(values []float64, categories int) []float64 {
	if len(values) == 0 {
		return nil
	}
	m := mean(values)
	if categories == 2 {
		return []float64{math.Max(0, m)}
	}
	s := stddev(values)
	return []float64{math.Max(0, m-0.5*s), m + 0.5*s}
}
