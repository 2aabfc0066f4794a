package thresholds

// quantile returns the p-quantile of values by linear interpolation between
// order statistics of the sorted sample.
func quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := sortedCopy(values)
	k := float64(len(sorted)-1) * p
	f := int(k)
	c := k - float64(f)
	if f+1 < len(sorted) {
		return sorted[f]*(1-c) + sorted[f+1]*c
	}
	return sorted[f]
}

// percentileCutoffs splits at the median for two categories and at the 33rd
// and 66th percentiles for three.
func percentileCutoffs(values []float64, categories int) []float64 {
	if len(values) == 0 {
		return nil
	}
	if categories == 2 {
		return []float64{quantile(values, 0.5)}
	}
	return []float64{quantile(values, 0.33), quantile(values, 0.66)}
}
