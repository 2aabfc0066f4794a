package thresholds

import (
	"math"
	"sort"
)

// jenksCutoffs computes Jenks natural breaks, minimizing within-class
// variance across the sorted sample. Small samples are delegated to the
// percentile split with a non-empty reason so callers can flag the fallback.
func jenksCutoffs(values []float64, categories int) ([]float64, string) {
	if len(values) < categories {
		return nil, "sample smaller than category count"
	}

	sorted := sortedCopy(values)
	n := len(sorted)

	if n == categories {
		return sorted[:categories-1], ""
	}
	if n < 20 {
		return percentileCutoffs(values, categories), "sample below 20 values, used percentile split"
	}

	// Dynamic program over class count and sample prefix. limits[l][j] is the
	// one-based index where class j starts for the optimal partition of the
	// first l values; variances accumulates the within-class variance sums.
	limits := make([][]int, n+1)
	variances := make([][]float64, n+1)
	for i := range limits {
		limits[i] = make([]int, categories+1)
		variances[i] = make([]float64, categories+1)
		for j := range variances[i] {
			variances[i][j] = math.Inf(1)
		}
	}
	for j := 1; j <= categories; j++ {
		limits[1][j] = 1
		variances[1][j] = 0
	}

	var v float64
	for l := 2; l <= n; l++ {
		var s1, s2 float64
		for m := 1; m <= l; m++ {
			i := l - m + 1
			val := sorted[i-1]
			s1 += val
			s2 += val * val
			v = s2 - s1*s1/float64(m)
			if i > 1 {
				for j := 2; j <= categories; j++ {
					if variances[l][j] >= v+variances[i-1][j-1] {
						limits[l][j] = i
						variances[l][j] = v + variances[i-1][j-1]
					}
				}
			}
		}
		limits[l][1] = 1
		variances[l][1] = v
	}

	breaks := make([]float64, 0, categories-1)
	row := n
	for j := categories; j > 1 && row >= 1; j-- {
		idx := limits[row][j] - 1
		if idx >= 0 && idx < n {
			breaks = append(breaks, sorted[idx])
		}
		row = limits[row][j] - 1
	}
	if len(breaks) != categories-1 {
		return percentileCutoffs(values, categories), "break recovery failed, used percentile split"
	}
	sort.Float64s(breaks)
	return breaks, ""
}
