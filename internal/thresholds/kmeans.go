package thresholds

import (
	"math"
	"sort"
)

const kmeansMaxIterations = 100

// kmeansCutoffs clusters values with one-dimensional k-means and returns the
// midpoints between adjacent centroids as cutoffs. A non-empty reason means
// the sample could not be clustered and the caller should fall back.
func kmeansCutoffs(values []float64, categories int) ([]float64, string) {
	if len(values) < categories {
		return nil, "sample smaller than category count"
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return nil, "all values identical"
	}

	// Seed centroids evenly across the value range.
	centroids := make([]float64, categories)
	for i := range centroids {
		centroids[i] = lo + (hi-lo)*(float64(i)+0.5)/float64(categories)
	}

	assignments := make([]int, len(values))
	for iter := 0; iter < kmeansMaxIterations; iter++ {
		for i, v := range values {
			best := 0
			bestDist := math.Abs(v - centroids[0])
			for c := 1; c < len(centroids); c++ {
				if d := math.Abs(v - centroids[c]); d < bestDist {
					best = c
					bestDist = d
				}
			}
			assignments[i] = best
		}

		next := make([]float64, len(centroids))
		counts := make([]int, len(centroids))
		for i, v := range values {
			next[assignments[i]] += v
			counts[assignments[i]]++
		}
		moved := false
		for c := range next {
			if counts[c] == 0 {
				// An empty cluster keeps its centroid.
				next[c] = centroids[c]
			} else {
				next[c] /= float64(counts[c])
			}
			if next[c] != centroids[c] {
				moved = true
			}
		}
		centroids = next
		if !moved {
			break
		}
	}

	sort.Float64s(centroids)
	cutoffs := make([]float64, 0, len(centroids)-1)
	for i := 0; i < len(centroids)-1; i++ {
		cutoffs = append(cutoffs, (centroids[i]+centroids[i+1])/2)
	}
	return cutoffs, ""
}
