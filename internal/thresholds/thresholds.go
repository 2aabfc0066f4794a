package thresholds

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Method selects how category boundaries are derived from a sample.
type Method int

const (
	// Fixed derives nothing; callers substitute statically configured cutoffs.
	Fixed Method = iota
	// Percentile splits the sorted sample at even percentile ranks.
	Percentile
	// StdDev centers cutoffs on the mean, half a deviation out.
	StdDev
	// KMeans clusters the sample and cuts at centroid midpoints.
	KMeans
	// Jenks minimizes within-class variance over the sorted sample.
	Jenks
)

// ParseMethod maps a config or CLI string to a Method.
func ParseMethod(value string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "fixed":
		return Fixed, nil
	case "percentile":
		return Percentile, nil
	case "stddev":
		return StdDev, nil
	case "kmeans":
		return KMeans, nil
	case "jenks":
		return Jenks, nil
	default:
		return Fixed, fmt.Errorf("unknown threshold method %q (expected fixed, percentile, stddev, kmeans, or jenks)", value)
	}
}

func (m Method) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case Percentile:
		return "percentile"
	case StdDev:
		return "stddev"
	case KMeans:
		return "kmeans"
	case Jenks:
		return "jenks"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Set holds derived category boundaries plus diagnostics about how they were
// produced. Cutoffs are non-decreasing and number categories-1, except when a
// degenerate sample leaves them empty.
type Set struct {
	Method         Method
	Cutoffs        []float64
	Description    string
	UsedFallback   bool
	FallbackReason string
}

// ErrEmptySample is returned when Compute receives no values.
var ErrEmptySample = errors.New("empty sample")

// Compute derives categories-1 boundary values from the sample. Degenerate
// input never panics: kmeans reports an empty cutoff list and jenks falls
// back to percentile, both flagged via UsedFallback. The sample slice is not
// modified.
func Compute(values []float64, method Method, categories int) (Set, error) {
	set := Set{Method: method}
	if categories != 2 && categories != 3 {
		return set, fmt.Errorf("categories must be 2 or 3, got %d", categories)
	}
	if len(values) == 0 {
		return set, ErrEmptySample
	}

	switch method {
	case Fixed:
		set.Description = "static cutoffs from configuration"
	case Percentile:
		set.Cutoffs = percentileCutoffs(values, categories)
		set.Description = fmt.Sprintf("split at %d%% intervals", 100/categories)
	case StdDev:
		m, s := mean(values), stddev(values)
		set.Cutoffs = stddevCutoffs(values, categories)
		set.Description = fmt.Sprintf("mean=%.1f stddev=%.1f", m, s)
	case KMeans:
		cutoffs, reason := kmeansCutoffs(values, categories)
		set.Cutoffs = cutoffs
		set.Description = "k-means centroid midpoints"
		if reason != "" {
			set.UsedFallback = true
			set.FallbackReason = reason
			set.Description = "k-means found no separation"
		}
	case Jenks:
		cutoffs, reason := jenksCutoffs(values, categories)
		set.Cutoffs = cutoffs
		set.Description = "Jenks natural breaks"
		if reason != "" {
			set.UsedFallback = true
			set.FallbackReason = reason
			if len(cutoffs) > 0 {
				set.Description = fmt.Sprintf("percentile split (%s)", reason)
			}
		}
	default:
		return set, fmt.Errorf("unsupported threshold method %v", method)
	}
	return set, nil
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
