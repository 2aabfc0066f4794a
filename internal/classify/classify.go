package classify

// Unknown is the reserved quality category for files whose bitrate or
// resolution could not be probed. It never participates in thresholding.
const Unknown = "unknown"

// Categorize places a value into one of len(cutoffs)+1 ordered buckets and
// returns the matching label. Cutoffs are lower-inclusive on the upper side:
// a value equal to a cutoff lands in the bucket above it. With no cutoffs at
// all the middle label is returned, so degenerate threshold sets still
// produce a single stable bucket.
func Categorize(value float64, cutoffs []float64, labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	if len(cutoffs) == 0 {
		return labels[len(labels)/2]
	}
	for i, cutoff := range cutoffs {
		if value < cutoff {
			return labels[i]
		}
	}
	return labels[len(labels)-1]
}
