package classify

import "fmt"

// DurationLabels builds the ordered duration category names, embedding the
// boundary seconds so folder names document the thresholds in effect. When a
// statistical method produced no cutoffs the bare names are returned.
func DurationLabels(cutoffs []float64, categories int) []string {
	if categories == 2 {
		if len(cutoffs) == 0 {
			return []string{"short", "long"}
		}
		t := int(cutoffs[0])
		return []string{
			fmt.Sprintf("short_under_%ds", t),
			fmt.Sprintf("long_over_%ds", t),
		}
	}
	if len(cutoffs) < 2 {
		return []string{"short", "medium", "long"}
	}
	t1, t2 := int(cutoffs[0]), int(cutoffs[1])
	return []string{
		fmt.Sprintf("short_under_%ds", t1),
		fmt.Sprintf("medium_%ds-%ds", t1, t2),
		fmt.Sprintf("long_over_%ds", t2),
	}
}

// QualityLabels builds the ordered quality category names. Cutoffs are
// bitrate ratios, rendered as integer percent.
func QualityLabels(cutoffs []float64, categories int) []string {
	if categories == 2 {
		if len(cutoffs) == 0 {
			return []string{"low", "high"}
		}
		p := int(cutoffs[0] * 100)
		return []string{
			fmt.Sprintf("low_under_%dpct", p),
			fmt.Sprintf("high_over_%dpct", p),
		}
	}
	if len(cutoffs) < 2 {
		return []string{"low", "medium", "high"}
	}
	p1, p2 := int(cutoffs[0]*100), int(cutoffs[1]*100)
	return []string{
		fmt.Sprintf("low_under_%dpct", p1),
		fmt.Sprintf("medium_%d-%dpct", p1, p2),
		fmt.Sprintf("high_over_%dpct", p2),
	}
}

// BitrateLabels returns the two-way bitrate split names for the configured
// threshold in Kbps.
func BitrateLabels(thresholdKbps int) []string {
	return []string{
		fmt.Sprintf("low_under_%dkbps", thresholdKbps),
		fmt.Sprintf("normal_over_%dkbps", thresholdKbps),
	}
}

// BitrateCategory assigns a file to the low or normal bitrate bucket. The
// bitrate is in bits per second, the threshold in Kbps. Files with no known
// bitrate land in the normal bucket rather than being penalized.
func BitrateCategory(bitrate int64, thresholdKbps int) string {
	labels := BitrateLabels(thresholdKbps)
	if bitrate > 0 && bitrate < int64(thresholdKbps)*1000 {
		return labels[0]
	}
	return labels[1]
}
