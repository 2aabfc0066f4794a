package planner

import (
	"fmt"
	"strings"
)

// Dimension selects which axis a sort plan groups files by.
type Dimension int

const (
	// Orientation splits horizontal from vertical frames.
	Orientation Dimension = iota
	// Duration buckets on playback length in seconds.
	Duration
	// Quality buckets on the actual-to-optimal bitrate ratio.
	Quality
	// Bitrate applies the two-way kbps threshold split.
	Bitrate
	// Pipeline nests orientation, duration, and bitrate folders.
	Pipeline
)

// ParseDimension maps a CLI argument to a Dimension.
func ParseDimension(value string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "orientation":
		return Orientation, nil
	case "duration":
		return Duration, nil
	case "quality":
		return Quality, nil
	case "bitrate":
		return Bitrate, nil
	case "pipeline":
		return Pipeline, nil
	default:
		return Orientation, fmt.Errorf("unknown sort dimension %q (expected %s)", value, strings.Join(DimensionNames(), ", "))
	}
}

func (d Dimension) String() string {
	switch d {
	case Orientation:
		return "orientation"
	case Duration:
		return "duration"
	case Quality:
		return "quality"
	case Bitrate:
		return "bitrate"
	case Pipeline:
		return "pipeline"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// DimensionNames lists the accepted sort dimension arguments.
func DimensionNames() []string {
	return []string{"orientation", "duration", "quality", "bitrate", "pipeline"}
}
