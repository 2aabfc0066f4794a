package media

// Orientation names. A square frame counts as horizontal.
const (
	Horizontal = "horizontal"
	Vertical   = "vertical"
)

// Video holds the probed attributes the sorting dimensions read. Size comes
// from the directory listing rather than the probe.
type Video struct {
	Filename string
	Path     string
	Width    int
	Height   int
	FPS      float64
	Duration float64 // seconds
	Bitrate  int64   // bits per second
	Size     int64   // bytes
	Codec    string
}

// Orientation reports horizontal for square-or-wider frames, vertical
// otherwise.
func (v Video) Orientation() string {
	if v.Width >= v.Height {
		return Horizontal
	}
	return Vertical
}

// OptimalBitrate estimates the bitrate in bits per second that a clean
// encode of the given resolution and frame rate needs. Unknown frame rates
// assume 30fps so still-probeable files keep a usable estimate.
func OptimalBitrate(width, height int, fps, factor float64) float64 {
	if fps <= 0 {
		fps = 30
	}
	return float64(width) * float64(height) * fps * factor
}

// QualityRatio compares the actual bitrate against the optimal estimate.
// Zero means unknown: either side of the comparison is missing.
func (v Video) QualityRatio(factor float64) float64 {
	optimal := OptimalBitrate(v.Width, v.Height, v.FPS, factor)
	if optimal <= 0 || v.Bitrate <= 0 {
		return 0
	}
	return float64(v.Bitrate) / optimal
}
