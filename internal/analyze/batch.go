package analyze

import (
	"time"

	"vidsort/internal/media"
)

// ProbeFailure records a file whose metadata probe failed. Failed files are
// excluded from every sample and plan but stay visible to the caller.
type ProbeFailure struct {
	Filename string
	Err      error
}

// Batch is the outcome of scanning one directory.
type Batch struct {
	Dir           string
	Videos        []media.Video
	ProbeFailures []ProbeFailure
}

// Count returns the number of successfully probed videos.
func (b *Batch) Count() int {
	return len(b.Videos)
}

// Total returns the number of video files seen, including probe failures.
func (b *Batch) Total() int {
	return len(b.Videos) + len(b.ProbeFailures)
}

// TotalSize sums the on-disk size of the probed videos.
func (b *Batch) TotalSize() int64 {
	var total int64
	for _, v := range b.Videos {
		total += v.Size
	}
	return total
}

// TotalDuration sums the probed durations.
func (b *Batch) TotalDuration() time.Duration {
	var seconds float64
	for _, v := range b.Videos {
		seconds += v.Duration
	}
	return time.Duration(seconds * float64(time.Second))
}
