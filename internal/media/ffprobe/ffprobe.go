package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes the selected video stream. Numeric fields arrive as
// strings in ffprobe JSON and are parsed on demand.
type Stream struct {
	CodecName  string `json:"codec_name"`
	Duration   string `json:"duration"`
	BitRate    string `json:"bit_rate"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
}

// Format captures container-level metadata. Some containers report duration
// or bitrate only here rather than on the stream.
type Format struct {
	Duration string `json:"duration"`
	BitRate  string `json:"bit_rate"`
}

// Inspect executes ffprobe against the first video stream of path and
// decodes the JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := commandContext(ctx, binary,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,bit_rate,r_frame_rate,codec_name,duration",
		"-show_entries", "format=duration,bit_rate",
		"-of", "json",
		"--", path) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// VideoStream returns the selected video stream, if any was found.
func (r Result) VideoStream() (Stream, bool) {
	if len(r.Streams) == 0 {
		return Stream{}, false
	}
	return r.Streams[0], true
}

// DurationSeconds returns the stream duration, falling back to the container
// duration. Missing values yield 0; malformed values yield NaN.
func (r Result) DurationSeconds() float64 {
	if stream, ok := r.VideoStream(); ok && strings.TrimSpace(stream.Duration) != "" {
		return parseFloat(stream.Duration)
	}
	return parseFloat(r.Format.Duration)
}

// BitRate returns the stream bitrate in bits per second, falling back to the
// container bitrate, or 0 when unavailable.
func (r Result) BitRate() int64 {
	if stream, ok := r.VideoStream(); ok && strings.TrimSpace(stream.BitRate) != "" {
		return clampRate(parseFloat(stream.BitRate))
	}
	return clampRate(parseFloat(r.Format.BitRate))
}

// FrameRate parses the r_frame_rate fraction (for example "30000/1001").
// Unparseable or zero-denominator rates yield 0.
func (s Stream) FrameRate() float64 {
	raw := strings.TrimSpace(s.RFrameRate)
	if raw == "" {
		return 0
	}
	if num, den, ok := strings.Cut(raw, "/"); ok {
		n := parseFloat(num)
		d := parseFloat(den)
		if math.IsNaN(n) || math.IsNaN(d) || d <= 0 {
			return 0
		}
		return n / d
	}
	if v := parseFloat(raw); !math.IsNaN(v) {
		return v
	}
	return 0
}

func clampRate(rate float64) int64 {
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	return int64(rate)
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
