// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Inspect probes only the first video stream plus the container format,
// which keeps probing fast on large batches. Stream and Format expose the
// raw string-typed numerics ffprobe emits; helper methods handle the
// stream-versus-container fallbacks for duration and bitrate and the
// fractional r_frame_rate notation.
package ffprobe
