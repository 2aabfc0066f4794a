// Package media defines the Video record and the derived attributes the
// sorting dimensions read: orientation from the frame shape, an optimal
// bitrate estimate from resolution and frame rate, and the quality ratio of
// actual to optimal bitrate. Prober fills records via ffprobe with a
// per-file timeout.
package media
