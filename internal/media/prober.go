package media

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"vidsort/internal/media/ffprobe"
	"vidsort/internal/services"
)

const defaultProbeTimeout = 30 * time.Second

// Prober extracts Video metadata through ffprobe. The zero value probes
// with the binary from PATH and the default timeout.
type Prober struct {
	Binary  string
	Timeout time.Duration
}

func (p Prober) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return defaultProbeTimeout
}

// Probe inspects a single file. The per-file timeout bounds hung probes on
// corrupt containers.
func (p Prober) Probe(ctx context.Context, path string) (Video, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout())
	defer cancel()

	result, err := ffprobe.Inspect(ctx, p.Binary, path)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Video{}, services.Wrap(services.ErrTimeout, "media", "probe file", "ffprobe timed out", err)
		}
		return Video{}, services.Wrap(services.ErrExternalTool, "media", "probe file", "ffprobe inspection failed", err)
	}
	video, err := FromProbe(path, result)
	if err != nil {
		return Video{}, services.Wrap(services.ErrExternalTool, "media", "probe file", "ffprobe output unusable", err)
	}
	return video, nil
}

// FromProbe assembles a Video from parsed ffprobe output. Files without a
// video stream or with an unparseable duration fail the probe rather than
// producing a zeroed record.
func FromProbe(path string, result ffprobe.Result) (Video, error) {
	stream, ok := result.VideoStream()
	if !ok {
		return Video{}, fmt.Errorf("probe %s: no video stream", path)
	}
	duration := result.DurationSeconds()
	if math.IsNaN(duration) {
		return Video{}, fmt.Errorf("probe %s: unparseable duration", path)
	}
	fps := stream.FrameRate()
	if fps != 0 {
		fps = math.Round(fps*100) / 100
	}
	return Video{
		Filename: filepath.Base(path),
		Path:     path,
		Width:    stream.Width,
		Height:   stream.Height,
		FPS:      fps,
		Duration: duration,
		Bitrate:  result.BitRate(),
		Codec:    stream.CodecName,
	}, nil
}
