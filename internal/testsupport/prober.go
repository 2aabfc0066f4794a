package testsupport

import (
	"context"
	"fmt"
	"path/filepath"

	"vidsort/internal/media"
)

// StubProber serves canned metadata keyed by base filename, standing in for
// ffprobe in scanner and command tests.
type StubProber struct {
	Videos   map[string]media.Video
	Failures map[string]error
	Calls    []string
}

// Probe returns the canned video or failure for the file's base name.
// Unknown files fail, so tests notice unexpected probes.
func (p *StubProber) Probe(ctx context.Context, path string) (media.Video, error) {
	name := filepath.Base(path)
	p.Calls = append(p.Calls, name)
	if err, ok := p.Failures[name]; ok {
		return media.Video{}, err
	}
	if video, ok := p.Videos[name]; ok {
		video.Filename = name
		video.Path = path
		return video, nil
	}
	return media.Video{}, fmt.Errorf("no stub metadata for %s", name)
}
