package ffprobe

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestInspectParsesVideoStream(t *testing.T) {
	var capturedArgs []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		capturedArgs = append([]string(nil), args...)
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FFPROBE_HELPER_MODE=success")
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})

	result, err := Inspect(context.Background(), "", "/videos/clip.mp4")
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}

	stream, ok := result.VideoStream()
	if !ok {
		t.Fatal("expected a video stream")
	}
	if stream.Width != 1920 || stream.Height != 1080 {
		t.Fatalf("unexpected dimensions: %dx%d", stream.Width, stream.Height)
	}
	if got := result.DurationSeconds(); got != 120.5 {
		t.Fatalf("unexpected duration: %v", got)
	}
	if got := result.BitRate(); got != 4000000 {
		t.Fatalf("unexpected bitrate: %d", got)
	}

	joined := strings.Join(capturedArgs, " ")
	if !strings.Contains(joined, "-select_streams v:0") {
		t.Fatalf("expected video stream selection in args: %v", capturedArgs)
	}
	if capturedArgs[len(capturedArgs)-1] != "/videos/clip.mp4" {
		t.Fatalf("expected path as final argument, got %v", capturedArgs)
	}
}

func TestInspectReportsToolFailure(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FFPROBE_HELPER_MODE=failure")
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})

	_, err := Inspect(context.Background(), "", "/videos/clip.mp4")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "no such file") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestDurationFallsBackToContainer(t *testing.T) {
	result := Result{
		Streams: []Stream{{Width: 640, Height: 480}},
		Format:  Format{Duration: "42.5", BitRate: "800000"},
	}
	if got := result.DurationSeconds(); got != 42.5 {
		t.Fatalf("expected container duration, got %v", got)
	}
	if got := result.BitRate(); got != 800000 {
		t.Fatalf("expected container bitrate, got %d", got)
	}
}

func TestDurationMalformedYieldsNaN(t *testing.T) {
	result := Result{Format: Format{Duration: "n/a"}}
	if got := result.DurationSeconds(); !math.IsNaN(got) {
		t.Fatalf("expected NaN for malformed duration, got %v", got)
	}
}

func TestBitRateMalformedYieldsZero(t *testing.T) {
	result := Result{Format: Format{BitRate: "n/a"}}
	if got := result.BitRate(); got != 0 {
		t.Fatalf("expected 0 for malformed bitrate, got %d", got)
	}
}

func TestFrameRate(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"30/1", 30},
		{"30000/1001", 30000.0 / 1001.0},
		{"25", 25},
		{"0/0", 0},
		{"", 0},
		{"garbage", 0},
	}
	for _, tc := range cases {
		s := Stream{RFrameRate: tc.raw}
		if got := s.FrameRate(); got != tc.want {
			t.Fatalf("FrameRate(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("FFPROBE_HELPER_MODE") {
	case "success":
		fmt.Println(`{
  "streams": [
    {
      "codec_name": "h264",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "30000/1001",
      "duration": "120.5",
      "bit_rate": "4000000"
    }
  ],
  "format": {
    "duration": "120.533000",
    "bit_rate": "4100000"
  }
}`)
		os.Exit(0)
	case "failure":
		fmt.Fprintln(os.Stderr, "/videos/clip.mp4: no such file")
		os.Exit(1)
	default:
		os.Exit(0)
	}
}
