package burn

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"atcsubs/internal/ass"
	"atcsubs/internal/compile"
	"atcsubs/internal/config"
	"atcsubs/internal/logging"
)

func testResult() *compile.Result {
	doc := &ass.Document{PlayResX: 1920, PlayResY: 1080, FontSize: 56}
	doc.AddEvent(ass.Event{
		Start: 12 * time.Second,
		End:   15 * time.Second,
		Style: "APP",
		Text:  `{\q2}roger`,
	})
	return &compile.Result{
		Document:  doc,
		HasEvents: true,
		Start:     12 * time.Second,
		End:       15 * time.Second,
		PlayResX:  1920,
		PlayResY:  1080,
	}
}

func testBurner(t *testing.T) (*Burner, *[][]string) {
	t.Helper()
	b := New(config.Default().Burn, logging.NewNop())
	var calls [][]string
	b.WithCommandRunner(func(_ context.Context, name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return nil
	})
	return b, &calls
}

func writeVideo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.mp4")
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	return path
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "", want: ModeDefault},
		{input: "default", want: ModeDefault},
		{input: "Trim", want: ModeTrim},
		{input: " transparent ", want: ModeTransparent},
		{input: "overlay", wantErr: true},
	}
	for _, tc := range tests {
		mode, err := ParseMode(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownMode) {
				t.Fatalf("ParseMode(%q) error = %v, want ErrUnknownMode", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q) returned error: %v", tc.input, err)
		}
		if mode != tc.want {
			t.Fatalf("ParseMode(%q) = %q, want %q", tc.input, mode, tc.want)
		}
	}
}

func TestRunDefaultMode(t *testing.T) {
	b, calls := testBurner(t)
	video := writeVideo(t)
	out := filepath.Join(t.TempDir(), "burned")

	got, err := b.Run(context.Background(), Request{
		Mode:       ModeDefault,
		Source:     []byte("project"),
		Result:     testResult(),
		VideoPath:  video,
		OutputPath: out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != out+".mp4" {
		t.Fatalf("output = %q, want %q", got, out+".mp4")
	}
	if len(*calls) != 1 {
		t.Fatalf("runner called %d times, want 1", len(*calls))
	}
	args := (*calls)[0]
	if args[0] != "ffmpeg" {
		t.Fatalf("binary = %q", args[0])
	}
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-i "+video) {
		t.Fatalf("missing video input: %v", args)
	}
	if !strings.Contains(joined, "subtitles=filename='") {
		t.Fatalf("missing subtitles filter: %v", args)
	}
	if strings.Contains(joined, "-ss") {
		t.Fatalf("default mode should not trim: %v", args)
	}
}

func TestRunTrimModePassesEventSpan(t *testing.T) {
	b, calls := testBurner(t)
	video := writeVideo(t)

	if _, err := b.Run(context.Background(), Request{
		Mode:       ModeTrim,
		Source:     []byte("project"),
		Result:     testResult(),
		VideoPath:  video,
		OutputPath: filepath.Join(t.TempDir(), "burned.mp4"),
	}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	joined := strings.Join((*calls)[0], " ")
	if !strings.Contains(joined, "-ss 12.000") || !strings.Contains(joined, "-to 15.000") {
		t.Fatalf("missing trim span: %s", joined)
	}
}

func TestRunTransparentMode(t *testing.T) {
	b, calls := testBurner(t)
	out := filepath.Join(t.TempDir(), "overlay")

	got, err := b.Run(context.Background(), Request{
		Mode:       ModeTransparent,
		Source:     []byte("project"),
		Result:     testResult(),
		OutputPath: out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != out+".webm" {
		t.Fatalf("output = %q, want %q", got, out+".webm")
	}
	joined := strings.Join((*calls)[0], " ")
	if !strings.Contains(joined, "color=c=black@0:s=1920x1080:r=30:d=15.000") {
		t.Fatalf("missing transparent canvas: %s", joined)
	}
	if !strings.Contains(joined, "libvpx-vp9") || !strings.Contains(joined, "yuva420p") {
		t.Fatalf("missing vp9 alpha encode flags: %s", joined)
	}
}

func TestRunValidation(t *testing.T) {
	b, _ := testBurner(t)

	if _, err := b.Run(context.Background(), Request{
		Mode:       ModeDefault,
		Result:     testResult(),
		OutputPath: "out.mp4",
	}); err == nil {
		t.Fatal("expected error when default mode has no video")
	}

	empty := testResult()
	empty.HasEvents = false
	if _, err := b.Run(context.Background(), Request{
		Mode:       ModeTransparent,
		Result:     empty,
		OutputPath: "out.webm",
	}); err == nil {
		t.Fatal("expected error when transparent mode has no events")
	}
}

func TestRunWritesAndRemovesTemporaryASS(t *testing.T) {
	b := New(config.Default().Burn, logging.NewNop())
	video := writeVideo(t)

	var assPath string
	b.WithCommandRunner(func(_ context.Context, _ string, args ...string) error {
		for _, arg := range args {
			if strings.HasPrefix(arg, "subtitles=filename='") {
				assPath = strings.TrimSuffix(strings.TrimPrefix(arg, "subtitles=filename='"), "'")
				assPath = strings.ReplaceAll(assPath, `\:`, ":")
			}
		}
		if assPath == "" {
			t.Fatal("no subtitles filter in args")
		}
		data, err := os.ReadFile(assPath)
		if err != nil {
			t.Fatalf("temporary ASS not readable during run: %v", err)
		}
		if !strings.Contains(string(data), "[Events]") {
			t.Fatalf("temporary ASS missing events section:\n%s", data)
		}
		return nil
	})

	if _, err := b.Run(context.Background(), Request{
		Mode:       ModeDefault,
		Source:     []byte("project body"),
		Result:     testResult(),
		VideoPath:  video,
		OutputPath: filepath.Join(t.TempDir(), "burned.mp4"),
	}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if _, err := os.Stat(assPath); !os.IsNotExist(err) {
		t.Fatalf("temporary ASS not removed: %v", err)
	}

	if !strings.HasSuffix(assPath, ".ass") {
		t.Fatalf("temporary path %q should end in .ass", assPath)
	}
}

func TestRunFFmpegFailureIsWrapped(t *testing.T) {
	b := New(config.Default().Burn, logging.NewNop())
	sentinel := errors.New("boom")
	b.WithCommandRunner(func(_ context.Context, _ string, _ ...string) error {
		return sentinel
	})

	_, err := b.Run(context.Background(), Request{
		Mode:       ModeDefault,
		Result:     testResult(),
		VideoPath:  writeVideo(t),
		OutputPath: "out.mp4",
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want wrapped runner error", err)
	}
}
