package burn

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"log/slog"

	"atcsubs/internal/compile"
	"atcsubs/internal/config"
	"atcsubs/internal/logging"
)

// ErrUnknownMode marks an unrecognized burn mode name.
var ErrUnknownMode = errors.New("unknown burn mode")

type commandRunner func(ctx context.Context, name string, args ...string) error

// Mode selects how the timeline is rendered onto video.
type Mode string

const (
	// ModeDefault burns the timeline over the full source video.
	ModeDefault Mode = "default"
	// ModeTrim burns the timeline and cuts the output to the event span.
	ModeTrim Mode = "trim"
	// ModeTransparent renders the timeline alone on a transparent canvas.
	ModeTransparent Mode = "transparent"
)

// ParseMode normalizes a user-supplied mode name.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ModeDefault):
		return ModeDefault, nil
	case string(ModeTrim):
		return ModeTrim, nil
	case string(ModeTransparent):
		return ModeTransparent, nil
	default:
		return "", fmt.Errorf("%w %q (want default, trim, or transparent)", ErrUnknownMode, value)
	}
}

// Request describes one burn-in run. Source holds the raw project bytes and
// Result the timeline compiled from them.
type Request struct {
	Mode       Mode
	Source     []byte
	Result     *compile.Result
	VideoPath  string // required for default and trim
	OutputPath string
}

// Burner executes ffmpeg burn-in runs.
type Burner struct {
	logger    *slog.Logger
	run       commandRunner
	binary    string
	framerate int
	crf       int
}

// New constructs a burner from burn configuration.
func New(cfg config.Burn, logger *slog.Logger) *Burner {
	return &Burner{
		logger:    logging.NewComponentLogger(logger, "burn"),
		run:       defaultCommandRunner,
		binary:    cfg.FFmpegBinary,
		framerate: cfg.Framerate,
		crf:       cfg.CRF,
	}
}

// WithCommandRunner allows injecting a custom command runner for tests.
func (b *Burner) WithCommandRunner(r commandRunner) {
	if b != nil && r != nil {
		b.run = r
	}
}

// Run writes the compiled timeline to a temporary ASS file and invokes
// ffmpeg according to the requested mode. The temporary file is removed on
// success and on ffmpeg failure alike.
func (b *Burner) Run(ctx context.Context, req Request) (string, error) {
	if b == nil {
		return "", fmt.Errorf("burner not initialized")
	}
	if req.Result == nil {
		return "", fmt.Errorf("compiled timeline is required")
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return "", fmt.Errorf("output path is required")
	}

	needsVideo := req.Mode == ModeDefault || req.Mode == ModeTrim
	if needsVideo {
		if strings.TrimSpace(req.VideoPath) == "" {
			return "", fmt.Errorf("mode %q requires a source video", req.Mode)
		}
		if _, err := os.Stat(req.VideoPath); err != nil {
			return "", fmt.Errorf("source video not found: %w", err)
		}
	}
	if (req.Mode == ModeTrim || req.Mode == ModeTransparent) && !req.Result.HasEvents {
		return "", fmt.Errorf("mode %q needs at least one timed event to determine the output span", req.Mode)
	}

	outPath := defaultExtension(req.OutputPath, req.Mode)

	assPath := tempASSPath(req.Source)
	if err := os.WriteFile(assPath, []byte(req.Result.Document.Render()), 0o644); err != nil {
		return "", fmt.Errorf("write temporary subtitle file: %w", err)
	}
	defer os.Remove(assPath)

	args, err := b.buildArgs(req, assPath, outPath)
	if err != nil {
		return "", err
	}

	b.logger.Debug("executing ffmpeg",
		"mode", string(req.Mode),
		"output", outPath,
		"subtitle_file", assPath,
	)

	if err := b.run(ctx, b.binary, args...); err != nil {
		return "", fmt.Errorf("ffmpeg failed: %w", err)
	}

	b.logger.Info("burn-in complete", "mode", string(req.Mode), "output", outPath)
	return outPath, nil
}

func (b *Burner) buildArgs(req Request, assPath, outPath string) ([]string, error) {
	vf := "subtitles=filename='" + escapeFilterPath(assPath) + "'"

	switch req.Mode {
	case ModeDefault:
		return []string{
			"-y",
			"-i", req.VideoPath,
			"-vf", vf,
			"-c:a", "copy",
			outPath,
		}, nil
	case ModeTrim:
		return []string{
			"-y",
			"-i", req.VideoPath,
			"-ss", formatSeconds(req.Result.Start.Seconds()),
			"-to", formatSeconds(req.Result.End.Seconds()),
			"-vf", vf,
			"-c:a", "copy",
			outPath,
		}, nil
	case ModeTransparent:
		canvas := fmt.Sprintf("color=c=black@0:s=%dx%d:r=%d:d=%s",
			req.Result.PlayResX, req.Result.PlayResY, b.framerate,
			formatSeconds(req.Result.End.Seconds()))
		return []string{
			"-y",
			"-f", "lavfi",
			"-i", canvas,
			"-vf", "format=yuva420p," + vf,
			"-c:v", "libvpx-vp9",
			"-crf", strconv.Itoa(b.crf),
			"-b:v", "0",
			"-deadline", "realtime",
			"-cpu-used", "8",
			"-pix_fmt", "yuva420p",
			outPath,
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, req.Mode)
	}
}

// tempASSPath names the temporary subtitle file after the project content so
// the path is stable across runs of the same input.
func tempASSPath(source []byte) string {
	sum := sha1.Sum(source)
	return filepath.Join(os.TempDir(), fmt.Sprintf("%x.ass", sum))
}

// defaultExtension appends a container extension when the output path has
// none: webm for transparent overlays, mp4 otherwise.
func defaultExtension(path string, mode Mode) string {
	if filepath.Ext(path) != "" {
		return path
	}
	if mode == ModeTransparent {
		return path + ".webm"
	}
	return path + ".mp4"
}

// escapeFilterPath escapes the characters ffmpeg's filter parser treats
// specially inside a quoted filename.
func escapeFilterPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.ReplaceAll(s, ":", `\:`)
	return strings.ReplaceAll(s, "'", `\'`)
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

func defaultCommandRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
