package compile

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"atcsubs/internal/ass"
	"atcsubs/internal/colorspec"
	"atcsubs/internal/commsfile"
	"atcsubs/internal/config"
	"atcsubs/internal/layout"
	"atcsubs/internal/logging"
	"atcsubs/internal/normalize"
	"atcsubs/internal/profile"
	"atcsubs/internal/timing"
)

// Options carries compile-time inputs beyond the document itself.
type Options struct {
	// Defaults supplies render geometry when the project file has no
	// [render] section of its own.
	Defaults config.Render
	Logger   *slog.Logger
}

// Result is the compiled timeline plus the metadata burn-in needs.
type Result struct {
	Document *ass.Document
	Warnings []timing.Warning

	HasEvents bool
	Start     time.Duration
	End       time.Duration
	PlayResX  int
	PlayResY  int
}

type renderOptions struct {
	playResX   int
	playResY   int
	wrapRatio  float64
	alphaOrder colorspec.AlphaOrder
}

// Compile turns a parsed comms document into a subtitle timeline. It is
// all-or-nothing: any configuration or transcript structure problem aborts
// with no output.
func Compile(doc *commsfile.Document, opts Options) (*Result, error) {
	logger := logging.NewComponentLogger(opts.Logger, "compiler")

	render, err := resolveRenderOptions(doc.Render, opts.Defaults)
	if err != nil {
		return nil, configErr(err)
	}

	model, err := profile.Build(doc, render.alphaOrder)
	if err != nil {
		return nil, configErr(err)
	}

	normalizer := normalize.New(model.DisplayNames(), doc.Acronyms, doc.LiteralWaypoints())

	entries := make([]timing.Entry, 0, len(doc.Comms))
	for i, record := range doc.Comms {
		resolved, ok := model.Lookup(record.Key)
		if !ok {
			return nil, transcriptErr(record.Line, fmt.Errorf("unknown key %q at entry %d", record.Key, i))
		}
		if resolved.Kind == profile.KindTimestamp {
			at, err := timing.ParseTimestamp(record.Value, resolved.Format)
			if err != nil {
				return nil, transcriptErr(record.Line, err)
			}
			entries = append(entries, timing.Entry{
				Key:    record.Key,
				Index:  i,
				Anchor: true,
				At:     at,
				CPS:    resolved.CPS,
			})
			continue
		}
		layer := 0
		if resolved.Kind == profile.KindMeta {
			layer = 1
		}
		entries = append(entries, timing.Entry{
			Key:   record.Key,
			Index: i,
			Text:  normalizer.Normalize(record.Value),
			Layer: layer,
		})
	}

	events, warnings, err := timing.Allocate(entries)
	if err != nil {
		return nil, transcriptErr(0, err)
	}
	for _, warning := range warnings {
		logger.Warn("estimation fallback", "entry", warning.Index, "reason", warning.Message)
	}

	document := &ass.Document{
		PlayResX: render.playResX,
		PlayResY: render.playResY,
		FontSize: layout.FontSize,
	}
	for _, style := range model.Styles() {
		document.AddStyle(ass.Style{
			Name:          style.Key,
			PrimaryColour: style.Color.Text(),
			// Backgrounds are drawn as separate box events, not BorderStyle=3.
			BackColour: "&H00000000",
			Alignment:  style.Alignment,
			MarginL:    layout.MarginL,
			MarginR:    layout.MarginR,
			MarginV:    layout.MarginV,
		})
	}

	maxUnits := layout.MaxUnitsPerLine(render.playResX, render.wrapRatio)

	result := &Result{
		Document: document,
		Warnings: warnings,
		PlayResX: render.playResX,
		PlayResY: render.playResY,
	}

	for _, event := range events {
		resolved, _ := model.Lookup(event.Key)
		wrapped := layout.Wrap(event.Text, maxUnits)

		if layout.ShowBox(resolved.HasBackground, wrapped.LineCount(), resolved.Threshold) {
			document.AddEvent(backgroundEvent(resolved, wrapped, event, render))
		}

		text := wrapped.Text
		if resolved.ShowName {
			text = resolved.DisplayName + ": " + text
		}
		document.AddEvent(ass.Event{
			Layer: event.Layer,
			Start: event.Start,
			End:   event.End,
			Style: event.Key,
			Name:  ass.EscapeText(resolved.DisplayName),
			Text:  `{\q2}` + ass.EscapeText(text),
		})

		if !result.HasEvents || event.Start < result.Start {
			result.Start = event.Start
		}
		if event.End > result.End {
			result.End = event.End
		}
		result.HasEvents = true
	}

	logger.Info("compiled timeline",
		"events", len(document.Events),
		"styles", len(document.Styles),
		"warnings", len(warnings),
	)

	return result, nil
}

// backgroundEvent builds the box drawing event rendered beneath a message.
func backgroundEvent(resolved *profile.Resolved, wrapped layout.Wrapped, event timing.Event, render renderOptions) ass.Event {
	height := layout.BoxHeight(wrapped.LineCount())
	top := layout.BoxTop(resolved.Alignment, height, render.playResY)
	textWidth := layout.TextCoreWidth(wrapped.MaxUnits)
	left, width := layout.BoxX(resolved.Alignment, textWidth, render.playResX)
	alpha, bgr := resolved.Background.SplitBackground()

	text := fmt.Sprintf(
		`{\p1\pos(%d,%d)\an7\bord0\shad0\1c&H%s&\1a&H%s&}%s{\p0}`,
		left, top, bgr, alpha, layout.RoundedRectPath(width, height),
	)

	return ass.Event{
		Rank:  -1,
		Layer: 0,
		Start: event.Start,
		End:   event.End,
		Style: "Default",
		Text:  text,
	}
}

func resolveRenderOptions(section map[string]string, defaults config.Render) (renderOptions, error) {
	render := renderOptions{
		playResX:  defaults.PlayResX,
		playResY:  defaults.PlayResY,
		wrapRatio: defaults.WrapWidthRatio,
	}
	if render.playResX <= 0 {
		render.playResX = 1920
	}
	if render.playResY <= 0 {
		render.playResY = 1080
	}
	if render.wrapRatio == 0 {
		render.wrapRatio = 0.75
	}

	order, err := colorspec.ParseAlphaOrder(defaults.AlphaOrder)
	if err != nil {
		return renderOptions{}, err
	}
	render.alphaOrder = order

	if value, ok := section["play_res_x"]; ok {
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return renderOptions{}, fmt.Errorf("render: play_res_x must be a positive integer, got %q", value)
		}
		render.playResX = n
	}
	if value, ok := section["play_res_y"]; ok {
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return renderOptions{}, fmt.Errorf("render: play_res_y must be a positive integer, got %q", value)
		}
		render.playResY = n
	}
	if value, ok := section["wrap_width_ratio"]; ok {
		ratio, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return renderOptions{}, fmt.Errorf("render: wrap_width_ratio must be a number, got %q", value)
		}
		render.wrapRatio = ratio
	}
	if value, ok := section["alpha_order"]; ok {
		order, err := colorspec.ParseAlphaOrder(value)
		if err != nil {
			return renderOptions{}, fmt.Errorf("render: %w", err)
		}
		render.alphaOrder = order
	}

	render.wrapRatio = config.ClampWrapRatio(render.wrapRatio)
	return render, nil
}
