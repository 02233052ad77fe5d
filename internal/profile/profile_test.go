package profile_test

import (
	"errors"
	"strings"
	"testing"

	"atcsubs/internal/colorspec"
	"atcsubs/internal/commsfile"
	"atcsubs/internal/profile"
	"atcsubs/internal/timing"
)

func parseDoc(t *testing.T, text string) *commsfile.Document {
	t.Helper()
	doc, err := commsfile.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return doc
}

const baseProject = `
[metaTypes.Timestamp]
format = mm:ss
cps = 15

[metaTypes.Comment]
position = top-left
color = gray

[speakerTypes.ATC]
position = bottom-left
color = white
background = #00000080
background_lines_threshold = 2

[speakerTypes.Pilot]
position = bottom-right
color = cyan

[meta.T]
type = Timestamp

[meta.C]
type = Comment

[speakers.APP]
name = Lisboa Approach
type = ATC

[speakers.LH]
name = DLH97V
type = Pilot
color = blue
show_name = yes
`

func TestBuildCascade(t *testing.T) {
	model, err := profile.Build(parseDoc(t, baseProject), colorspec.AlphaTrailing)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	app, ok := model.Lookup("APP")
	if !ok {
		t.Fatal("APP not resolved")
	}
	if app.Kind != profile.KindSpeaker || app.DisplayName != "Lisboa Approach" {
		t.Fatalf("APP = %+v", app)
	}
	if app.Position != "bottom-left" || app.Alignment != 1 {
		t.Fatalf("APP position = %q alignment %d", app.Position, app.Alignment)
	}
	if !app.HasBackground || app.Threshold != 2 {
		t.Fatalf("APP background/threshold = %v/%d", app.HasBackground, app.Threshold)
	}

	// Per-speaker override beats the type default.
	lh, _ := model.Lookup("LH")
	if lh.ColorToken != "blue" || !lh.ShowName {
		t.Fatalf("LH = %+v", lh)
	}
	if lh.Position != "bottom-right" {
		t.Fatalf("LH position = %q", lh.Position)
	}
	if lh.HasBackground {
		t.Fatal("LH should inherit no background from Pilot")
	}

	ts, _ := model.Lookup("T")
	if ts.Kind != profile.KindTimestamp || ts.CPS != 15 || ts.Format != timing.FormatMinSec {
		t.Fatalf("T = %+v", ts)
	}

	c, _ := model.Lookup("C")
	if c.Kind != profile.KindMeta || c.Position != "top-left" || c.ColorToken != "gray" {
		t.Fatalf("C = %+v", c)
	}
}

func TestBuildBaselineDefaults(t *testing.T) {
	doc := parseDoc(t, `
[metaTypes.Timestamp]
cps = 12

[meta.T]
type = Timestamp

[speakers.X]
`)
	model, err := profile.Build(doc, colorspec.AlphaTrailing)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	x, _ := model.Lookup("X")
	if x.Position != "bottom-center" || x.Alignment != 2 {
		t.Fatalf("baseline position = %q alignment %d", x.Position, x.Alignment)
	}
	if x.HasBackground || x.Threshold != 1 || x.ShowName {
		t.Fatalf("baseline = %+v", x)
	}
	if x.DisplayName != "X" {
		t.Fatalf("display name should fall back to the key, got %q", x.DisplayName)
	}
}

func TestBuildStyleOrderIsDeclarationOrder(t *testing.T) {
	model, err := profile.Build(parseDoc(t, baseProject), colorspec.AlphaTrailing)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	var keys []string
	for _, style := range model.Styles() {
		keys = append(keys, style.Key)
	}
	want := []string{"APP", "LH", "C"}
	if len(keys) != len(want) {
		t.Fatalf("styles = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("styles = %v, want %v", keys, want)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		project string
		wantIs  error
		wantSub string
	}{
		{
			name: "missing timestamp alias",
			project: `
[metaTypes.Comment]
color = gray

[meta.C]
type = Comment
`,
			wantIs: profile.ErrMissingTimestampType,
		},
		{
			name: "unknown type reference",
			project: `
[metaTypes.Timestamp]
cps = 15

[meta.T]
type = Timestamp

[speakers.APP]
type = Tower
`,
			wantIs: profile.ErrUnknownTypeReference,
		},
		{
			name: "timestamp type with visual keys",
			project: `
[metaTypes.Timestamp]
cps = 15
color = red

[meta.T]
type = Timestamp
`,
			wantSub: "must not define position, color, or background",
		},
		{
			name: "non-timestamp type with cps",
			project: `
[metaTypes.Timestamp]
cps = 15

[speakerTypes.ATC]
cps = 20

[meta.T]
type = Timestamp
`,
			wantSub: "only the Timestamp type may define format or cps",
		},
		{
			name: "timestamp without cps",
			project: `
[metaTypes.Timestamp]
format = mm:ss

[meta.T]
type = Timestamp
`,
			wantSub: "must define cps",
		},
		{
			name: "bad color token",
			project: `
[metaTypes.Timestamp]
cps = 15

[meta.T]
type = Timestamp

[speakers.APP]
color = nosuchcolor
`,
			wantIs: colorspec.ErrInvalidColor,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := profile.Build(parseDoc(t, tc.project), colorspec.AlphaTrailing)
			if err == nil {
				t.Fatal("Build succeeded, want error")
			}
			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Fatalf("error = %v, want %v", err, tc.wantIs)
			}
			if tc.wantSub != "" && !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error = %v, want substring %q", err, tc.wantSub)
			}
		})
	}
}

func TestNormalizePosition(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"top-right", "top-right"},
		{"Top_Right", "top-right"},
		{"center", "bottom-center"},
		{"middle", "middle-center"},
		{"left-top", "top-left"},
		{"", "bottom-center"},
		{"nonsense", "bottom-center"},
	}
	for _, tc := range tests {
		if got := profile.NormalizePosition(tc.input); got != tc.want {
			t.Fatalf("NormalizePosition(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if got := profile.Alignment("top-center"); got != 8 {
		t.Fatalf("Alignment(top-center) = %d, want 8", got)
	}
}

func TestDisplayNamesCoversSpeakersOnly(t *testing.T) {
	model, err := profile.Build(parseDoc(t, baseProject), colorspec.AlphaTrailing)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	names := model.DisplayNames()
	if names["APP"] != "Lisboa Approach" || names["LH"] != "DLH97V" {
		t.Fatalf("names = %v", names)
	}
	if _, ok := names["C"]; ok {
		t.Fatal("meta aliases must not appear in the substitution map")
	}
}
