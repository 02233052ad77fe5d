package normalize_test

import (
	"testing"

	"atcsubs/internal/normalize"
)

func waypointSet(tokens ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

func TestNormalizePipeline(t *testing.T) {
	n := normalize.New(
		map[string]string{"APP": "Lisboa Approach", "LH": "Lufthansa Nine Seven Victor"},
		map[string]string{"QNH": "QNH", "ATIS": "ATIS information"},
		waypointSet("LAZET"),
	)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "speaker substitution",
			input: "contact APP on final",
			want:  "contact Lisboa Approach on final",
		},
		{
			name:  "speaker substitution keeps punctuation",
			input: "APP, good evening",
			want:  "Lisboa Approach, good evening",
		},
		{
			name:  "acronym exact match wins over phonetic",
			input: "ATIS received",
			want:  "ATIS information received",
		},
		{
			name:  "waypoint exempt from phonetic",
			input: "direct LAZET then descend",
			want:  "direct LAZET then descend",
		},
		{
			name:  "callsign spelled out",
			input: "DLH97V cleared",
			want:  "Delta Lima Hotel Niner Seven Victor cleared",
		},
		{
			name:  "digit run in ordinary token",
			input: "descend 3500 feet",
			want:  "descend three five zero zero feet",
		},
		{
			name:  "decimal between digits",
			input: "contact tower 118.1",
			want:  "contact tower one one eight decimal one",
		},
		{
			name:  "mixed-case token keeps letters",
			input: "the A321neo taxis",
			want:  "the A three two one neo taxis",
		},
		{
			name:  "quotes stripped once",
			input: `"don't forget QNH"`,
			want:  "don't forget QNH",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.input); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSpeakerSubstitutionInsideJoinedTokens(t *testing.T) {
	n := normalize.New(
		map[string]string{"APP": "Lisboa Approach", "TWR": "Lisboa Tower"},
		nil,
		nil,
	)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "slash-joined identifiers",
			input: "contact APP/TWR now",
			want:  "contact Lisboa Approach/Lisboa Tower now",
		},
		{
			name:  "hyphen-joined identifiers",
			input: "APP-TWR handoff complete",
			want:  "Lisboa Approach-Lisboa Tower handoff complete",
		},
		{
			name:  "identifier embedded in letters stays put",
			input: "the APPROACH segment",
			want:  "the APPROACH segment",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.input); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestAcronymExpansionDigitsSpoken(t *testing.T) {
	n := normalize.New(nil, map[string]string{"RVR": "runway visual range 600"}, nil)
	want := "runway visual range six zero zero reported"
	if got := n.Normalize("RVR reported"); got != want {
		t.Fatalf("Normalize(RVR reported) = %q, want %q", got, want)
	}
}

func TestAcronymRequiresWholeTokenMatch(t *testing.T) {
	n := normalize.New(nil, map[string]string{"FL": "Flight Level"}, nil)

	// Exact token hits the acronym table.
	if got := n.Normalize("maintain FL until advised"); got != "maintain Flight Level until advised" {
		t.Fatalf("exact match: got %q", got)
	}
	// FL250 is not an exact key, so it is spelled out character by character.
	want := "climb Foxtrot Lima Two Five Zero"
	if got := n.Normalize("climb FL250"); got != want {
		t.Fatalf("Normalize(climb FL250) = %q, want %q", got, want)
	}
}

func TestWaypointNeverExpandedRegardlessOfDigits(t *testing.T) {
	n := normalize.New(nil, nil, waypointSet("RULOX", "NE21"))
	if got := n.Normalize("via RULOX and NE21"); got != "via RULOX and NE21" {
		t.Fatalf("waypoints changed: %q", got)
	}
	// Case-insensitive exemption.
	if got := n.Normalize("via rulox"); got != "via rulox" {
		t.Fatalf("lowercase waypoint changed: %q", got)
	}
}

func TestNormalizeIdempotentOnExpandedOutput(t *testing.T) {
	n := normalize.New(
		map[string]string{"APP": "Lisboa Approach"},
		map[string]string{"FL": "Flight Level"},
		waypointSet("LAZET"),
	)
	inputs := []string{
		"APP climb FL250 via LAZET, squawk 7000, contact 118.1",
		"DLH97V descend 3500 feet",
	}
	for _, input := range inputs {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent:\n once: %q\ntwice: %q", once, twice)
		}
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello there"`, "hello there"},
		{`'hello there'`, "hello there"},
		{`"don\'t"`, "don't"},
		{`plain text`, "plain text"},
		{`"mismatched'`, `"mismatched'`},
		{`"`, `"`},
	}
	for _, tc := range tests {
		if got := normalize.StripQuotes(tc.input); got != tc.want {
			t.Fatalf("StripQuotes(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
