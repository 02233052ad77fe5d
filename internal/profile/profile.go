package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"atcsubs/internal/colorspec"
	"atcsubs/internal/commsfile"
	"atcsubs/internal/timing"
)

var (
	// ErrMissingTimestampType marks projects with no alias bound to the
	// mandatory Timestamp type.
	ErrMissingTimestampType = errors.New("no meta alias references the Timestamp type")
	// ErrUnknownTypeReference marks aliases or speakers whose type was never
	// declared.
	ErrUnknownTypeReference = errors.New("unknown type reference")
)

// timestampTypeName recognizes the mandatory timing type, matched
// case-insensitively like the rest of the type machinery.
const timestampTypeName = "timestamp"

// Kind classifies a rendered entity.
type Kind int

const (
	// KindSpeaker is a voice with its own subtitle style.
	KindSpeaker Kind = iota
	// KindMeta is a non-speaker alias rendered on the commentary layer.
	KindMeta
	// KindTimestamp is an alias carrying timing anchors, never rendered.
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindSpeaker:
		return "speaker"
	case KindMeta:
		return "meta"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Resolved is the flattened effective profile for one entity. Built once,
// never mutated.
type Resolved struct {
	Key         string
	Kind        Kind
	TypeName    string
	DisplayName string

	Position        string
	Alignment       int
	ColorToken      string
	Color           colorspec.RGBA
	BackgroundToken string
	Background      colorspec.RGBA
	HasBackground   bool
	Threshold       int
	ShowName        bool

	// Timing fields, meaningful only for KindTimestamp.
	Format timing.Format
	CPS    float64
}

// Model holds every resolved profile, keyed by the identifier used in the
// transcript.
type Model struct {
	entities map[string]*Resolved
	styles   []*Resolved
}

// fields is one cascade layer: a plain record of optional values parsed from
// a config section. Nil means "not set at this layer".
type fields struct {
	name       *string
	typeName   *string
	position   *string
	color      *string
	background *string
	threshold  *int
	showName   *bool
	format     *string
	cps        *float64
}

func parseFields(section map[string]string, subject string) (fields, error) {
	var f fields
	for key, raw := range section {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		switch key {
		case "name":
			f.name = &value
		case "type":
			f.typeName = &value
		case "position":
			f.position = &value
		case "color":
			f.color = &value
		case "background":
			f.background = &value
		case "background_lines_threshold":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return fields{}, fmt.Errorf("%s: background_lines_threshold must be a positive integer, got %q", subject, value)
			}
			f.threshold = &n
		case "show_name":
			b, err := parseBool(value)
			if err != nil {
				return fields{}, fmt.Errorf("%s: show_name: %w", subject, err)
			}
			f.showName = &b
		case "format":
			f.format = &value
		case "cps":
			cps, err := strconv.ParseFloat(value, 64)
			if err != nil || cps <= 0 {
				return fields{}, fmt.Errorf("%s: cps must be a positive number, got %q", subject, value)
			}
			f.cps = &cps
		}
	}
	return f, nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", value)
	}
}

func (f fields) hasVisual() bool {
	return f.position != nil || f.color != nil || f.background != nil
}

func (f fields) hasTiming() bool {
	return f.format != nil || f.cps != nil
}

// merge folds a higher-precedence layer over f, field by field, only for
// values the layer explicitly sets.
func (f fields) merge(over fields) fields {
	out := f
	if over.name != nil {
		out.name = over.name
	}
	if over.typeName != nil {
		out.typeName = over.typeName
	}
	if over.position != nil {
		out.position = over.position
	}
	if over.color != nil {
		out.color = over.color
	}
	if over.background != nil {
		out.background = over.background
	}
	if over.threshold != nil {
		out.threshold = over.threshold
	}
	if over.showName != nil {
		out.showName = over.showName
	}
	if over.format != nil {
		out.format = over.format
	}
	if over.cps != nil {
		out.cps = over.cps
	}
	return out
}

// Build resolves every speaker and meta alias declared in the document into
// a read-only model. All validation happens here, before any timing or
// wrapping runs.
func Build(doc *commsfile.Document, alphaOrder colorspec.AlphaOrder) (*Model, error) {
	types := map[string]fields{}
	isTimestampType := map[string]bool{}

	for _, group := range []map[string]map[string]string{doc.MetaTypes, doc.SpeakerTypes} {
		for name, section := range group {
			subject := fmt.Sprintf("type %q", name)
			f, err := parseFields(section, subject)
			if err != nil {
				return nil, err
			}
			if strings.EqualFold(name, timestampTypeName) {
				if f.hasVisual() {
					return nil, fmt.Errorf("%s: the Timestamp type must not define position, color, or background", subject)
				}
				isTimestampType[name] = true
			} else if f.hasTiming() {
				return nil, fmt.Errorf("%s: only the Timestamp type may define format or cps", subject)
			}
			types[name] = f
		}
	}

	model := &Model{entities: map[string]*Resolved{}}
	sawTimestamp := false

	for _, key := range doc.MetaOrder {
		f, err := parseFields(doc.Meta[key], fmt.Sprintf("meta alias %q", key))
		if err != nil {
			return nil, err
		}
		typeFields, typeName, timestamp, err := lookupType(types, isTimestampType, f, fmt.Sprintf("meta alias %q", key))
		if err != nil {
			return nil, err
		}
		if timestamp {
			if f.hasVisual() {
				return nil, fmt.Errorf("meta alias %q is a Timestamp and must not define position, color, or background", key)
			}
			sawTimestamp = true
		} else if f.hasTiming() {
			return nil, fmt.Errorf("meta alias %q has type %q and may not define format or cps", key, typeName)
		}

		kind := KindMeta
		if timestamp {
			kind = KindTimestamp
		}
		resolved, err := flatten(key, kind, typeName, typeFields.merge(f), alphaOrder)
		if err != nil {
			return nil, err
		}
		model.entities[key] = resolved
	}

	for _, key := range doc.SpeakerOrder {
		f, err := parseFields(doc.Speakers[key], fmt.Sprintf("speaker %q", key))
		if err != nil {
			return nil, err
		}
		if f.hasTiming() {
			return nil, fmt.Errorf("speaker %q may not define format or cps", key)
		}
		typeFields, typeName, timestamp, err := lookupType(types, isTimestampType, f, fmt.Sprintf("speaker %q", key))
		if err != nil {
			return nil, err
		}
		if timestamp {
			return nil, fmt.Errorf("speaker %q may not use the Timestamp type", key)
		}
		resolved, err := flatten(key, KindSpeaker, typeName, typeFields.merge(f), alphaOrder)
		if err != nil {
			return nil, err
		}
		model.entities[key] = resolved
	}

	if !sawTimestamp {
		return nil, ErrMissingTimestampType
	}

	for _, key := range doc.SpeakerOrder {
		model.styles = append(model.styles, model.entities[key])
	}
	for _, key := range doc.MetaOrder {
		if resolved := model.entities[key]; resolved.Kind == KindMeta {
			model.styles = append(model.styles, resolved)
		}
	}

	return model, nil
}

func lookupType(types map[string]fields, isTimestampType map[string]bool, f fields, subject string) (fields, string, bool, error) {
	if f.typeName == nil {
		return fields{}, "", false, nil
	}
	name := *f.typeName
	typeFields, ok := types[name]
	if !ok {
		return fields{}, "", false, fmt.Errorf("%w: %s references type %q", ErrUnknownTypeReference, subject, name)
	}
	return typeFields, name, isTimestampType[name], nil
}

// flatten turns the merged field record into a Resolved profile, applying the
// hardcoded baseline for anything still unset.
func flatten(key string, kind Kind, typeName string, f fields, alphaOrder colorspec.AlphaOrder) (*Resolved, error) {
	resolved := &Resolved{
		Key:         key,
		Kind:        kind,
		TypeName:    typeName,
		DisplayName: key,
		Position:    defaultPosition,
		ColorToken:  "white",
		Threshold:   1,
	}
	if f.name != nil {
		resolved.DisplayName = *f.name
	}
	if f.position != nil {
		resolved.Position = NormalizePosition(*f.position)
	}
	resolved.Alignment = Alignment(resolved.Position)
	if f.color != nil {
		resolved.ColorToken = *f.color
	}
	if f.threshold != nil {
		resolved.Threshold = *f.threshold
	}
	if f.showName != nil {
		resolved.ShowName = *f.showName
	}

	if kind == KindTimestamp {
		format := timing.FormatMinSec
		if f.format != nil {
			parsed, err := timing.ParseFormat(*f.format)
			if err != nil {
				return nil, fmt.Errorf("alias %q: %w", key, err)
			}
			format = parsed
		}
		resolved.Format = format
		if f.cps == nil {
			return nil, fmt.Errorf("alias %q resolves to the Timestamp type and must define cps", key)
		}
		resolved.CPS = *f.cps
		return resolved, nil
	}

	color, err := colorspec.Resolve(resolved.ColorToken, alphaOrder)
	if err != nil {
		return nil, fmt.Errorf("entity %q: color: %w", key, err)
	}
	resolved.Color = color

	if f.background != nil && !strings.EqualFold(strings.TrimSpace(*f.background), "none") {
		resolved.BackgroundToken = *f.background
		background, err := colorspec.Resolve(*f.background, alphaOrder)
		if err != nil {
			return nil, fmt.Errorf("entity %q: background: %w", key, err)
		}
		resolved.Background = background
		resolved.HasBackground = true
	}

	return resolved, nil
}

// Lookup returns the resolved profile for a transcript key.
func (m *Model) Lookup(key string) (*Resolved, bool) {
	resolved, ok := m.entities[key]
	return resolved, ok
}

// Styles lists every renderable profile (speakers first, then meta aliases)
// in declaration order.
func (m *Model) Styles() []*Resolved {
	return m.styles
}

// DisplayNames maps speaker identifiers to display names for the normalizer's
// speaker-substitution step.
func (m *Model) DisplayNames() map[string]string {
	out := map[string]string{}
	for key, resolved := range m.entities {
		if resolved.Kind == KindSpeaker {
			out[key] = resolved.DisplayName
		}
	}
	return out
}
