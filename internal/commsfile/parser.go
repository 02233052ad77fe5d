package commsfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one ordered [comms] entry: a timestamp anchor or a message.
type Record struct {
	Key   string
	Value string
	Line  int
}

// Document is the parsed project file. Section key/value maps use lowercase
// field names; speaker and alias keys keep the case they were written with.
type Document struct {
	MetaTypes    map[string]map[string]string
	SpeakerTypes map[string]map[string]string
	Meta         map[string]map[string]string
	Speakers     map[string]map[string]string
	Acronyms     map[string]string
	Waypoints    map[string]map[string]struct{}
	Render       map[string]string
	Comms        []Record

	// Declaration order, kept so style output is deterministic.
	SpeakerOrder []string
	MetaOrder    []string
}

func newDocument() *Document {
	return &Document{
		MetaTypes:    map[string]map[string]string{},
		SpeakerTypes: map[string]map[string]string{},
		Meta:         map[string]map[string]string{},
		Speakers:     map[string]map[string]string{},
		Acronyms:     map[string]string{},
		Waypoints:    map[string]map[string]struct{}{},
		Render:       map[string]string{},
	}
}

// ParseFile reads and parses a project file from disk.
func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open comms file: %w", err)
	}
	defer file.Close()
	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionKV
	sectionComms
	sectionWaypoints
	sectionAcronym
)

// Parse reads a project file. Comment lines start with ';' or '#'. Section
// headers select how following lines are interpreted.
func Parse(r io.Reader) (*Document, error) {
	doc := newDocument()

	kind := sectionNone
	var kv map[string]string
	var waypointGroup map[string]struct{}
	var acronymKey string
	var sectionName string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sectionName = strings.TrimSpace(line[1 : len(line)-1])
			kind, kv, waypointGroup, acronymKey = doc.openSection(sectionName)
			continue
		}

		switch kind {
		case sectionNone:
			return nil, fmt.Errorf("line %d: content before any section header", lineNo)
		case sectionComms:
			key, value, ok := splitKV(line)
			if !ok {
				return nil, fmt.Errorf("line %d: [comms] entry is not key=value", lineNo)
			}
			doc.Comms = append(doc.Comms, Record{Key: strings.ToUpper(key), Value: value, Line: lineNo})
		case sectionWaypoints:
			for _, token := range strings.Split(line, ",") {
				token = strings.TrimSpace(token)
				if token != "" {
					waypointGroup[token] = struct{}{}
				}
			}
		case sectionAcronym:
			key, value, ok := splitKV(line)
			if !ok {
				return nil, fmt.Errorf("line %d: [%s] entry is not key=value", lineNo, sectionName)
			}
			if strings.ToLower(key) == "extension" && value != "" {
				doc.Acronyms[acronymKey] = value
			}
		case sectionKV:
			if kv == nil {
				continue // recognized but unused section
			}
			key, value, ok := splitKV(line)
			if !ok {
				return nil, fmt.Errorf("line %d: [%s] entry is not key=value", lineNo, sectionName)
			}
			kv[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read comms file: %w", err)
	}

	return doc, nil
}

func (d *Document) openSection(name string) (sectionKind, map[string]string, map[string]struct{}, string) {
	lower := strings.ToLower(name)

	switch {
	case lower == "comms":
		return sectionComms, nil, nil, ""
	case lower == "render":
		return sectionKV, d.Render, nil, ""
	case strings.HasPrefix(lower, "waypoints."):
		group := strings.ToUpper(strings.TrimSpace(name[len("waypoints."):]))
		if d.Waypoints[group] == nil {
			d.Waypoints[group] = map[string]struct{}{}
		}
		return sectionWaypoints, nil, d.Waypoints[group], ""
	case strings.HasPrefix(lower, "acronyms."):
		key := strings.ToUpper(strings.TrimSpace(name[len("acronyms."):]))
		return sectionAcronym, nil, nil, key
	case strings.HasPrefix(lower, "metatypes."):
		return sectionKV, ensureSection(d.MetaTypes, suffix(name)), nil, ""
	case strings.HasPrefix(lower, "speakertypes."):
		return sectionKV, ensureSection(d.SpeakerTypes, suffix(name)), nil, ""
	case strings.HasPrefix(lower, "meta."):
		key := suffix(name)
		if _, seen := d.Meta[key]; !seen {
			d.MetaOrder = append(d.MetaOrder, key)
		}
		return sectionKV, ensureSection(d.Meta, key), nil, ""
	case strings.HasPrefix(lower, "speakers."):
		key := suffix(name)
		if _, seen := d.Speakers[key]; !seen {
			d.SpeakerOrder = append(d.SpeakerOrder, key)
		}
		return sectionKV, ensureSection(d.Speakers, key), nil, ""
	default:
		// Unknown sections are tolerated so project files can carry notes.
		return sectionKV, nil, nil, ""
	}
}

func suffix(name string) string {
	if idx := strings.Index(name, "."); idx >= 0 {
		return strings.TrimSpace(name[idx+1:])
	}
	return strings.TrimSpace(name)
}

func ensureSection(sections map[string]map[string]string, key string) map[string]string {
	if sections[key] == nil {
		sections[key] = map[string]string{}
	}
	return sections[key]
}

func splitKV(line string) (string, string, bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// LiteralWaypoints flattens every waypoint group into one exemption set.
func (d *Document) LiteralWaypoints() map[string]struct{} {
	out := map[string]struct{}{}
	for _, group := range d.Waypoints {
		for token := range group {
			out[token] = struct{}{}
		}
	}
	return out
}
