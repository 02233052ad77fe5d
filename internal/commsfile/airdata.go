package commsfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Airdata is a supplemental waypoint/acronym library shared across projects,
// typically maintained alongside route charts rather than per-video INIs.
type Airdata struct {
	Waypoints map[string][]string `yaml:"waypoints"`
	Acronyms  map[string]string   `yaml:"acronyms"`
}

// LoadAirdata reads a YAML airdata library from disk.
func LoadAirdata(path string) (*Airdata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read airdata: %w", err)
	}
	var airdata Airdata
	if err := yaml.Unmarshal(data, &airdata); err != nil {
		return nil, fmt.Errorf("parse airdata %s: %w", path, err)
	}
	return &airdata, nil
}

// MergeAirdata folds a supplemental library into the document. Project-file
// acronym entries win over library ones.
func (d *Document) MergeAirdata(airdata *Airdata) {
	if airdata == nil {
		return
	}
	for group, tokens := range airdata.Waypoints {
		group = strings.ToUpper(strings.TrimSpace(group))
		if group == "" {
			continue
		}
		if d.Waypoints[group] == nil {
			d.Waypoints[group] = map[string]struct{}{}
		}
		for _, token := range tokens {
			token = strings.TrimSpace(token)
			if token != "" {
				d.Waypoints[group][token] = struct{}{}
			}
		}
	}
	for key, expansion := range airdata.Acronyms {
		key = strings.ToUpper(strings.TrimSpace(key))
		expansion = strings.TrimSpace(expansion)
		if key == "" || expansion == "" {
			continue
		}
		if _, exists := d.Acronyms[key]; !exists {
			d.Acronyms[key] = expansion
		}
	}
}
