package main

import (
	"fmt"
	"os"

	"atcsubs/internal/commsfile"
)

// loadProject parses a project file and folds in any supplemental airdata
// libraries. Project-level acronyms win over library entries.
func loadProject(inputPath string, airdataPaths []string) (*commsfile.Document, []byte, error) {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read project file: %w", err)
	}

	doc, err := commsfile.ParseFile(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("parse project file: %w", err)
	}

	for _, path := range airdataPaths {
		airdata, err := commsfile.LoadAirdata(path)
		if err != nil {
			return nil, nil, fmt.Errorf("load airdata %q: %w", path, err)
		}
		doc.MergeAirdata(airdata)
	}

	return doc, source, nil
}
