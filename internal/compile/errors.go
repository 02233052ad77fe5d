package compile

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks fatal configuration problems: missing mandatory
	// Timestamp alias, unknown type references, malformed colors or formats.
	ErrConfig = errors.New("config error")
	// ErrTranscript marks fatal transcript structure problems, reported with
	// the offending entry's position.
	ErrTranscript = errors.New("transcript error")
)

func configErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrConfig, err)
}

func transcriptErr(line int, err error) error {
	if err == nil {
		return nil
	}
	if line > 0 {
		return fmt.Errorf("%w: line %d: %w", ErrTranscript, line, err)
	}
	return fmt.Errorf("%w: %w", ErrTranscript, err)
}
