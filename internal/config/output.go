package config

import "io"

// TranscriptFormat selects how the finished game is written.
type TranscriptFormat int

const (
	TextTranscript TranscriptFormat = iota
	JSONTranscript
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// ShowCoordinates adds rank numbers and file letters around the board.
	ShowCoordinates bool

	// TranscriptFormat is the format of the end-of-game record.
	TranscriptFormat TranscriptFormat

	// TranscriptFile receives the end-of-game record (nil = none).
	TranscriptFile io.Writer
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowCoordinates:  true,
		TranscriptFormat: TextTranscript,
	}
}
