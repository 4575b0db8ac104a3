// Package config provides configuration for a chess-ai session.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Search *SearchConfig
	Play   *PlayConfig
	Output *OutputConfig

	// 0=nothing, 1=game events, 2=search statistics
	Verbosity int

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Play:       NewPlayConfig(),
		Output:     NewOutputConfig(),
		Verbosity:  1,
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Play.Validate()
}
