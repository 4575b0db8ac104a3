package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWorkers sets the number of root search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithHuman sets which side reads moves from the input.
func (b *ConfigBuilder) WithHuman(side HumanSide) *ConfigBuilder {
	b.cfg.Play.Human = side
	return b
}

// WithMaxPlies caps the game length.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Play.MaxPlies = n
	return b
}

// WithCoordinates controls rank and file labels on the board.
func (b *ConfigBuilder) WithCoordinates(show bool) *ConfigBuilder {
	b.cfg.Output.ShowCoordinates = show
	return b
}

// WithTranscript sets where and how the game record is written.
func (b *ConfigBuilder) WithTranscript(w io.Writer, format TranscriptFormat) *ConfigBuilder {
	b.cfg.Output.TranscriptFile = w
	b.cfg.Output.TranscriptFormat = format
	return b
}

// WithInput sets the move input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
