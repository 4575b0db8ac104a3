// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-ai-go/internal/config"
)

var (
	// Search options
	depth   = flag.Int("depth", config.DefaultDepth, "Search depth in plies")
	workers = flag.Int("workers", 1, "Number of goroutines searching root moves (1 = sequential)")

	// Play options
	humanSide = flag.String("human", "white", "Side played from stdin: white, black, both or none")
	maxPly    = flag.Int("maxply", 0, "Stop the game after N plies (0 = no limit)")

	// Output options
	outputFile = flag.String("o", "", "Write the game transcript to this file")
	jsonOutput = flag.Bool("J", false, "Write the transcript in JSON format")
	noCoords   = flag.Bool("nocoords", false, "Don't print rank and file labels around the board")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 game events, 2 search statistics")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("la", "", "Append diagnostics to log file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applySearchFlags(cfg)
	applyOutputFlags(cfg)
	if err := applyPlayFlags(cfg); err != nil {
		return err
	}
	cfg.Verbosity = *verbosity
	return cfg.Validate()
}

// applySearchFlags configures search depth and parallelism.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
}

// applyPlayFlags configures the human side and game length.
func applyPlayFlags(cfg *config.Config) error {
	side, err := config.ParseHumanSide(*humanSide)
	if err != nil {
		return err
	}
	cfg.Play.Human = side
	cfg.Play.MaxPlies = *maxPly
	return nil
}

// applyOutputFlags configures board labels and transcript format.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowCoordinates = !*noCoords
	if *jsonOutput {
		cfg.Output.TranscriptFormat = config.JSONTranscript
	} else {
		cfg.Output.TranscriptFormat = config.TextTranscript
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupTranscriptFile opens the transcript destination, if any.
func setupTranscriptFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating transcript file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.Output.TranscriptFile = file
}
