// chess-ai plays chess against a minimax engine on the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-ai version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupTranscriptFile(cfg)

	session := NewSession(cfg, engine.NewGame())
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	closeFiles(cfg)
}

// closeFiles closes any files opened from flags.
func closeFiles(cfg *config.Config) {
	if f, ok := cfg.Output.TranscriptFile.(*os.File); ok {
		f.Close()
	}
	if f, ok := cfg.LogFile.(*os.File); ok && f != os.Stderr {
		f.Close()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-ai [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against a minimax engine. Enter moves as coordinates.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove input:\n")
	fmt.Fprintf(os.Stderr, "  e2e4   from and to squares\n")
	fmt.Fprintf(os.Stderr, "  e2 e4  separated by a space\n")
	fmt.Fprintf(os.Stderr, "  e2-e4  separated by a hyphen\n")
	fmt.Fprintf(os.Stderr, "  quit   end the game\n")
}
