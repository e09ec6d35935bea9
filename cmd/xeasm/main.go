// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// newLogger creates the command logger. XEASM_LOG_LEVEL selects the level;
// verbose forces debug.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "xeasm"})

	level, err := log.ParseLevel(strings.ToLower(os.Getenv("XEASM_LOG_LEVEL")))
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	return logger
}

func main() {
	root := newRootCmd()

	// fang renders help and errors for a terminal; piped output stays plain.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := root.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := fang.Execute(context.Background(), root, fang.WithNotifySignal(os.Interrupt)); err != nil {
		os.Exit(1)
	}
}
