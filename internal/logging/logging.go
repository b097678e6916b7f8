package logging

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Setup initializes the global slog logger using charmbracelet/log as the backend.
// If the output is a terminal, uses colored text format. Otherwise, uses JSON format.
func Setup(verbose bool) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, verbose, isTerminal())))
}

// NewHandler builds the charmbracelet/log handler used by Setup.
func NewHandler(w io.Writer, verbose, tty bool) *charmlog.Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "sheetsmart",
	})

	if verbose {
		handler.SetLevel(charmlog.DebugLevel)
	} else {
		handler.SetLevel(charmlog.InfoLevel)
	}

	// Use plain format for non-TTY output
	if !tty {
		handler.SetFormatter(charmlog.JSONFormatter)
	}
	return handler
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
