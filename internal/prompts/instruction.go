// Package prompts holds the formatting instruction prepended to
// read-and-append requests.
package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

//go:embed instruction.md
var builtin string

// OverridePath is where a user-supplied instruction replaces the built-in
// one: ~/.config/sheetsmart/instruction.md on Linux.
func OverridePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sheetsmart", "instruction.md"), nil
}

// Instruction returns the override file's text when it exists and is not
// blank, otherwise the built-in sentence.
func Instruction() (string, error) {
	if path, err := OverridePath(); err == nil {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if text := strings.TrimSpace(string(data)); text != "" {
				slog.Debug("using instruction override", "path", path)
				return text, nil
			}
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("reading instruction override: %w", err)
		}
	}
	return Builtin(), nil
}

// Builtin returns the instruction shipped with the binary.
func Builtin() string {
	return strings.TrimSpace(builtin)
}
