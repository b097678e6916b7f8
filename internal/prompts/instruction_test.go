package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const builtinInstruction = "Please provide your response in a clean and structured manner, with only relevant data included. If asked to add data to the sheet, make sure to format it as a row with comma-separated values."

func writeOverride(t *testing.T, content string) {
	t.Helper()
	path, err := OverridePath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestInstructionBuiltin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := Instruction()
	require.NoError(t, err)
	assert.Equal(t, builtinInstruction, got)
	assert.Equal(t, builtinInstruction, Builtin())
}

func TestInstructionUserOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeOverride(t, "Answer with one CSV row.\n")

	got, err := Instruction()
	require.NoError(t, err)
	assert.Equal(t, "Answer with one CSV row.", got)
}

func TestInstructionBlankOverrideIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeOverride(t, "  \n\n")

	got, err := Instruction()
	require.NoError(t, err)
	assert.Equal(t, builtinInstruction, got)
}

func TestInstructionUnreadableOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path, err := OverridePath()
	require.NoError(t, err)
	// A directory in place of the file cannot be read.
	require.NoError(t, os.MkdirAll(path, 0755))

	_, err = Instruction()
	assert.ErrorContains(t, err, "reading instruction override")
}
