package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInstruction = "Please provide your response in a clean and structured manner, with only relevant data included. If asked to add data to the sheet, make sure to format it as a row with comma-separated values."

func TestSerializeRows(t *testing.T) {
	assert.Equal(t, "a, b\nc, d", SerializeRows([][]string{{"a", "b"}, {"c", "d"}}))
	assert.Equal(t, "solo", SerializeRows([][]string{{"solo"}}))
	assert.Equal(t, "a\n\nb, c", SerializeRows([][]string{{"a"}, {}, {"b", "c"}}))
	assert.Equal(t, "", SerializeRows(nil))
}

func TestAssemblePromptReadAndAppend(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d"}}

	got := AssemblePrompt(ActionReadAndAppend, testInstruction, "Add a total", rows)

	assert.Equal(t, testInstruction+"\nAdd a total\n\nData:\na, b\nc, d", got)
	assert.True(t, strings.HasPrefix(got, testInstruction))
}

func TestAssemblePromptReadOnlyOmitsInstruction(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d"}}

	got := AssemblePrompt(ActionReadOnly, testInstruction, "Summarise", rows)

	assert.Equal(t, "Summarise\n\nData:\na, b\nc, d", got)
	assert.NotContains(t, got, testInstruction)
}

func TestAssemblePromptInstructionOnlyForAppend(t *testing.T) {
	for _, action := range []Action{ActionReadOnly, "", "something-else"} {
		got := AssemblePrompt(action, testInstruction, "p", [][]string{{"x"}})
		assert.NotContains(t, got, testInstruction, "action %q", action)
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("read-only")
	require.NoError(t, err)
	assert.Equal(t, ActionReadOnly, a)

	a, err = ParseAction(" Read-And-Append ")
	require.NoError(t, err)
	assert.Equal(t, ActionReadAndAppend, a)

	_, err = ParseAction("delete")
	assert.ErrorContains(t, err, "unknown action")
}
