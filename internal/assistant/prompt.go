package assistant

import (
	"fmt"
	"strings"
)

// Action selects what a submission does with the model's reply.
type Action string

const (
	// ActionReadOnly sends the data to the model and only shows the reply.
	ActionReadOnly Action = "read-only"
	// ActionReadAndAppend additionally appends the reply's first data row
	// below the fetched range and highlights it.
	ActionReadAndAppend Action = "read-and-append"
)

// ParseAction accepts the canonical action names.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionReadOnly, ActionReadAndAppend:
		return a, nil
	}
	return "", fmt.Errorf("unknown action %q (want %s or %s)", s, ActionReadOnly, ActionReadAndAppend)
}

// SerializeRows joins cells with ", " and rows with "\n".
func SerializeRows(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ", ")
	}
	return strings.Join(lines, "\n")
}

// AssemblePrompt builds the text sent to the model. The instruction leads
// the prompt for ActionReadAndAppend and is omitted otherwise.
func AssemblePrompt(action Action, instruction, prompt string, rows [][]string) string {
	data := SerializeRows(rows)
	if action == ActionReadAndAppend {
		return fmt.Sprintf("%s\n%s\n\nData:\n%s", instruction, prompt, data)
	}
	return fmt.Sprintf("%s\n\nData:\n%s", prompt, data)
}
