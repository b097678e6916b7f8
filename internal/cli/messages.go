package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alanmeadows/sheetsmart/internal/assistant"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// notice is a titled status line shown in place of a dialog box.
type notice struct {
	title string
	text  string
	style lipgloss.Style
}

func (n notice) render() string {
	return n.style.Render(n.title+":") + " " + n.text
}

// classify picks the title and severity for a session error.
func classify(err error) notice {
	switch {
	case errors.Is(err, assistant.ErrMissingInput):
		text := strings.TrimPrefix(err.Error(), assistant.ErrMissingInput.Error()+": ")
		return notice{title: "Missing", text: text, style: warnStyle}
	case errors.Is(err, assistant.ErrAuth):
		return notice{title: "API Error", text: err.Error(), style: errorStyle}
	case errors.Is(err, assistant.ErrFetchEmpty):
		return notice{title: "No Data", text: "No data found in the specified range.", style: infoStyle}
	case errors.Is(err, assistant.ErrInvalidReply):
		return notice{title: "Invalid AI Output", text: "AI response doesn't include valid data.", style: warnStyle}
	default:
		return notice{title: "Error", text: err.Error(), style: errorStyle}
	}
}

// reportResult prints the model output and the outcome of a submission.
// An empty range is reported but not treated as a failure.
func reportResult(w io.Writer, action assistant.Action, res *assistant.Result, err error) error {
	if res != nil && res.Reply.Remainder != "" {
		fmt.Fprintln(w, titleStyle.Render("AI Output"))
		fmt.Fprintln(w, outputStyle.Render(res.Reply.Remainder))
	}

	if err != nil {
		slog.Debug("submission failed", "error", err)
		fmt.Fprintln(w, classify(err).render())
		if errors.Is(err, assistant.ErrFetchEmpty) {
			return nil
		}
		return err
	}

	if action == assistant.ActionReadAndAppend {
		fmt.Fprintln(w, notice{
			title: "Success",
			text:  fmt.Sprintf("AI-generated data was added at %s and highlighted!", res.Target),
			style: successStyle,
		}.render())
	} else {
		fmt.Fprintln(w, notice{title: "Read Complete", text: "AI has processed the data.", style: successStyle}.render())
	}
	if res.RunID != "" {
		fmt.Fprintln(w, dimStyle.Render("history: "+res.RunID))
	}
	return nil
}
