package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alanmeadows/sheetsmart/internal/store"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past submissions",
	Long: `List and show recorded submissions.

Every request that reaches the model is recorded with its sheet, range,
action, model, outcome, prompt and displayed answer. API keys, credential
paths and cell data are never recorded. Disable recording with
'sheetsmart config set history.enabled false'.`,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
}

var historyListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List recorded submissions, newest first",
	Example: `  sheetsmart history list`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := store.NewHistory(appConfig.HistoryDir()).List(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing history: %w", err)
		}
		return printRunTable(cmd.OutOrStdout(), runs)
	},
}

var historyShowCmd = &cobra.Command{
	Use:     "show <id>",
	Short:   "Show one recorded submission",
	Example: `  sheetsmart history show 20261018-101500.123`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := store.NewHistory(appConfig.HistoryDir()).Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printRun(cmd.OutOrStdout(), run)
		return nil
	},
}

func printRunTable(w io.Writer, runs []store.Run) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID, r.SheetID, r.Range, r.Action, r.Model, strconv.Itoa(r.Rows), r.Target, r.Outcome,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "SHEET", "RANGE", "ACTION", "MODEL", "ROWS", "TARGET", "OUTCOME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, t)
	return nil
}

func printRun(w io.Writer, r *store.Run) {
	field := func(name, value string) {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render(fmt.Sprintf("%-12s", name+":")), value)
	}

	fmt.Fprintln(w, titleStyle.Render("Run "+r.ID))
	field("time", store.FormatTime(r.Time))
	field("sheet", r.SheetID)
	field("range", r.Range)
	field("action", r.Action)
	field("model", r.Provider+"/"+r.Model)
	field("rows", strconv.Itoa(r.Rows))
	if r.Target != "" {
		field("target", r.Target)
		field("written", strconv.FormatBool(r.Written))
		field("highlighted", strconv.FormatBool(r.Highlighted))
	}
	field("outcome", r.Outcome)

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Prompt"))
	fmt.Fprintln(w, r.Prompt)
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("AI Output"))
	fmt.Fprintln(w, outputStyle.Render(r.Reply))
}
