package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alanmeadows/sheetsmart/internal/assistant"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var runFlags struct {
	sheet       string
	rng         string
	prompt      string
	action      string
	credentials string
	yes         bool
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.sheet, "sheet", "", "Spreadsheet id (workbook path for the xlsx backend)")
	f.StringVar(&runFlags.rng, "range", "", "Cell range in A1 notation, e.g. A1:D10")
	f.StringVar(&runFlags.prompt, "prompt", "", "Prompt sent with the range data")
	f.StringVar(&runFlags.action, "action", string(assistant.ActionReadOnly), "read-only or read-and-append")
	f.StringVar(&runFlags.credentials, "credentials", "", "Service-account credentials.json")
	f.BoolVarP(&runFlags.yes, "yes", "y", false, "Skip the wizard and submit the flag values once")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the SheetSmart wizard",
	Long: `Walk through the SheetSmart screens: API key and credentials, then
sheet id, range, prompt and action.

Flags pre-fill the forms. With --yes the forms are skipped and the flag
values are submitted once. The API key is read from OPENAI_API_KEY (or
GEMINI_API_KEY for the gemini provider) and is never stored.`,
	Example: `  sheetsmart run
  sheetsmart run --sheet 1AbC... --range A1:D10 --credentials ./credentials.json
  sheetsmart run --yes --sheet 1AbC... --range A1:D10 --prompt "Add next month" --action read-and-append`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		action, err := assistant.ParseAction(runFlags.action)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		opts := newSessionOptions(appConfig)
		sess := assistant.NewSession(opts)
		sess.APIKey = apiKeyFromEnv(appConfig)
		sess.CredentialsPath = runFlags.credentials
		sess.SheetID = runFlags.sheet
		sess.Range = runFlags.rng
		sess.Prompt = runFlags.prompt
		sess.Action = action

		out := cmd.OutOrStdout()
		if runFlags.yes {
			return submitOnce(ctx, out, sess)
		}

		err = runWizard(ctx, out, sess, opts.NeedsCredentials)
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, dimStyle.Render("Cancelled."))
			return nil
		}
		return err
	},
}

// submitOnce validates and submits without any forms.
func submitOnce(ctx context.Context, w io.Writer, sess *assistant.Session) error {
	if err := sess.Validate(ctx); err != nil {
		fmt.Fprintln(w, classify(err).render())
		return err
	}
	res, err := sess.Submit(ctx)
	return reportResult(w, sess.Action, res, err)
}

func runWizard(ctx context.Context, w io.Writer, sess *assistant.Session, needsCredentials bool) error {
	welcome := huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title("Welcome to SheetSmart").
			Description("Ask an AI model about your spreadsheet data,\nand optionally add its answer as a new row.\n\nPress Enter to get started."),
	))
	if err := welcome.RunWithContext(ctx); err != nil {
		return err
	}

	for !sess.Validated() {
		if err := credentialsForm(sess, needsCredentials).RunWithContext(ctx); err != nil {
			return err
		}

		var validateErr error
		err := spinner.New().
			Title("Validating API key...").
			Context(ctx).
			ActionWithErr(func(ctx context.Context) error {
				validateErr = sess.Validate(ctx)
				return nil
			}).
			Run()
		if err != nil {
			return err
		}
		if validateErr != nil {
			fmt.Fprintln(w, classify(validateErr).render())
		}
	}

	for {
		action := string(sess.Action)
		if err := requestForm(sess, &action, needsCredentials).RunWithContext(ctx); err != nil {
			return err
		}
		sess.Action = assistant.Action(action)

		var (
			res       *assistant.Result
			submitErr error
		)
		err := spinner.New().
			Title("Asking the model...").
			Context(ctx).
			ActionWithErr(func(ctx context.Context) error {
				res, submitErr = sess.Submit(ctx)
				return nil
			}).
			Run()
		if err != nil {
			return err
		}
		// Failures are shown and the request screen stays open.
		_ = reportResult(w, sess.Action, res, submitErr)

		again := true
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Submit another request?").
				Value(&again),
		))
		if err := confirm.RunWithContext(ctx); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func credentialsForm(sess *assistant.Session, needsCredentials bool) *huh.Form {
	fields := []huh.Field{
		huh.NewNote().Title("Step 1: API Key & Credentials"),
		huh.NewInput().
			Title("API Key").
			EchoMode(huh.EchoModePassword).
			Value(&sess.APIKey),
	}
	if needsCredentials {
		cwd, _ := os.Getwd()
		fields = append(fields, huh.NewFilePicker().
			Title("Upload credentials.json").
			Description(sess.CredentialsPath).
			CurrentDirectory(cwd).
			AllowedTypes([]string{".json"}).
			Value(&sess.CredentialsPath))
	}
	return huh.NewForm(huh.NewGroup(fields...))
}

func requestForm(sess *assistant.Session, action *string, needsCredentials bool) *huh.Form {
	sheetTitle := "Google Sheet ID"
	if !needsCredentials {
		sheetTitle = "Workbook path (.xlsx)"
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewNote().Title("Step 2: Sheet ID, Range, and AI Prompt"),
		huh.NewInput().
			Title(sheetTitle).
			Value(&sess.SheetID),
		huh.NewInput().
			Title("Range (e.g., A1:D10)").
			Value(&sess.Range),
		huh.NewText().
			Title("AI Prompt").
			Value(&sess.Prompt),
		huh.NewSelect[string]().
			Title("Choose Action").
			Options(
				huh.NewOption("Read Only (AI Process)", string(assistant.ActionReadOnly)),
				huh.NewOption("Add Data to Sheet (AI Process & Add)", string(assistant.ActionReadAndAppend)),
			).
			Value(action),
	))
}
