// Package assistant drives one sheet-assistant session: credential
// validation, range fetch, prompt assembly, the model call, reply parsing and
// the optional write-back.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alanmeadows/sheetsmart/internal/llm"
	"github.com/alanmeadows/sheetsmart/internal/logging"
	"github.com/alanmeadows/sheetsmart/internal/prompts"
	"github.com/alanmeadows/sheetsmart/internal/sheets"
	"github.com/alanmeadows/sheetsmart/internal/store"
)

// ClientFactory builds a chat client for an API key.
type ClientFactory func(ctx context.Context, apiKey string) (llm.Client, error)

// SheetsFactory opens a spreadsheet service with a credential file.
type SheetsFactory func(ctx context.Context, credentialsPath string) (sheets.Service, error)

// Options wires a Session to its collaborators.
type Options struct {
	NewClient ClientFactory
	NewSheets SheetsFactory

	// NeedsCredentials reports whether a credential file is required.
	NeedsCredentials bool

	// Instruction returns the read-and-append instruction. Defaults to
	// prompts.Instruction.
	Instruction func() (string, error)

	// Highlight is the appended-row background. Nil means DefaultHighlight.
	Highlight *sheets.Color

	// History, when set, records every submission that reaches the model.
	History *store.History
}

// Session holds the credentials and the fields entered by the user.
// Credentials live only in memory.
type Session struct {
	APIKey          string
	CredentialsPath string

	SheetID string
	Range   string
	Action  Action
	Prompt  string

	opts   Options
	client llm.Client
}

// Result is the outcome of a submission.
type Result struct {
	// Rows is the number of fetched rows.
	Rows int
	// Reply is the parsed model answer; Reply.Remainder is what the user sees.
	Reply Reply
	// Row is the candidate row, nil when the reply had none.
	Row []string

	Target      string
	Written     bool
	Highlighted bool

	// RunID is the history entry id, empty when history is off.
	RunID string
}

// NewSession creates a Session. NewClient and NewSheets are required.
func NewSession(opts Options) *Session {
	if opts.Instruction == nil {
		opts.Instruction = prompts.Instruction
	}
	if opts.Highlight == nil {
		color := DefaultHighlight
		opts.Highlight = &color
	}
	return &Session{
		Action: ActionReadOnly,
		opts:   opts,
	}
}

// Validated reports whether Validate has succeeded.
func (s *Session) Validated() bool {
	return s.client != nil
}

// Client returns the validated chat client, or nil.
func (s *Session) Client() llm.Client {
	return s.client
}

// Validate checks that the credentials are present and that the API key is
// accepted by the model service. It never retries.
func (s *Session) Validate(ctx context.Context) error {
	s.APIKey = strings.TrimSpace(s.APIKey)
	s.CredentialsPath = strings.TrimSpace(s.CredentialsPath)
	s.client = nil

	if s.APIKey == "" {
		return missing("Please enter the API key.")
	}
	if s.opts.NeedsCredentials && s.CredentialsPath == "" {
		return missing("Please upload credentials.json.")
	}

	slog.Debug("validating API key", "key", logging.RedactValue(s.APIKey))

	client, err := s.opts.NewClient(ctx, s.APIKey)
	if err != nil {
		return wrap(ErrAuth, err)
	}
	if err := client.Validate(ctx); err != nil {
		return wrap(ErrAuth, err)
	}

	s.client = client
	slog.Info("API key validated", "provider", client.Name(), "model", client.Model())
	return nil
}

// Submit runs one fetch → prompt → model → parse → write-back pass.
// The returned Result is non-nil whenever the model was reached, including
// when ErrInvalidReply or ErrWriteBack is returned.
func (s *Session) Submit(ctx context.Context) (*Result, error) {
	if s.client == nil {
		return nil, missing("Please validate the API key first.")
	}

	s.SheetID = strings.TrimSpace(s.SheetID)
	s.Range = strings.TrimSpace(s.Range)
	s.Prompt = strings.TrimSpace(s.Prompt)
	if s.SheetID == "" || s.Range == "" || s.Prompt == "" {
		return nil, missing("Please fill in all fields.")
	}

	svc, err := s.opts.NewSheets(ctx, s.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet service: %w", err)
	}

	rows, err := svc.GetValues(ctx, s.SheetID, s.Range)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		slog.Info("range is empty", "sheet", s.SheetID, "range", s.Range)
		return &Result{}, ErrFetchEmpty
	}

	var instruction string
	if s.Action == ActionReadAndAppend {
		if instruction, err = s.opts.Instruction(); err != nil {
			return nil, err
		}
	}
	fullPrompt := AssemblePrompt(s.Action, instruction, s.Prompt, rows)

	res := &Result{Rows: len(rows)}

	reply, err := s.client.Complete(ctx, fullPrompt)
	if err != nil {
		err = wrap(ErrModel, err)
		s.record(ctx, res, err)
		return res, err
	}

	res.Reply, err = ParseReply(reply)
	if err != nil {
		s.record(ctx, res, err)
		return res, err
	}
	res.Row, _ = res.Reply.Candidate()

	if s.Action == ActionReadAndAppend {
		wb, err := WriteBack(ctx, svc, s.SheetID, s.Range, len(rows), res.Row, *s.opts.Highlight)
		res.Target, res.Written, res.Highlighted = wb.Target, wb.Written, wb.Highlighted
		if err != nil {
			s.record(ctx, res, err)
			return res, err
		}
	}

	s.record(ctx, res, nil)
	return res, nil
}

// record stores the submission in history. Failures are logged, not
// returned. A cancelled submission is still recorded.
func (s *Session) record(ctx context.Context, res *Result, err error) {
	if s.opts.History == nil {
		return
	}

	run := &store.Run{
		SheetID:     s.SheetID,
		Range:       s.Range,
		Action:      string(s.Action),
		Provider:    s.client.Name(),
		Model:       s.client.Model(),
		Rows:        res.Rows,
		Target:      res.Target,
		Written:     res.Written,
		Highlighted: res.Highlighted,
		Outcome:     outcome(s.Action, err),
		Prompt:      s.Prompt,
		Reply:       res.Reply.Remainder,
	}
	if err := s.opts.History.Record(context.WithoutCancel(ctx), run); err != nil {
		slog.Warn("failed to record run history", "error", err)
		return
	}
	res.RunID = run.ID
}

func outcome(action Action, err error) string {
	switch {
	case errors.Is(err, ErrModel):
		return "model-error"
	case errors.Is(err, ErrInvalidReply):
		return "invalid-reply"
	case errors.Is(err, ErrWriteBack):
		return "write-back-failed"
	case err != nil:
		return "error"
	case action == ActionReadAndAppend:
		return "appended"
	default:
		return "read"
	}
}
