package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	promptHeading = "## Prompt\n\n"
	replyHeading  = "\n\n## Reply\n\n"
	idLayout      = "20060102-150405.000"
)

// Run is one recorded submission. It never carries credentials or the
// fetched cell data.
type Run struct {
	ID          string
	Time        time.Time
	SheetID     string
	Range       string
	Action      string
	Provider    string
	Model       string
	Rows        int
	Target      string
	Written     bool
	Highlighted bool
	Outcome     string
	Prompt      string
	Reply       string
}

// History stores runs as markdown documents with YAML frontmatter.
type History struct {
	dir string
}

// NewHistory returns a History rooted at dir.
func NewHistory(dir string) *History {
	return &History{dir: dir}
}

// Dir returns the history directory.
func (h *History) Dir() string {
	return h.dir
}

// Record writes run to disk, assigning its ID (and Time if unset).
func (h *History) Record(ctx context.Context, run *Run) error {
	if run.Time.IsZero() {
		run.Time = time.Now()
	}
	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	return withLock(ctx, h.lockPath(), false, func() error {
		base := run.Time.UTC().Format(idLayout)
		id := base
		for n := 2; exists(h.path(id)); n++ {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		run.ID = id

		doc := &Document{
			Meta: Meta{
				"time":        FormatTime(run.Time),
				"sheet":       run.SheetID,
				"range":       run.Range,
				"action":      run.Action,
				"provider":    run.Provider,
				"model":       run.Model,
				"rows":        run.Rows,
				"target":      run.Target,
				"written":     run.Written,
				"highlighted": run.Highlighted,
				"outcome":     run.Outcome,
			},
			Body: promptHeading + run.Prompt + replyHeading + run.Reply + "\n",
		}
		if err := WriteDocument(h.path(id), doc); err != nil {
			return err
		}
		slog.Debug("run recorded", "id", id, "outcome", run.Outcome)
		return nil
	})
}

// List returns all recorded runs, newest first.
func (h *History) List(ctx context.Context) ([]Run, error) {
	if !exists(h.dir) {
		return nil, nil
	}

	var runs []Run
	err := withLock(ctx, h.lockPath(), true, func() error {
		entries, err := os.ReadDir(h.dir)
		if err != nil {
			return fmt.Errorf("reading history dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
				continue
			}
			run, err := h.read(strings.TrimSuffix(e.Name(), ".md"))
			if err != nil {
				slog.Warn("skipping unreadable history entry", "file", e.Name(), "error", err)
				continue
			}
			runs = append(runs, *run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].ID > runs[j].ID
	})
	return runs, nil
}

// Get returns the run with the given ID.
func (h *History) Get(ctx context.Context, id string) (*Run, error) {
	if id == "" || filepath.Base(id) != id || !exists(h.path(id)) {
		return nil, fmt.Errorf("no run with id %q", id)
	}
	var run *Run
	err := withLock(ctx, h.lockPath(), true, func() error {
		var err error
		run, err = h.read(id)
		return err
	})
	return run, err
}

func (h *History) read(id string) (*Run, error) {
	doc, err := ReadDocument(h.path(id))
	if err != nil {
		return nil, err
	}
	m := doc.Meta

	run := &Run{
		ID:          id,
		Time:        m.GetTime("time"),
		SheetID:     m.GetString("sheet"),
		Range:       m.GetString("range"),
		Action:      m.GetString("action"),
		Provider:    m.GetString("provider"),
		Model:       m.GetString("model"),
		Rows:        m.GetInt("rows"),
		Target:      m.GetString("target"),
		Written:     m.GetBool("written"),
		Highlighted: m.GetBool("highlighted"),
		Outcome:     m.GetString("outcome"),
	}

	body := strings.TrimPrefix(strings.TrimLeft(doc.Body, "\n"), promptHeading)
	prompt, reply, _ := strings.Cut(body, replyHeading)
	run.Prompt = prompt
	run.Reply = strings.TrimSuffix(reply, "\n")
	return run, nil
}

func (h *History) lockPath() string {
	return filepath.Join(h.dir, "history")
}

func (h *History) path(id string) string {
	return filepath.Join(h.dir, id+".md")
}
