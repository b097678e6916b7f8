package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecordAndGet(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(filepath.Join(t.TempDir(), "history"))
	ts := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	run := &Run{
		Time:        ts,
		SheetID:     "sheet-1",
		Range:       "A1:D10",
		Action:      "read-and-append",
		Provider:    "openai",
		Model:       "gpt-4o-mini",
		Rows:        10,
		Target:      "A11",
		Written:     true,
		Highlighted: true,
		Outcome:     "appended",
		Prompt:      "Add a totals row",
		Reply:       "Total,42\nextra line",
	}
	require.NoError(t, h.Record(ctx, run))
	assert.Equal(t, "20261018-093000.000", run.ID)

	got, err := h.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.SheetID, got.SheetID)
	assert.Equal(t, run.Range, got.Range)
	assert.Equal(t, run.Action, got.Action)
	assert.Equal(t, 10, got.Rows)
	assert.Equal(t, "A11", got.Target)
	assert.True(t, got.Written)
	assert.True(t, got.Highlighted)
	assert.Equal(t, "appended", got.Outcome)
	assert.Equal(t, "Add a totals row", got.Prompt)
	assert.Equal(t, "Total,42\nextra line", got.Reply)
	assert.True(t, ts.Equal(got.Time))
}

func TestHistoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(t.TempDir())
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, h.Record(ctx, &Run{Time: base.Add(time.Duration(i) * time.Hour), Outcome: "read"}))
	}
	// Same timestamp twice gets a distinct id.
	dup := &Run{Time: base, Outcome: "read"}
	require.NoError(t, h.Record(ctx, dup))
	assert.Equal(t, "20260101-000000.000-2", dup.ID)

	runs, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 4)
	assert.Equal(t, "20260101-020000.000", runs[0].ID)
}

func TestHistoryListMissingDir(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(filepath.Join(t.TempDir(), "never-created"))
	runs, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestHistoryGetUnknown(t *testing.T) {
	_, err := NewHistory(t.TempDir()).Get(context.Background(), "nope")
	assert.ErrorContains(t, err, `no run with id "nope"`)
}

func TestHistoryListSkipsForeignFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	h := NewHistory(dir)
	require.NoError(t, h.Record(ctx, &Run{Outcome: "read"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	runs, err := h.List(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestHistoryGetRejectsPaths(t *testing.T) {
	dir := t.TempDir()
	h := NewHistory(filepath.Join(dir, "runs"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.md"), []byte("---\na: 1\n---\n"), 0644))

	_, err := h.Get(context.Background(), "../secret")
	assert.ErrorContains(t, err, "no run with id")
}

func TestHistoryRecordWritesMarkdown(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(t.TempDir())
	run := &Run{Action: "read-only", Outcome: "read", Prompt: "Summarise", Reply: "Fine."}
	require.NoError(t, h.Record(ctx, run))

	data, err := os.ReadFile(filepath.Join(h.Dir(), run.ID+".md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Prompt\n\nSummarise")
	assert.Contains(t, string(data), "outcome: read")
}
