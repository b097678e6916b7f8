package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alanmeadows/sheetsmart/internal/sheets"
)

// DefaultHighlight is the light green applied to appended rows.
var DefaultHighlight = sheets.Color{Red: 0.9, Green: 1.0, Blue: 0.9}

// TargetAddress returns the cell where an appended row starts: the range's
// start column at row rowCount+1. The range's own row span is ignored, so
// "A1:D10" with 10 fetched rows gives "A11".
func TargetAddress(rng string, rowCount int) (string, error) {
	r, err := sheets.ParseRange(rng)
	if err != nil {
		return "", err
	}
	return r.Cell(rowCount + 1), nil
}

// WriteBackResult reports how far a write-back got.
type WriteBackResult struct {
	Target      string
	Written     bool
	Highlighted bool
}

// WriteBack appends row below the fetched data and highlights it.
// A failure at any step stops the remaining ones; an already-written row is
// left in place.
func WriteBack(ctx context.Context, svc sheets.Service, spreadsheetID, rng string, rowCount int, row []string, color sheets.Color) (WriteBackResult, error) {
	var res WriteBackResult

	r, err := sheets.ParseRange(rng)
	if err != nil {
		return res, wrap(ErrWriteBack, err)
	}
	if res.Target, err = TargetAddress(rng, rowCount); err != nil {
		return res, wrap(ErrWriteBack, err)
	}

	if err := svc.UpdateValues(ctx, spreadsheetID, res.Target, row); err != nil {
		return res, wrap(ErrWriteBack, err)
	}
	res.Written = true
	slog.Info("row appended", "target", res.Target, "cells", len(row))

	sheetID, err := svc.ResolveSheetID(ctx, spreadsheetID, r.Sheet)
	if err != nil {
		return res, wrap(ErrWriteBack, fmt.Errorf("row written to %s but not highlighted: %w", res.Target, err))
	}
	if err := svc.HighlightRow(ctx, spreadsheetID, sheetID, int64(rowCount), color); err != nil {
		return res, wrap(ErrWriteBack, fmt.Errorf("row written to %s but not highlighted: %w", res.Target, err))
	}
	res.Highlighted = true
	return res, nil
}
