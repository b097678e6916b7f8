// Package sheets reads and writes spreadsheet ranges through a backend-neutral
// Service. Google Sheets and local .xlsx workbooks are supported.
package sheets

//go:generate mockgen -destination=mock_service.go -package=sheets . Service

import "context"

// Color is an RGB color with components in [0, 1].
type Color struct {
	Red   float64
	Green float64
	Blue  float64
}

// Service is the set of spreadsheet operations the assistant needs.
type Service interface {
	// GetValues returns the rows of rng as strings. An empty range yields
	// an empty, non-nil error-free result.
	GetValues(ctx context.Context, spreadsheetID, rng string) ([][]string, error)

	// UpdateValues writes row starting at the cell addressed by rng.
	// Values are stored raw, never interpreted as formulas.
	UpdateValues(ctx context.Context, spreadsheetID, rng string, row []string) error

	// ResolveSheetID returns the numeric id of the sheet titled title,
	// or of the first sheet when title is empty.
	ResolveSheetID(ctx context.Context, spreadsheetID, title string) (int64, error)

	// HighlightRow sets the background of the zero-based row rowIndex.
	HighlightRow(ctx context.Context, spreadsheetID string, sheetID, rowIndex int64, color Color) error
}
