package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXService implements Service on local .xlsx workbooks. The spreadsheet
// id is the workbook path and sheet ids are zero-based sheet indexes.
type XLSXService struct{}

// NewXLSXService returns a Service backed by local workbook files.
func NewXLSXService() *XLSXService {
	return &XLSXService{}
}

// GetValues reads rng the way the Sheets API does: trailing empty cells and
// trailing empty rows are dropped.
func (x *XLSXService) GetValues(_ context.Context, path, rng string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet, startCol, startRow, endCol, endRow, err := resolveBounds(f, rng)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}

	var out [][]string
	for r := startRow; r <= endRow && r <= len(rows); r++ {
		src := rows[r-1]
		var row []string
		for c := startCol; c <= endCol && c <= len(src); c++ {
			row = append(row, src[c-1])
		}
		out = append(out, trimTrailing(row))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}

	slog.Debug("range read from workbook", "path", path, "range", rng, "rows", len(out))
	return out, nil
}

// UpdateValues writes row as strings starting at the cell addressed by rng.
func (x *XLSXService) UpdateValues(_ context.Context, path, rng string, row []string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	r, err := ParseRange(rng)
	if err != nil {
		return err
	}
	sheet, err := sheetName(f, r.Sheet)
	if err != nil {
		return err
	}

	if r.Row == 0 {
		return fmt.Errorf("range %q has no start row", rng)
	}

	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	cell := fmt.Sprintf("%s%d", r.Column, r.Row)
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing %s: %w", rng, err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// ResolveSheetID returns the index of the named sheet, or of the first one.
func (x *XLSXService) ResolveSheetID(_ context.Context, path, title string) (int64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	name, err := sheetName(f, title)
	if err != nil {
		return 0, err
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("sheet %q not found in %s", name, path)
	}
	return int64(idx), nil
}

// HighlightRow applies a solid fill to the whole row.
func (x *XLSXService) HighlightRow(_ context.Context, path string, sheetID, rowIndex int64, color Color) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(int(sheetID))
	if sheet == "" {
		return fmt.Errorf("no sheet with index %d in %s", sheetID, path)
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexColor(color)}},
	})
	if err != nil {
		return fmt.Errorf("creating highlight style: %w", err)
	}

	row := int(rowIndex) + 1
	if err := f.SetRowStyle(sheet, row, row, style); err != nil {
		return fmt.Errorf("formatting row %d: %w", row, err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// resolveBounds turns rng into one-based inclusive coordinates on a sheet.
// An open-ended reference ("A:D", "B2") extends to the sheet's last row.
func resolveBounds(f *excelize.File, rng string) (sheet string, startCol, startRow, endCol, endRow int, err error) {
	r, err := ParseRange(rng)
	if err != nil {
		return "", 0, 0, 0, 0, err
	}
	sheet, err = sheetName(f, r.Sheet)
	if err != nil {
		return "", 0, 0, 0, 0, err
	}

	if startCol, err = excelize.ColumnNameToNumber(r.Column); err != nil {
		return "", 0, 0, 0, 0, err
	}
	startRow = max(r.Row, 1)
	endCol, endRow = startCol, math.MaxInt32

	ref := rng
	if i := strings.LastIndex(ref, "!"); i >= 0 {
		ref = ref[i+1:]
	}
	if _, end, ok := strings.Cut(ref, ":"); ok {
		end = strings.TrimSpace(end)
		letters := strings.TrimRightFunc(end, func(c rune) bool { return c >= '0' && c <= '9' })
		if endCol, err = excelize.ColumnNameToNumber(letters); err != nil {
			return "", 0, 0, 0, 0, err
		}
		if digits := end[len(letters):]; digits != "" {
			if _, err = fmt.Sscanf(digits, "%d", &endRow); err != nil {
				return "", 0, 0, 0, 0, fmt.Errorf("range %q has invalid end row", rng)
			}
		}
	} else if r.Row > 0 {
		endRow = r.Row
	}
	return sheet, startCol, startRow, endCol, endRow, nil
}

func sheetName(f *excelize.File, title string) (string, error) {
	if title == "" {
		name := f.GetSheetName(0)
		if name == "" {
			return "", fmt.Errorf("workbook has no sheets")
		}
		return name, nil
	}
	if idx, err := f.GetSheetIndex(title); err != nil || idx < 0 {
		return "", fmt.Errorf("sheet %q not found", title)
	}
	return title, nil
}

func trimTrailing(row []string) []string {
	for len(row) > 0 && row[len(row)-1] == "" {
		row = row[:len(row)-1]
	}
	return row
}

func hexColor(c Color) string {
	channel := func(v float64) int {
		return int(math.Round(math.Min(math.Max(v, 0), 1) * 255))
	}
	return fmt.Sprintf("%02X%02X%02X", channel(c.Red), channel(c.Green), channel(c.Blue))
}
