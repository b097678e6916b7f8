package sheets

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Name", "Qty", "Price"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"apple", 3, 1.5}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"pear", 5}))

	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Data", "B2", &[]interface{}{"x", "y"}))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXGetValues(t *testing.T) {
	path := newWorkbook(t)
	svc := NewXLSXService()

	rows, err := svc.GetValues(context.Background(), path, "A1:D10")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Name", "Qty", "Price"},
		{"apple", "3", "1.5"},
		{"pear", "5"},
	}, rows)
}

func TestXLSXGetValuesSubRangeAndSheet(t *testing.T) {
	path := newWorkbook(t)
	svc := NewXLSXService()

	rows, err := svc.GetValues(context.Background(), path, "B2:B3")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"3"}, {"5"}}, rows)

	rows, err = svc.GetValues(context.Background(), path, "Data!B2:C2")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "y"}}, rows)
}

func TestXLSXGetValuesEmpty(t *testing.T) {
	path := newWorkbook(t)
	rows, err := NewXLSXService().GetValues(context.Background(), path, "F20:G30")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestXLSXGetValuesUnknownSheet(t *testing.T) {
	path := newWorkbook(t)
	_, err := NewXLSXService().GetValues(context.Background(), path, "Nope!A1:B2")
	assert.ErrorContains(t, err, `sheet "Nope" not found`)
}

func TestXLSXWriteAndHighlight(t *testing.T) {
	path := newWorkbook(t)
	svc := NewXLSXService()
	ctx := context.Background()

	require.NoError(t, svc.UpdateValues(ctx, path, "A4", []string{"plum", "=1+1"}))

	id, err := svc.ResolveSheetID(ctx, path, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	require.NoError(t, svc.HighlightRow(ctx, path, id, 3, Color{Red: 0.9, Green: 1.0, Blue: 0.9}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Sheet1", "B4")
	require.NoError(t, err)
	assert.Equal(t, "=1+1", v, "values are stored raw")
	formula, err := f.GetCellFormula("Sheet1", "B4")
	require.NoError(t, err)
	assert.Empty(t, formula)

	styleID, err := f.GetCellStyle("Sheet1", "A4")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.Len(t, style.Fill.Color, 1)
	assert.Contains(t, style.Fill.Color[0], "E6FFE6")
}

func TestXLSXResolveNamedSheet(t *testing.T) {
	path := newWorkbook(t)
	id, err := NewXLSXService().ResolveSheetID(context.Background(), path, "Data")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestXLSXMissingWorkbook(t *testing.T) {
	_, err := NewXLSXService().GetValues(context.Background(), filepath.Join(t.TempDir(), "none.xlsx"), "A1:B2")
	assert.ErrorContains(t, err, "opening workbook")
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "E6FFE6", hexColor(Color{Red: 0.9, Green: 1.0, Blue: 0.9}))
	assert.Equal(t, "00FF00", hexColor(Color{Red: -1, Green: 2}))
}
