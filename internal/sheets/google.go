package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// GoogleService implements Service against the Google Sheets v4 API.
type GoogleService struct {
	svc *gsheets.Service
}

// NewGoogleService authenticates with the service-account key file at
// credentialsPath. Extra client options (endpoint, HTTP client) are appended.
func NewGoogleService(ctx context.Context, credentialsPath string, opts ...option.ClientOption) (*GoogleService, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("loading service account credentials: %w", err)
	}

	return NewGoogleServiceWithOptions(ctx, append([]option.ClientOption{option.WithCredentials(creds)}, opts...)...)
}

// NewGoogleServiceWithOptions builds a GoogleService from raw client options.
func NewGoogleServiceWithOptions(ctx context.Context, opts ...option.ClientOption) (*GoogleService, error) {
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	return &GoogleService{svc: svc}, nil
}

// GetValues issues values.get for rng.
func (g *GoogleService) GetValues(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rng, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	slog.Debug("range fetched", "spreadsheet", spreadsheetID, "range", rng, "rows", len(rows))
	return rows, nil
}

// UpdateValues issues values.update with valueInputOption=RAW.
func (g *GoogleService) UpdateValues(ctx context.Context, spreadsheetID, rng string, row []string) error {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}

	_, err := g.svc.Spreadsheets.Values.Update(spreadsheetID, rng, &gsheets.ValueRange{
		Values: [][]interface{}{cells},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("updating %s: %w", rng, err)
	}
	slog.Debug("row written", "spreadsheet", spreadsheetID, "range", rng, "cells", len(row))
	return nil
}

// ResolveSheetID reads spreadsheet metadata to find the numeric sheet id.
func (g *GoogleService) ResolveSheetID(ctx context.Context, spreadsheetID, title string) (int64, error) {
	meta, err := g.svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("fetching spreadsheet metadata: %w", err)
	}

	for _, s := range meta.Sheets {
		if s.Properties == nil {
			continue
		}
		if title == "" || s.Properties.Title == title {
			return s.Properties.SheetId, nil
		}
	}
	if title == "" {
		return 0, fmt.Errorf("spreadsheet %s has no sheets", spreadsheetID)
	}
	return 0, fmt.Errorf("sheet %q not found in spreadsheet %s", title, spreadsheetID)
}

// HighlightRow issues a batchUpdate with a single repeatCell request
// spanning the whole row.
func (g *GoogleService) HighlightRow(ctx context.Context, spreadsheetID string, sheetID, rowIndex int64, color Color) error {
	req := &gsheets.Request{
		RepeatCell: &gsheets.RepeatCellRequest{
			Range: &gsheets.GridRange{
				SheetId:       sheetID,
				StartRowIndex: rowIndex,
				EndRowIndex:   rowIndex + 1,
				// The first sheet's id and the first row are both 0.
				ForceSendFields: []string{"SheetId", "StartRowIndex"},
			},
			Cell: &gsheets.CellData{
				UserEnteredFormat: &gsheets.CellFormat{
					BackgroundColor: &gsheets.Color{
						Red:             color.Red,
						Green:           color.Green,
						Blue:            color.Blue,
						ForceSendFields: []string{"Red", "Green", "Blue"},
					},
				},
			},
			Fields: "userEnteredFormat.backgroundColor",
		},
	}

	_, err := g.svc.Spreadsheets.BatchUpdate(spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{req},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("formatting row %d: %w", rowIndex+1, err)
	}
	return nil
}
