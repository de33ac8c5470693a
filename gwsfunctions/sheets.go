package main

import (
	"context"
	"fmt"

	sheets "google.golang.org/api/sheets/v4"
)

// leaverSource reads the offboarding schedule: one header row, then one row
// per person with leave date, Google Workspace email, AWS username and
// GitHub username.
type leaverSource interface {
	ReadLeaverRows(ctx context.Context) ([][]string, error)
}

type sheetClient struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
}

func (s *sheetClient) ReadLeaverRows(ctx context.Context) ([][]string, error) {
	result, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(result.Values))
	for _, raw := range result.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}

	return rows, nil
}
