// Package sheets stores the ledger in a Google Sheets spreadsheet, one sheet
// per record type with a header row followed by one row per record.
package sheets

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client is the subset of the Sheets API the repositories rely on.
// Ranges use A1 notation, e.g. "Accounts!A2:H".
type Client interface {
	GetValues(ctx context.Context, rng string) ([][]interface{}, error)
	AppendRows(ctx context.Context, rng string, rows [][]interface{}) error
	UpdateRange(ctx context.Context, rng string, rows [][]interface{}) error
	// BatchUpdate writes several ranges in a single request.
	BatchUpdate(ctx context.Context, updates []RangeUpdate) error
	SheetTitles(ctx context.Context) ([]string, error)
	AddSheet(ctx context.Context, title string) error
}

// RangeUpdate is one range written by BatchUpdate.
type RangeUpdate struct {
	Range string
	Rows  [][]interface{}
}

// Credentials identifies the spreadsheet and the service account used to reach it.
// Either CredentialsFile or ClientEmail and PrivateKey must be set.
type Credentials struct {
	SpreadsheetID   string
	ClientEmail     string
	PrivateKey      string
	CredentialsFile string
}

// apiClient implements Client on top of the generated Sheets v4 service.
type apiClient struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

var _ Client = (*apiClient)(nil)

// NewClient authenticates as a service account and returns a Client bound to
// one spreadsheet.
func NewClient(ctx context.Context, creds Credentials) (Client, error) {
	if creds.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet ID cannot be empty")
	}

	var opt option.ClientOption
	switch {
	case creds.CredentialsFile != "":
		opt = option.WithCredentialsFile(creds.CredentialsFile)
	case creds.ClientEmail != "" && creds.PrivateKey != "":
		conf := &jwt.Config{
			Email:      creds.ClientEmail,
			PrivateKey: []byte(creds.PrivateKey),
			Scopes:     []string{sheetsapi.SpreadsheetsScope},
			TokenURL:   google.JWTTokenURL,
		}
		opt = option.WithHTTPClient(conf.Client(ctx))
	default:
		return nil, errors.New("no service account credentials configured")
	}

	svc, err := sheetsapi.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &apiClient{svc: svc, spreadsheetID: creds.SpreadsheetID}, nil
}

func (c *apiClient) GetValues(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", rng, err)
	}
	return resp.Values, nil
}

func (c *apiClient) AppendRows(ctx context.Context, rng string, rows [][]interface{}) error {
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, &sheetsapi.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", rng, err)
	}
	return nil
}

func (c *apiClient) UpdateRange(ctx context.Context, rng string, rows [][]interface{}) error {
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, &sheetsapi.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", rng, err)
	}
	return nil
}

func (c *apiClient) BatchUpdate(ctx context.Context, updates []RangeUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	data := make([]*sheetsapi.ValueRange, len(updates))
	for i, u := range updates {
		data[i] = &sheetsapi.ValueRange{Range: u.Range, Values: u.Rows}
	}
	req := &sheetsapi.BatchUpdateValuesRequest{ValueInputOption: "RAW", Data: data}
	if _, err := c.svc.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update %d ranges: %w", len(updates), err)
	}
	return nil
}

func (c *apiClient) SheetTitles(ctx context.Context) ([]string, error) {
	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to load spreadsheet metadata: %w", err)
	}
	titles := make([]string, 0, len(ss.Sheets))
	for _, sheet := range ss.Sheets {
		if sheet.Properties != nil {
			titles = append(titles, sheet.Properties.Title)
		}
	}
	return titles, nil
}

func (c *apiClient) AddSheet(ctx context.Context, title string) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{AddSheet: &sheetsapi.AddSheetRequest{Properties: &sheetsapi.SheetProperties{Title: title}}},
		},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", title, err)
	}
	return nil
}
