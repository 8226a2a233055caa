// Package google serves the inventory collections out of a shared Google
// Spreadsheet, one sheet per record class. Teams that keep their landlord
// and client books in Sheets can point the service at them instead of a
// local database.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"adspaces/internal/core"
	"adspaces/internal/records"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string

	clientsSheet     string
	landlordsSheet   string
	structuresSheet  string
	adLocationsSheet string
}

// Ensure interface conformance
var _ records.Provider = (*Client)(nil)

// NewFromEnv creates a Sheets-backed provider from environment variables.
// Required: GOOGLE_SPREADSHEET_ID plus service account credentials via
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
// Optional sheet names: GOOGLE_CLIENTS_SHEET_NAME (default "Clients"),
// GOOGLE_LANDLORDS_SHEET_NAME ("Landlords"),
// GOOGLE_STRUCTURES_SHEET_NAME ("Structures"),
// GOOGLE_AD_LOCATIONS_SHEET_NAME ("AdLocations").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:              svc,
		spreadsheetID:    spreadsheetID,
		clientsSheet:     envSheetName("GOOGLE_CLIENTS_SHEET_NAME", "Clients"),
		landlordsSheet:   envSheetName("GOOGLE_LANDLORDS_SHEET_NAME", "Landlords"),
		structuresSheet:  envSheetName("GOOGLE_STRUCTURES_SHEET_NAME", "Structures"),
		adLocationsSheet: envSheetName("GOOGLE_AD_LOCATIONS_SHEET_NAME", "AdLocations"),
	}, nil
}

func envSheetName(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials from the environment.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))

	// Also check the standard Google Cloud environment variable
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error

	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.InfoContext(ctx, "Google Sheets provider initialized")
	return service, nil
}

func (c *Client) readSheet(ctx context.Context, sheet string) ([][]interface{}, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A:K", sheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return resp.Values, nil
}

func (c *Client) ListClients(ctx context.Context) ([]core.Client, error) {
	values, err := c.readSheet(ctx, c.clientsSheet)
	if err != nil {
		return nil, err
	}
	return parseClients(values)
}

func (c *Client) ListLandlords(ctx context.Context) ([]core.Landlord, error) {
	values, err := c.readSheet(ctx, c.landlordsSheet)
	if err != nil {
		return nil, err
	}
	return parseLandlords(values)
}

func (c *Client) ListStructures(ctx context.Context) ([]core.Structure, error) {
	values, err := c.readSheet(ctx, c.structuresSheet)
	if err != nil {
		return nil, err
	}
	return parseStructures(values)
}

func (c *Client) ListAdLocations(ctx context.Context) ([]core.AdLocation, error) {
	values, err := c.readSheet(ctx, c.adLocationsSheet)
	if err != nil {
		return nil, err
	}
	return parseAdLocations(values)
}
