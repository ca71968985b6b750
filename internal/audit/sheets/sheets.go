// Package sheets records audit events to a Google Sheet and, optionally,
// prepends a readable transcript block to a Google Doc.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Unreala9/metabot/internal/models"
)

// Recorder appends rows to a spreadsheet and text blocks to a document.
// Failures are logged and swallowed: audit logging never breaks a
// user-facing response.
type Recorder struct {
	sheetsSvc     *sheets.Service
	docsSvc       *docs.Service
	spreadsheetID string
	documentID    string
	logger        *zap.Logger
}

// New builds a Recorder from a service-account credentials file. At
// least one of spreadsheetID/documentID must be set; an empty one just
// disables that sink.
func New(ctx context.Context, credentialsFile, spreadsheetID, documentID string, logger *zap.Logger) (*Recorder, error) {
	if spreadsheetID == "" && documentID == "" {
		return nil, fmt.Errorf("sheets: neither spreadsheet nor document configured")
	}

	r := &Recorder{
		spreadsheetID: spreadsheetID,
		documentID:    documentID,
		logger:        logger,
	}

	if spreadsheetID != "" {
		svc, err := sheets.NewService(ctx,
			option.WithCredentialsFile(credentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		)
		if err != nil {
			return nil, fmt.Errorf("sheets: create sheets service: %w", err)
		}
		r.sheetsSvc = svc
	}

	if documentID != "" {
		svc, err := docs.NewService(ctx,
			option.WithCredentialsFile(credentialsFile),
			option.WithScopes(docs.DocumentsScope),
		)
		if err != nil {
			return nil, fmt.Errorf("sheets: create docs service: %w", err)
		}
		r.docsSvc = svc
	}

	return r, nil
}

// Record appends [timestamp, user, input, output] as a sheet row and
// prepends the same tuple as a text block to the document.
func (r *Recorder) Record(ctx context.Context, ev models.AuditEvent) {
	ts := ev.Time.Format("2006-01-02 15:04:05")

	if r.sheetsSvc != nil {
		row := &sheets.ValueRange{
			Values: [][]interface{}{{ts, ev.User, ev.Input, ev.Output}},
		}
		_, err := r.sheetsSvc.Spreadsheets.Values.
			Append(r.spreadsheetID, "A1", row).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		if err != nil {
			r.logger.Warn("sheet append failed", zap.Error(err))
		}
	}

	if r.docsSvc != nil {
		text := fmt.Sprintf("[%s] %s\nUser: %s\nBot: %s\n\n", ts, ev.User, ev.Input, ev.Output)
		req := &docs.BatchUpdateDocumentRequest{
			Requests: []*docs.Request{{
				InsertText: &docs.InsertTextRequest{
					Location: &docs.Location{Index: 1},
					Text:     text,
				},
			}},
		}
		_, err := r.docsSvc.Documents.BatchUpdate(r.documentID, req).Context(ctx).Do()
		if err != nil {
			r.logger.Warn("doc append failed", zap.Error(err))
		}
	}
}
