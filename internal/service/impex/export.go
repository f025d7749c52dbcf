package impex

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

// ExportFile is a rendered download. When Truncated is set, Data holds the
// first Rows of TotalRows rows.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
	Rows        int
	TotalRows   int
	Truncated   bool
}

var exportHeader = []string{"Date", "Description", "Credit", "Debit"}

var fileNameReplacer = strings.NewReplacer(" ", "_", "/", "", "\\", "", "\"", "", "\r", "", "\n", "")

// ExportFileName derives a safe download name from a sheet name.
func ExportFileName(sheetName string) string {
	name := fileNameReplacer.Replace(strings.TrimSpace(sheetName))
	if name == "" {
		name = "sheet"
	}
	return name + ".csv"
}

// WriteCSV renders rows as CSV in the given order.
func WriteCSV(rows []*domain.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Date, r.Description, r.Credit.String(), r.Debit.String()}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportSheet renders a sheet's rows in store order as CSV.
func (s *Service) ExportSheet(ctx context.Context, sheetID uuid.UUID) (ExportFile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ExportFile{}, domain.ErrUnauthorized
	}

	sheet, err := s.sheets.GetByID(ctx, userID, sheetID)
	if err != nil {
		return ExportFile{}, fmt.Errorf("impex.ExportSheet: %w", err)
	}

	rows, err := s.rows.ListBySheet(ctx, userID, sheetID)
	if err != nil {
		return ExportFile{}, fmt.Errorf("impex.ExportSheet: %w", err)
	}
	total := len(rows)
	if limit := s.cfg.ExportMaxRows; limit > 0 && len(rows) > limit {
		s.log.WarnContext(ctx, "export truncated",
			slog.String("sheet_id", sheetID.String()),
			slog.Int("rows", len(rows)),
			slog.Int("limit", limit))
		rows = rows[:limit]
	}

	data, err := WriteCSV(rows)
	if err != nil {
		return ExportFile{}, fmt.Errorf("impex.ExportSheet: write csv: %w", err)
	}

	return ExportFile{
		FileName:    ExportFileName(sheet.Name),
		ContentType: "text/csv; charset=utf-8",
		Data:        data,
		Rows:        len(rows),
		TotalRows:   total,
		Truncated:   len(rows) < total,
	}, nil
}
