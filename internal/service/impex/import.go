package impex

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

// ImportInput holds an uploaded file. An empty Policy selects the
// configured default.
type ImportInput struct {
	SheetID  uuid.UUID
	FileName string
	Data     []byte
	Policy   string
}

// ImportResult reports the outcome of an import.
type ImportResult struct {
	Message string
	Count   int
	Skipped int
	Errors  []domain.ImportRowError
}

func (s *Service) policy(raw string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(raw))
	switch p {
	case "":
		return s.cfg.ImportPolicy, nil
	case config.ImportPolicySkip, config.ImportPolicyAtomic:
		return p, nil
	}
	return "", domain.NewValidationError("policy", "must be skip or atomic")
}

// parsed is the result of reading a file before anything is written.
type parsed struct {
	rows     []domain.Row
	lines    []int
	rejected []domain.ImportRowError
}

func parseFile(fileName string, data []byte, strict bool) (parsed, error) {
	records, err := readRecords(fileName, data)
	if err != nil {
		return parsed{}, err
	}

	var (
		out    parsed
		header *layout
	)
	for _, rec := range records {
		if isBlankRecord(rec.Fields) {
			continue
		}
		if header == nil {
			l, err := parseHeader(rec.Fields)
			if err != nil {
				return parsed{}, err
			}
			header = &l
			continue
		}

		row, reason := header.parseRow(rec.Fields, strict)
		if reason != "" {
			out.rejected = append(out.rejected, domain.ImportRowError{Line: rec.Line, Reason: reason})
			continue
		}
		if row.IsBlank() {
			continue
		}
		out.rows = append(out.rows, row)
		out.lines = append(out.lines, rec.Line)
	}

	if header == nil {
		return parsed{}, domain.NewImportError("file is empty")
	}
	return out, nil
}

// ImportFile appends the rows of a CSV, TXT, XLS or XLSX file to a sheet.
// Under the skip policy malformed lines are reported and the rest is
// committed in chunks. Under the atomic policy any malformed line aborts
// the import and nothing is written.
func (s *Service) ImportFile(ctx context.Context, input ImportInput) (ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ImportResult{}, domain.ErrUnauthorized
	}

	policy, err := s.policy(input.Policy)
	if err != nil {
		return ImportResult{}, err
	}

	if int64(len(input.Data)) > s.cfg.ImportMaxBytes {
		return ImportResult{}, domain.NewImportError(fmt.Sprintf("file exceeds %d bytes", s.cfg.ImportMaxBytes))
	}

	if _, err := s.sheets.GetByID(ctx, userID, input.SheetID); err != nil {
		return ImportResult{}, fmt.Errorf("impex.ImportFile: %w", err)
	}

	p, err := parseFile(input.FileName, input.Data, s.cfg.StrictNumbers)
	if err != nil {
		return ImportResult{}, err
	}

	if policy == config.ImportPolicyAtomic && len(p.rejected) > 0 {
		return ImportResult{}, &domain.ImportError{Reason: "file contains malformed rows", Rows: p.rejected}
	}
	if len(p.rows) == 0 {
		return ImportResult{}, &domain.ImportError{Reason: "no valid rows found", Rows: p.rejected}
	}

	stored, rejected, err := s.store(ctx, userID, input.SheetID, p, policy)
	if err != nil {
		return ImportResult{}, fmt.Errorf("impex.ImportFile: %w", err)
	}
	rejected = append(p.rejected, rejected...)
	slices.SortFunc(rejected, func(a, b domain.ImportRowError) int { return cmp.Compare(a.Line, b.Line) })
	if stored == 0 {
		return ImportResult{}, &domain.ImportError{Reason: "no valid rows found", Rows: rejected}
	}

	result := ImportResult{
		Message: fmt.Sprintf("Imported %d rows", stored),
		Count:   stored,
		Skipped: len(rejected),
		Errors:  rejected,
	}
	if result.Skipped > 0 {
		result.Message += fmt.Sprintf(", skipped %d", result.Skipped)
	}
	if result.Errors == nil {
		result.Errors = []domain.ImportRowError{}
	}

	s.log.InfoContext(ctx, "sheet imported",
		slog.String("user_id", userID.String()),
		slog.String("sheet_id", input.SheetID.String()),
		slog.String("policy", policy),
		slog.Int("count", result.Count),
		slog.Int("skipped", result.Skipped))

	return result, nil
}

// store writes rows in chunks and returns how many were written. The
// atomic policy wraps every chunk in one transaction and fails as a whole.
// Otherwise each chunk commits on its own, and a chunk the database rejects
// as invalid is retried row by row so only the offending lines are skipped.
func (s *Service) store(ctx context.Context, userID, sheetID uuid.UUID, p parsed, policy string) (int, []domain.ImportRowError, error) {
	size := max(1, s.cfg.ImportChunkSize)

	if policy == config.ImportPolicyAtomic {
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			for start := 0; start < len(p.rows); start += size {
				end := min(start+size, len(p.rows))
				if _, err := s.rows.CreateBatch(ctx, userID, sheetID, p.rows[start:end]); err != nil {
					return fmt.Errorf("insert rows %d-%d: %w", start+1, end, err)
				}
			}
			return nil
		})
		if errors.Is(err, domain.ErrValidation) {
			return 0, nil, &domain.ImportError{Reason: "file contains rows that cannot be stored"}
		}
		if err != nil {
			return 0, nil, err
		}
		return len(p.rows), nil, nil
	}

	var (
		stored   int
		rejected []domain.ImportRowError
	)
	insert := func(rows []domain.Row) error {
		return s.tx.RunInTx(ctx, func(ctx context.Context) error {
			_, err := s.rows.CreateBatch(ctx, userID, sheetID, rows)
			return err
		})
	}
	for start := 0; start < len(p.rows); start += size {
		end := min(start+size, len(p.rows))
		err := insert(p.rows[start:end])
		if err == nil {
			stored += end - start
			continue
		}
		if !errors.Is(err, domain.ErrValidation) {
			return stored, rejected, fmt.Errorf("insert rows %d-%d after %d stored: %w", start+1, end, stored, err)
		}

		s.log.WarnContext(ctx, "import chunk rejected, retrying rows one by one",
			slog.Int("from", start+1), slog.Int("to", end), slog.String("error", err.Error()))
		for i := start; i < end; i++ {
			err := insert(p.rows[i : i+1])
			switch {
			case err == nil:
				stored++
			case errors.Is(err, domain.ErrValidation):
				rejected = append(rejected, domain.ImportRowError{Line: p.lines[i], Reason: "value cannot be stored"})
			default:
				return stored, rejected, fmt.Errorf("insert row %d after %d stored: %w", i+1, stored, err)
			}
		}
	}
	return stored, rejected, nil
}
