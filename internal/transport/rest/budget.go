package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/internal/service/impex"
	"github.com/lifeos/lifeos-backend/internal/service/ledger"
)

// multipartOverhead is the slack allowed on top of the file size limit for
// multipart boundaries and form fields.
const multipartOverhead = 1 << 20

type ledgerService interface {
	ListSheets(ctx context.Context) ([]*domain.Sheet, error)
	CreateSheet(ctx context.Context, input ledger.CreateSheetInput) (*domain.Sheet, error)
	UpdateSheet(ctx context.Context, input ledger.UpdateSheetInput) (*domain.Sheet, error)
	DeleteSheet(ctx context.Context, sheetID uuid.UUID) error
	ListRows(ctx context.Context, input ledger.ListRowsInput) ([]*domain.Row, error)
	AddRow(ctx context.Context, input ledger.AddRowInput) (*domain.Row, error)
	UpdateRow(ctx context.Context, input ledger.UpdateRowInput) (*domain.Row, error)
	DeleteRow(ctx context.Context, rowID uuid.UUID) error
	Totals(ctx context.Context, sheetID uuid.UUID) (domain.Totals, error)
	ListTransactions(ctx context.Context) ([]*domain.Transaction, error)
	CreateTransaction(ctx context.Context, input ledger.CreateTransactionInput) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, input ledger.UpdateTransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context) (domain.BudgetSummary, error)
}

type impexService interface {
	ImportFile(ctx context.Context, input impex.ImportInput) (impex.ImportResult, error)
	ExportSheet(ctx context.Context, sheetID uuid.UUID) (impex.ExportFile, error)
}

// BudgetHandler serves the ledger spreadsheet, file transfer and legacy
// transaction endpoints.
type BudgetHandler struct {
	ledger    ledgerService
	impex     impexService
	maxUpload int64
	log       *slog.Logger
}

// NewBudgetHandler creates a BudgetHandler. maxUpload is the import file
// size limit in bytes.
func NewBudgetHandler(ledger ledgerService, impex impexService, maxUpload int64, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{
		ledger:    ledger,
		impex:     impex,
		maxUpload: maxUpload,
		log:       logger.With("handler", "budget"),
	}
}

type sheetRequest struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

type rowRequest struct {
	Date        *string      `json:"date"`
	Description *string      `json:"description"`
	Credit      *amountInput `json:"credit"`
	Debit       *amountInput `json:"debit"`
	Order       *int         `json:"order"`
}

type transactionRequest struct {
	Type        *string      `json:"type"`
	Amount      *amountInput `json:"amount"`
	Category    *string      `json:"category"`
	Section     *string      `json:"section"`
	Description *string      `json:"description"`
	Date        *string      `json:"date"`
	IsRecurring *bool        `json:"is_recurring"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// ---------------------------------------------------------------------------
// Sheets
// ---------------------------------------------------------------------------

// ListSheets handles GET /budget/sheets.
func (h *BudgetHandler) ListSheets(w http.ResponseWriter, r *http.Request) {
	sheets, err := h.ledger.ListSheets(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(sheets, toSheetResponse))
}

// CreateSheet handles POST /budget/sheets.
func (h *BudgetHandler) CreateSheet(w http.ResponseWriter, r *http.Request) {
	var req sheetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sheet, err := h.ledger.CreateSheet(r.Context(), ledger.CreateSheetInput{Name: deref(req.Name)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSheetResponse(sheet))
}

// UpdateSheet handles PUT /budget/sheets/{id}.
func (h *BudgetHandler) UpdateSheet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req sheetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sheet, err := h.ledger.UpdateSheet(r.Context(), ledger.UpdateSheetInput{
		SheetID:  id,
		Name:     req.Name,
		Position: req.Order,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSheetResponse(sheet))
}

// DeleteSheet handles DELETE /budget/sheets/{id}. Rows go with the sheet.
func (h *BudgetHandler) DeleteSheet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.ledger.DeleteSheet(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Sheet deleted"})
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

// ListRows handles GET /budget/sheets/{id}/rows?sort=<key>&dir=asc|desc.
func (h *BudgetHandler) ListRows(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	key := domain.RowSortKey(strings.ToLower(q.Get("sort")))
	if key != domain.RowSortNone && !key.IsValid() {
		handleError(h.log, w, r, domain.NewValidationError("sort", "must be one of date, description, credit, debit"))
		return
	}
	var desc bool
	switch strings.ToLower(q.Get("dir")) {
	case "", "asc":
	case "desc":
		desc = true
	default:
		handleError(h.log, w, r, domain.NewValidationError("dir", "must be asc or desc"))
		return
	}

	rows, err := h.ledger.ListRows(r.Context(), ledger.ListRowsInput{SheetID: id, SortKey: key, Descending: desc})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(rows, toRowResponse))
}

// AddRow handles POST /budget/sheets/{id}/rows.
func (h *BudgetHandler) AddRow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req rowRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	row, err := h.ledger.AddRow(r.Context(), ledger.AddRowInput{
		SheetID:     id,
		Date:        deref(req.Date),
		Description: deref(req.Description),
		Credit:      deref(req.Credit.ptr()),
		Debit:       deref(req.Debit.ptr()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRowResponse(row))
}

// UpdateRow handles PUT /budget/rows/{id}.
func (h *BudgetHandler) UpdateRow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req rowRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	row, err := h.ledger.UpdateRow(r.Context(), ledger.UpdateRowInput{
		RowID:       id,
		Date:        req.Date,
		Description: req.Description,
		Credit:      req.Credit.ptr(),
		Debit:       req.Debit.ptr(),
		Position:    req.Order,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRowResponse(row))
}

// DeleteRow handles DELETE /budget/rows/{id}.
func (h *BudgetHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.ledger.DeleteRow(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Row deleted"})
}

// Totals handles GET /budget/sheets/{id}/totals.
func (h *BudgetHandler) Totals(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	totals, err := h.ledger.Totals(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTotalsResponse(totals))
}

// ---------------------------------------------------------------------------
// Import / export
// ---------------------------------------------------------------------------

// Import handles POST /budget/sheets/{id}/import with a multipart "file"
// field. The policy comes from the "policy" form field or query parameter.
func (h *BudgetHandler) Import(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("file", "multipart field \"file\" is required"))
		return
	}
	defer file.Close()

	// One byte past the limit lets the service report the oversize file.
	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	policy := r.FormValue("policy")
	result, err := h.impex.ImportFile(r.Context(), impex.ImportInput{
		SheetID:  id,
		FileName: header.Filename,
		Data:     data,
		Policy:   policy,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		Message: result.Message,
		Count:   result.Count,
		Skipped: result.Skipped,
		Errors: mapSlice(result.Errors, func(e domain.ImportRowError) importRowResponse {
			return importRowResponse{Line: e.Line, Reason: e.Reason}
		}),
	})
}

// Export handles GET /budget/sheets/{id}/export as a CSV download.
func (h *BudgetHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	file, err := h.impex.ExportSheet(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("X-Total-Rows", strconv.Itoa(file.TotalRows))
	if file.Truncated {
		w.Header().Set("X-Truncated", "true")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(file.Data) //nolint:errcheck
}

// ---------------------------------------------------------------------------
// Legacy transactions
// ---------------------------------------------------------------------------

func parseMoney(field string, a *amountInput) (*decimal.Decimal, error) {
	if a == nil || !a.Set {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(a.Raw))
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a number")
	}
	return &d, nil
}

// ListTransactions handles GET /budget/transactions.
func (h *BudgetHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.ledger.ListTransactions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(txs, toTransactionResponse))
}

// CreateTransaction handles POST /budget/transactions.
func (h *BudgetHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	amount, err := parseMoney("amount", req.Amount)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tx, err := h.ledger.CreateTransaction(r.Context(), ledger.CreateTransactionInput{
		Type:        domain.TransactionType(deref(req.Type)),
		Amount:      deref(amount),
		Category:    deref(req.Category),
		Section:     deref(req.Section),
		Description: deref(req.Description),
		Date:        deref(req.Date),
		IsRecurring: deref(req.IsRecurring),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

// UpdateTransaction handles PUT /budget/transactions/{id}.
func (h *BudgetHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req transactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	amount, err := parseMoney("amount", req.Amount)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := ledger.UpdateTransactionInput{
		ID:          id,
		Amount:      amount,
		Category:    req.Category,
		Section:     req.Section,
		Description: req.Description,
		Date:        req.Date,
		IsRecurring: req.IsRecurring,
	}
	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		input.Type = &t
	}

	tx, err := h.ledger.UpdateTransaction(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(tx))
}

// DeleteTransaction handles DELETE /budget/transactions/{id}.
func (h *BudgetHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.ledger.DeleteTransaction(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Transaction deleted"})
}

// Summary handles GET /budget/summary.
func (h *BudgetHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledger.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}
