package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"budget/internal/core"
	"budget/internal/report"
)

// handleTransactions serves the collection: GET lists, POST records.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.service.ListTransactions())
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		errorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		slog.ErrorContext(r.Context(), "Parse body error", "error", err, "method", r.Method, "url", r.URL.Path)
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date := parser.Get("date")
	if date == "" {
		date = string(core.Today())
	}

	draft := core.Draft{
		Amount:      parser.Get("amount"),
		Type:        core.Type(parser.Get("type")),
		Category:    parser.Get("category"),
		Description: parser.Get("description"),
		Date:        core.Date(date),
	}

	tx, err := s.service.AddTransaction(r.Context(), draft)
	if err != nil {
		if core.IsValidationError(err) {
			errorJSON(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Add transaction error", "error", err)
		errorJSON(w, http.StatusInternalServerError, "failed to record transaction")
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

// handleTransactionByID serves /transactions/{id}: DELETE removes.
func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/transactions/")
	if id == "" || strings.Contains(id, "/") {
		errorJSON(w, http.StatusNotFound, "not found")
		return
	}

	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		errorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if !s.service.DeleteTransaction(r.Context(), id) {
		errorJSON(w, http.StatusNotFound, "transaction not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleSummary returns income, expenses and balance for a month.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		errorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	month, err := parseMonthKey(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return
	}

	summary := s.service.PeriodSummary(month)
	writeJSON(w, http.StatusOK, struct {
		Month string `json:"month"`
		core.PeriodSummary
	}{Month: string(month), PeriodSummary: summary})
}

// handleCategories returns the fixed category registry.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		errorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, s.service.Categories())
}

type categoryBreakdownRow struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	BarWidth   float64 `json:"barWidth"`
}

// handleCategoryTotals returns the per-category expense breakdown for a
// month, largest first. Unknown category ids resolve to the fallback
// display metadata.
func (s *Server) handleCategoryTotals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		errorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	month, err := parseMonthKey(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return
	}

	totals := s.service.CategoryTotals(month)
	total := s.service.PeriodSummary(month).Expenses

	rows := make([]categoryBreakdownRow, 0, len(totals))
	for id, amount := range totals {
		cat, ok := core.LookupCategory(id)
		if !ok {
			cat = core.FallbackCategory
		}
		rows = append(rows, categoryBreakdownRow{
			CategoryID: id,
			Name:       cat.Name,
			Color:      cat.Color,
			Icon:       cat.Icon,
			Amount:     amount.Float(),
			Percentage: report.Percentage(amount, total),
			BarWidth:   report.BarWidth(amount, total),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].CategoryID < rows[j].CategoryID
	})

	writeJSON(w, http.StatusOK, struct {
		Month      string                 `json:"month"`
		Total      float64                `json:"total"`
		Categories []categoryBreakdownRow `json:"categories"`
	}{Month: string(month), Total: total.Float(), Categories: rows})
}

// handleTrends returns the trailing 12-month income/expense series.
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		errorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, s.service.MonthlySeries(time.Now()))
}

// parseMonthKey extracts the month query parameter, defaulting to the
// current month when absent.
func parseMonthKey(r *http.Request) (core.MonthKey, error) {
	v := strings.TrimSpace(r.URL.Query().Get("month"))
	if v == "" {
		return core.MonthKeyOf(time.Now()), nil
	}
	key := core.MonthKey(v)
	if err := key.Validate(); err != nil {
		return "", err
	}
	return key, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: msg})
}
