package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wonny/tickerpulse/internal/extract"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// TickerHandler handles ticker extraction and validation endpoints
type TickerHandler struct {
	logger *logger.Logger
}

// NewTickerHandler creates a new ticker handler
func NewTickerHandler(log *logger.Logger) *TickerHandler {
	return &TickerHandler{logger: log}
}

// ExtractRequest represents a raw-text extraction request
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse represents an extraction response
type ExtractResponse struct {
	Tickers []string `json:"tickers"`
	Count   int      `json:"count"`
}

// Extract runs ticker extraction over raw text without fetching ratings
// POST /api/extract
func (h *TickerHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tickers := extract.Extract(req.Text)

	respondJSON(w, http.StatusOK, ExtractResponse{
		Tickers: tickers,
		Count:   len(tickers),
	})
}

// ValidateResponse represents a single-symbol validation response
type ValidateResponse struct {
	Symbol string `json:"symbol"`
	Valid  bool   `json:"valid"`
}

// Validate checks a single candidate symbol
// GET /api/tickers/validate?symbol=AAPL
func (h *TickerHandler) Validate(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimSpace(r.URL.Query().Get("symbol"))
	if symbol == "" {
		respondError(w, http.StatusBadRequest, "Missing 'symbol' query parameter")
		return
	}

	respondJSON(w, http.StatusOK, ValidateResponse{
		Symbol: symbol,
		Valid:  extract.IsValidTicker(symbol),
	})
}
