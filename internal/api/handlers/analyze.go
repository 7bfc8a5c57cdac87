package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wonny/tickerpulse/internal/analyzer"
	"github.com/wonny/tickerpulse/internal/external/youtube"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// AnalyzeHandler handles video analysis API endpoints
// ⭐ SSOT: 분석 API 핸들러는 이 구조체에서만
type AnalyzeHandler struct {
	analyzer *analyzer.Analyzer
	logger   *logger.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(a *analyzer.Analyzer, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: a,
		logger:   log,
	}
}

// AnalyzeRequest represents a video analysis request. Video accepts a
// bare 11-character video ID or any of the common YouTube URL forms.
type AnalyzeRequest struct {
	Video string `json:"video"`
}

// Analyze runs the full pipeline for one video
// POST /api/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	videoID, err := youtube.ParseVideoID(req.Video)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid video ID or URL")
		return
	}

	result, err := h.analyzer.AnalyzeVideo(ctx, videoID)
	if err != nil {
		h.logger.WithError(err).WithField("video_id", videoID).Error("Video analysis failed")
		respondError(w, http.StatusBadGateway, "Failed to fetch video transcript")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
