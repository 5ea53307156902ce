package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/snarg/hanyu-engine/internal/asr"
	"github.com/snarg/hanyu-engine/internal/assess"
	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/database"
	"github.com/snarg/hanyu-engine/internal/report"
)

// maxAudioBytes bounds the multipart form so a runaway upload cannot
// exhaust memory. Spoken phrases are a few seconds of PCM at most.
const maxAudioBytes = 16 << 20

// Assessor runs one assessment. Implemented by assess.Analyzer.
type Assessor interface {
	AnalyzeWithService(ctx context.Context, buf []byte, targetText, preferred string) (*report.Report, error)
}

// ReportReader serves stored reports. Implemented by database.DB.
type ReportReader interface {
	GetByAnalysisID(ctx context.Context, analysisID string) (*report.Report, string, error)
	ListRecent(ctx context.Context, limit int) ([]database.ReportSummary, error)
}

// AssessmentHandler serves the assessment endpoints.
type AssessmentHandler struct {
	assessor Assessor
	reports  ReportReader // nil when persistence is disabled
	log      zerolog.Logger
}

func NewAssessmentHandler(assessor Assessor, reports ReportReader, log zerolog.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		assessor: assessor,
		reports:  reports,
		log:      log.With().Str("handler", "assessments").Logger(),
	}
}

// Routes registers the assessment endpoints.
func (h *AssessmentHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{analysisID}", h.Get)
}

// Create handles POST /api/v1/assessments.
// Accepts a multipart form with an "audio" file, a "target_text"
// field holding the expected Chinese text, and an optional
// "preferred_service" naming the speech vendor to try first.
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		WriteErrorDetail(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	target := strings.TrimSpace(r.FormValue("target_text"))
	if target == "" {
		WriteError(w, http.StatusBadRequest, "missing target_text")
		return
	}
	preferred := strings.TrimSpace(r.FormValue("preferred_service"))

	file, _, err := r.FormFile("audio")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "missing audio file")
		return
	}
	defer file.Close()
	buf, err := io.ReadAll(file)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "failed to read audio file")
		return
	}

	rep, err := h.assessor.AnalyzeWithService(r.Context(), buf, target, preferred)
	switch {
	case err == nil:
		WriteJSON(w, http.StatusOK, rep)
	case errors.Is(err, audio.ErrEmptyAudio), errors.Is(err, assess.ErrEmptyTarget):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, asr.ErrAllProvidersFailed):
		h.log.Error().Err(err).Msg("assessment failed across all providers")
		WriteErrorDetail(w, http.StatusBadGateway, "all speech services failed", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client went away; 499-style, but net/http has no code for it.
		WriteError(w, http.StatusServiceUnavailable, "assessment interrupted")
	default:
		h.log.Error().Err(err).Msg("assessment failed")
		WriteError(w, http.StatusInternalServerError, "assessment failed")
	}
}

// Get handles GET /api/v1/assessments/{analysisID}.
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.reports == nil {
		WriteError(w, http.StatusNotFound, "report persistence is not configured")
		return
	}

	analysisID := chi.URLParam(r, "analysisID")
	rep, target, err := h.reports.GetByAnalysisID(r.Context(), analysisID)
	if errors.Is(err, database.ErrReportNotFound) {
		WriteError(w, http.StatusNotFound, "no report for analysis id "+analysisID)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("analysis_id", analysisID).Msg("load report")
		WriteError(w, http.StatusInternalServerError, "failed to load report")
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		TargetText string `json:"targetText"`
		*report.Report
	}{TargetText: target, Report: rep})
}

// List handles GET /api/v1/assessments?limit=N.
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.reports == nil {
		WriteError(w, http.StatusNotFound, "report persistence is not configured")
		return
	}

	limit, _ := QueryInt(r, "limit")
	summaries, err := h.reports.ListRecent(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list reports")
		WriteError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}
	WriteJSON(w, http.StatusOK, summaries)
}
