package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AbhayARao26/nbfcreg"
)

// Handler wires the registry operations to HTTP endpoints.
type Handler struct {
	registry *nbfcreg.Registry
	logger   *slog.Logger
}

// NewHandler constructs a handler with its dependencies.
func NewHandler(registry *nbfcreg.Registry, logger *slog.Logger) *Handler {
	return &Handler{registry: registry, logger: logger}
}

// Register mounts the registry endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/v1/recommendations", h.HandleRecommendations)
	r.Get("/api/v1/institutions/{name}", h.HandleInstitutionDetails)
	r.Get("/api/v1/search", h.HandleSearch)
	r.Get("/api/v1/statistics", h.HandleStatistics)
	r.Get("/api/v1/summary", h.HandleSummary)
}

// HandleRecommendations handles GET /api/v1/recommendations.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := h.registry.Recommend(q.Get("region"), q.Get("classification"), intParam(q.Get("max_results")))
	h.writeResult(w, r, res.Failure, res)
}

// HandleInstitutionDetails handles GET /api/v1/institutions/{name}.
func (h *Handler) HandleInstitutionDetails(w http.ResponseWriter, r *http.Request) {
	res := h.registry.InstitutionDetails(chi.URLParam(r, "name"))
	h.writeResult(w, r, res.Failure, res)
}

// HandleSearch handles GET /api/v1/search.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	field := nbfcreg.SearchField(q.Get("field"))
	if field == "" {
		field = nbfcreg.SearchByName
	}
	res := h.registry.Search(q.Get("q"), field, intParam(q.Get("max_results")))
	h.writeResult(w, r, res.Failure, res)
}

// HandleStatistics handles GET /api/v1/statistics.
func (h *Handler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	res := h.registry.Statistics(r.URL.Query().Get("region"))
	h.writeResult(w, r, res.Failure, res)
}

// summaryResponse wraps the localized text alongside the structured result.
type summaryResponse struct {
	Summary string                        `json:"summary"`
	Result  *nbfcreg.RecommendationResult `json:"result"`
}

// HandleSummary handles GET /api/v1/summary. Runs Recommend and renders the
// localized human-readable summary for it; the structured result rides
// along so clients do not need a second call.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	locale := nbfcreg.Locale(q.Get("lang"))
	if locale == "" {
		locale = nbfcreg.LocaleEnglish
	}
	res := h.registry.Recommend(q.Get("region"), q.Get("classification"), intParam(q.Get("max_results")))
	body := summaryResponse{
		Summary: nbfcreg.FormatRecommendationSummary(res, locale),
		Result:  res,
	}
	h.writeResult(w, r, res.Failure, body)
}

// writeResult maps failures to HTTP status codes and writes the body as JSON.
// Failures are part of the payload, not a separate error shape, so clients
// see the same structure the library returns.
func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, fail *nbfcreg.Failure, body any) {
	status := http.StatusOK
	if fail != nil {
		status = statusForKind(fail.Kind)
		h.logger.InfoContext(r.Context(), "operation failed",
			"request_id", requestIDFrom(r.Context()),
			"kind", fail.Kind,
			"message", fail.Message,
		)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(r.Context(), "response encode failed", "error", err)
	}
}

func statusForKind(kind nbfcreg.ErrorKind) int {
	switch kind {
	case nbfcreg.ErrDataUnavailable:
		return http.StatusServiceUnavailable
	case nbfcreg.ErrRegionNotFound, nbfcreg.ErrInstitutionNotFound:
		return http.StatusNotFound
	case nbfcreg.ErrInvalidSearchType, nbfcreg.ErrEmptyQuery:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// intParam parses a positive integer query parameter; anything else yields 0
// so the library applies its default.
func intParam(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
