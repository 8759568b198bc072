package place

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cailurus/hearth/internal/types"
)

// Handler exposes the place operations as JSON endpoints for the dashboard
// widgets.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

type searchResponse struct {
	Places []types.GeoPoint `json:"places"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// SearchCities handles GET /api/v1/places/search?q=&count=&lang=.
func (h *Handler) SearchCities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	count := 0
	if raw := q.Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = parsed
	}

	points, err := h.svc.SearchCities(r.Context(), q.Get("q"), count, q.Get("lang"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, searchResponse{Places: points})
}

// GeocodeCity handles GET /api/v1/places/geocode?city=&lang=.
func (h *Handler) GeocodeCity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	point, err := h.svc.GeocodeCity(r.Context(), q.Get("city"), q.Get("lang"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, point)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrBadRequest):
		h.writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, types.ErrNotFound):
		h.writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
	case errors.Is(err, context.DeadlineExceeded):
		h.writeError(w, r, http.StatusGatewayTimeout, "upstream lookup timed out")
	default:
		h.logger.ErrorContext(r.Context(), "place lookup failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeError(w, r, http.StatusBadGateway, "geocoding provider unavailable")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}
