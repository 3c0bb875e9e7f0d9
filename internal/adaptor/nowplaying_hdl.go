package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-platform/internal/dto"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NowPlayingHandler struct {
	service usecase.NowPlayingService
	log     *zap.Logger
}

func NewNowPlayingHandler(service usecase.NowPlayingService, log *zap.Logger) *NowPlayingHandler {
	return &NowPlayingHandler{
		service: service,
		log:     log.With(zap.String("handler", "nowplaying")),
	}
}

// GetNowPlayings handles GET /api/now-playings (public)
func (h *NowPlayingHandler) GetNowPlayings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	screenings, err := h.service.Get(r.Context(), query.Get("title"), query.Get("date"))
	if err != nil {
		handleServiceError(w, h.log, err, "get now playings")
		return
	}

	utils.ResponseSuccess(w, "success", screenings)
}

// GetNowPlayingByID handles GET /api/now-playings/{id} (public)
func (h *NowPlayingHandler) GetNowPlayingByID(w http.ResponseWriter, r *http.Request) {
	screening, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get now playing by ID")
		return
	}

	utils.ResponseSuccess(w, "success", screening)
}

// CreateNowPlaying handles POST /api/admin/now-playings
func (h *NowPlayingHandler) CreateNowPlaying(w http.ResponseWriter, r *http.Request) {
	var req dto.NowPlayingDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create now playing")
		return
	}

	utils.ResponseCreated(w, "success", map[string]string{"id": id})
}

// DeleteNowPlaying handles DELETE /api/admin/now-playings/{id}
func (h *NowPlayingHandler) DeleteNowPlaying(w http.ResponseWriter, r *http.Request) {
	id, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "delete now playing")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]string{"id": id})
}
