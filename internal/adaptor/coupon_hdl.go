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

type CouponHandler struct {
	service usecase.CouponService
	log     *zap.Logger
}

func NewCouponHandler(service usecase.CouponService, log *zap.Logger) *CouponHandler {
	return &CouponHandler{
		service: service,
		log:     log.With(zap.String("handler", "coupon")),
	}
}

// GetCoupons handles GET /api/coupons (authenticated)
func (h *CouponHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	coupons, err := h.service.Get(r.Context(), code)
	if err != nil {
		handleServiceError(w, h.log, err, "get coupons")
		return
	}

	utils.ResponseSuccess(w, "success", coupons)
}

// GetCouponByID handles GET /api/coupons/{id} (authenticated)
func (h *CouponHandler) GetCouponByID(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get coupon by ID")
		return
	}

	utils.ResponseSuccess(w, "success", coupon)
}

// CreateCoupon handles POST /api/admin/coupons
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req dto.CouponDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create coupon")
		return
	}

	utils.ResponseCreated(w, "success", map[string]string{"id": id})
}

// UpdateCoupon handles PUT /api/admin/coupons/{id}
func (h *CouponHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var req dto.CouponDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	id, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "update coupon")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]string{"id": id})
}

// PatchCoupon handles PATCH /api/admin/coupons/{id}
func (h *CouponHandler) PatchCoupon(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	coupon, err := h.service.Patch(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		handleServiceError(w, h.log, err, "patch coupon")
		return
	}

	utils.ResponseSuccess(w, "success", coupon)
}

// DeleteCoupon handles DELETE /api/admin/coupons/{id}
func (h *CouponHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "delete coupon")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]string{"id": id})
}
