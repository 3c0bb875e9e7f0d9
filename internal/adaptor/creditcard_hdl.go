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

// CreditCardHandler guards every operation with an owner-or-admin check.
type CreditCardHandler struct {
	service usecase.CreditCardService
	log     *zap.Logger
}

func NewCreditCardHandler(service usecase.CreditCardService, log *zap.Logger) *CreditCardHandler {
	return &CreditCardHandler{
		service: service,
		log:     log.With(zap.String("handler", "creditcard")),
	}
}

// GetCreditCards handles GET /api/credit-cards (authenticated). Customers
// get their own cards; admins may pass a username filter.
func (h *CreditCardHandler) GetCreditCards(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "authentication required")
		return
	}

	if !principal.IsAdmin() {
		username = principal.Username
	} else if username == "" {
		username = principal.Username
	}

	cards, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		handleServiceError(w, h.log, err, "get credit cards")
		return
	}

	utils.ResponseSuccess(w, "success", cards)
}

// GetCreditCardByID handles GET /api/credit-cards/{id} (authenticated)
func (h *CreditCardHandler) GetCreditCardByID(w http.ResponseWriter, r *http.Request) {
	card, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get credit card by ID")
		return
	}

	if principal, ok := utils.GetPrincipal(r.Context()); ok && !principal.IsAdmin() && card.Username != principal.Username {
		utils.ResponseForbidden(w, "access denied")
		return
	}

	utils.ResponseSuccess(w, "success", card)
}

// CreateCreditCard handles POST /api/credit-cards (authenticated)
func (h *CreditCardHandler) CreateCreditCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditCardDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Customers always register cards on their own account.
	if principal, ok := utils.GetPrincipal(r.Context()); ok && !principal.IsAdmin() {
		req.Username = principal.Username
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create credit card")
		return
	}

	utils.ResponseCreated(w, "success", map[string]string{"id": id})
}

// DeleteCreditCard handles DELETE /api/credit-cards/{id} (authenticated)
func (h *CreditCardHandler) DeleteCreditCard(w http.ResponseWriter, r *http.Request) {
	paramID := chi.URLParam(r, "id")

	card, err := h.service.GetByID(r.Context(), paramID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete credit card")
		return
	}

	if principal, ok := utils.GetPrincipal(r.Context()); ok && !principal.IsAdmin() && card.Username != principal.Username {
		utils.ResponseForbidden(w, "access denied")
		return
	}

	id, err := h.service.Delete(r.Context(), paramID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete credit card")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]string{"id": id})
}
