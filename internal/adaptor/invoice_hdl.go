package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cinema-platform/internal/dto"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	service usecase.InvoiceService
	log     *zap.Logger
}

func NewInvoiceHandler(service usecase.InvoiceService, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "invoice")),
	}
}

// GetInvoices handles GET /api/invoices (authenticated). Non-admin callers
// only ever see their own invoices, whatever filter they pass.
func (h *InvoiceHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	username := query.Get("username")
	if principal, ok := utils.GetPrincipal(r.Context()); ok && !principal.IsAdmin() {
		username = principal.Username
	}

	var paid *bool
	if rawPaid := query.Get("paid"); rawPaid != "" {
		value, err := strconv.ParseBool(rawPaid)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid paid parameter", nil)
			return
		}
		paid = &value
	}

	invoices, err := h.service.Get(r.Context(), username, query.Get("nowPlayingId"), paid)
	if err != nil {
		handleServiceError(w, h.log, err, "get invoices")
		return
	}

	utils.ResponseSuccess(w, "success", invoices)
}

// GetInvoiceByID handles GET /api/invoices/{id} (authenticated)
func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get invoice by ID")
		return
	}

	if principal, ok := utils.GetPrincipal(r.Context()); ok && !principal.IsAdmin() && invoice.Username != principal.Username {
		utils.ResponseForbidden(w, "access denied")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

// CreateInvoice handles POST /api/invoices (authenticated)
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.InvoiceDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Customers always order on their own account.
	if principal, ok := utils.GetPrincipal(r.Context()); ok && !principal.IsAdmin() {
		req.Username = principal.Username
	}

	invoice, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create invoice")
		return
	}

	utils.ResponseCreated(w, "success", invoice)
}

// PatchInvoice handles PATCH /api/admin/invoices/{id}
func (h *InvoiceHandler) PatchInvoice(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	invoice, err := h.service.Patch(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		handleServiceError(w, h.log, err, "patch invoice")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

// DeleteInvoice handles DELETE /api/admin/invoices/{id}
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "delete invoice")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]string{"id": id})
}
