package wire

import (
	"cinema-platform/internal/adaptor"
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/middleware"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	couponHandler *adaptor.CouponHandler,
	invoiceHandler *adaptor.InvoiceHandler,
	ticketHandler *adaptor.TicketHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	// ==================== AUTHENTICATED ROUTES ====================
	r.Route("/api/coupons", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", couponHandler.GetCoupons)
		r.Get("/{id}", couponHandler.GetCouponByID)
	})

	r.Route("/api/invoices", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", invoiceHandler.GetInvoices)
		r.Get("/{id}", invoiceHandler.GetInvoiceByID)
		r.Post("/", invoiceHandler.CreateInvoice)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/coupons", func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.Admin(log))

		r.Post("/", couponHandler.CreateCoupon)
		r.Put("/{id}", couponHandler.UpdateCoupon)
		r.Patch("/{id}", couponHandler.PatchCoupon)
		r.Delete("/{id}", couponHandler.DeleteCoupon)
	})

	r.Route("/api/admin/invoices", func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.Admin(log))

		r.Patch("/{id}", invoiceHandler.PatchInvoice)
		r.Delete("/{id}", invoiceHandler.DeleteInvoice)
	})

	r.Route("/api/admin/tickets", func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.Admin(log))

		r.Get("/", ticketHandler.GetTickets)
		r.Get("/{id}", ticketHandler.GetTicketByID)
		r.Post("/", ticketHandler.CreateTicket)
		r.Put("/{id}", ticketHandler.UpdateTicket)
		r.Patch("/{id}", ticketHandler.PatchTicket)
		r.Delete("/{id}", ticketHandler.DeleteTicket)
	})
}
