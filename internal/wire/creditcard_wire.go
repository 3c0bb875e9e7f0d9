package wire

import (
	"cinema-platform/internal/adaptor"
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/middleware"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCreditCard(
	r chi.Router,
	creditCardHandler *adaptor.CreditCardHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// All card routes need a session; ownership is checked in the handler.
	r.Route("/api/credit-cards", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", creditCardHandler.GetCreditCards)
		r.Get("/{id}", creditCardHandler.GetCreditCardByID)
		r.Post("/", creditCardHandler.CreateCreditCard)
		r.Delete("/{id}", creditCardHandler.DeleteCreditCard)
	})
}
