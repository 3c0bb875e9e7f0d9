package wire

import (
	"cinema-platform/internal/adaptor"
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/middleware"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	// ==================== AUTHENTICATED ROUTES ====================
	// Profile routes, owner-or-admin checked in the handler
	r.Route("/api/users", func(r chi.Router) {
		r.Use(auth)

		r.Get("/{username}", userHandler.GetUserByUsername)
		r.Put("/{username}", userHandler.UpdateUser)
		r.Patch("/{username}", userHandler.PatchUser)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.Admin(log))

		r.Get("/", userHandler.GetUsers)
		r.Post("/", userHandler.CreateUser)
		r.Delete("/{username}", userHandler.DeleteUser)
	})
}
