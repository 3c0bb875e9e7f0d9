package wire

import (
	"cinema-platform/internal/adaptor"
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/middleware"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCinema(
	r chi.Router,
	cinemaHandler *adaptor.CinemaHandler,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/cinemas", cinemaHandler.GetCinemas)
	r.Get("/api/cinemas/{id}", cinemaHandler.GetCinemaByID)
	r.Get("/api/cinemas/{cinemaId}/rooms", roomHandler.GetRooms)
	r.Get("/api/cinemas/{cinemaId}/rooms/{id}", roomHandler.GetRoomByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/cinemas", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", cinemaHandler.CreateCinema)
		r.Put("/{id}", cinemaHandler.UpdateCinema)
		r.Patch("/{id}", cinemaHandler.PatchCinema)
		r.Delete("/{id}", cinemaHandler.DeleteCinema)

		r.Post("/{cinemaId}/rooms", roomHandler.CreateRoom)
		r.Put("/{cinemaId}/rooms/{id}", roomHandler.UpdateRoom)
		r.Patch("/{cinemaId}/rooms/{id}", roomHandler.PatchRoom)
		r.Delete("/{cinemaId}/rooms/{id}", roomHandler.DeleteRoom)
	})
}
