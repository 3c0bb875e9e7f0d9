package wire

import (
	"cinema-platform/internal/adaptor"
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/middleware"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	genreHandler *adaptor.GenreHandler,
	nowPlayingHandler *adaptor.NowPlayingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies", movieHandler.GetMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
	r.Get("/api/genres", genreHandler.GetGenres)
	r.Get("/api/genres/{id}", genreHandler.GetGenreByID)
	r.Get("/api/now-playings", nowPlayingHandler.GetNowPlayings)
	r.Get("/api/now-playings/{id}", nowPlayingHandler.GetNowPlayingByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/movies", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", movieHandler.CreateMovie)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Patch("/{id}", movieHandler.PatchMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})

	r.Route("/api/admin/genres", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", genreHandler.CreateGenre)
		r.Put("/{id}", genreHandler.UpdateGenre)
		r.Patch("/{id}", genreHandler.PatchGenre)
		r.Delete("/{id}", genreHandler.DeleteGenre)
	})

	r.Route("/api/admin/now-playings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", nowPlayingHandler.CreateNowPlaying)
		r.Delete("/{id}", nowPlayingHandler.DeleteNowPlaying)
	})
}
