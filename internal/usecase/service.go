package usecase

import (
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Cinema     CinemaService
	Room       RoomService
	Movie      MovieService
	Genre      GenreService
	NowPlaying NowPlayingService
	Coupon     CouponService
	Invoice    InvoiceService
	Ticket     TicketService
	User       UserService
	CreditCard CreditCardService
	Auth       AuthService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Cinema:     NewCinemaService(repo.Cinema, repo.Room, log),
		Room:       NewRoomService(repo.Room, repo.Cinema, log),
		Movie:      NewMovieService(repo.Movie, repo.Genre, repo.MovieGenre, log),
		Genre:      NewGenreService(repo.Genre, repo.MovieGenre, log),
		NowPlaying: NewNowPlayingService(repo.NowPlaying, repo.Movie, log),
		Coupon:     NewCouponService(repo.Coupon, log),
		Invoice:    NewInvoiceService(repo.Invoice, repo.Ticket, repo.Coupon, repo.NowPlaying, config, log),
		Ticket:     NewTicketService(repo.Ticket, log),
		User:       NewUserService(repo.User, repo.CreditCard, repo.Session, log),
		CreditCard: NewCreditCardService(repo.CreditCard, repo.User, log),
		Auth:       NewAuthService(repo.User, repo.Session, log),
	}
}
