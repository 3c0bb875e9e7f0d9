package repository

import (
	"cinema-platform/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Cinema     CinemaRepository
	Room       RoomRepository
	Movie      MovieRepository
	Genre      GenreRepository
	MovieGenre MovieGenreRepository
	NowPlaying NowPlayingRepository
	Coupon     CouponRepository
	Invoice    InvoiceRepository
	Ticket     TicketRepository
	User       UserRepository
	CreditCard CreditCardRepository
	Session    SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Cinema:     NewCinemaRepository(db, log),
		Room:       NewRoomRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		MovieGenre: NewMovieGenreRepository(db, log),
		NowPlaying: NewNowPlayingRepository(db, log),
		Coupon:     NewCouponRepository(db, log),
		Invoice:    NewInvoiceRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		User:       NewUserRepository(db, log),
		CreditCard: NewCreditCardRepository(db, log),
		Session:    NewSessionRepository(db, log),
	}
}
