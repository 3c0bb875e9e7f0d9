package adaptor

import (
	"cinema-platform/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Cinema     *CinemaHandler
	Room       *RoomHandler
	Movie      *MovieHandler
	Genre      *GenreHandler
	NowPlaying *NowPlayingHandler
	Coupon     *CouponHandler
	Invoice    *InvoiceHandler
	Ticket     *TicketHandler
	User       *UserHandler
	CreditCard *CreditCardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Cinema:     NewCinemaHandler(service.Cinema, log),
		Room:       NewRoomHandler(service.Room, log),
		Movie:      NewMovieHandler(service.Movie, log),
		Genre:      NewGenreHandler(service.Genre, log),
		NowPlaying: NewNowPlayingHandler(service.NowPlaying, log),
		Coupon:     NewCouponHandler(service.Coupon, log),
		Invoice:    NewInvoiceHandler(service.Invoice, log),
		Ticket:     NewTicketHandler(service.Ticket, log),
		User:       NewUserHandler(service.User, log),
		CreditCard: NewCreditCardHandler(service.CreditCard, log),
	}
}
