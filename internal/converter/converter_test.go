package converter_test

import (
	"testing"
	"time"

	"cinema-platform/internal/converter"
	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestCinemaToDto_ExpansionKnob(t *testing.T) {
	cinema := &entity.Cinema{
		ID:       3,
		Name:     "Colosseum",
		Location: "Oslo",
		Rooms: []entity.Room{
			{ID: 1, Name: "Sal 1", CinemaID: 3, Seats: []string{"A1", "A2"}},
		},
	}

	flat := converter.CinemaToDto(cinema, false)
	assert.Equal(t, "3", flat.ID)
	assert.Empty(t, flat.Rooms)

	expanded := converter.CinemaToDto(cinema, true)
	if assert.Len(t, expanded.Rooms, 1) {
		assert.Equal(t, "1", expanded.Rooms[0].ID)
		assert.Equal(t, "3", expanded.Rooms[0].CinemaID)
		assert.Equal(t, []string{"A1", "A2"}, expanded.Rooms[0].Seats)
	}
}

func TestCinemaToEntity_NeverCarriesID(t *testing.T) {
	cinema := converter.CinemaToEntity(dto.CinemaDto{
		ID:       "99",
		Name:     "Ringen",
		Location: "Oslo",
	})

	assert.Equal(t, int64(0), cinema.ID)
	assert.Equal(t, "Ringen", cinema.Name)
}

func TestMovieToDto_RoundTrip(t *testing.T) {
	duration := 120
	ageLimit := 12

	movie := converter.MovieToEntity(dto.MovieDto{
		Title:         "Inception",
		PosterURL:     "http://example.com/p.jpg",
		MovieDuration: &duration,
		AgeLimit:      &ageLimit,
	})
	movie.ID = 5
	movie.Genres = []entity.Genre{{ID: 2, Name: "Sci-Fi"}}

	flat := converter.MovieToDto(movie, false)
	assert.Equal(t, "5", flat.ID)
	assert.Equal(t, "Inception", flat.Title)
	assert.Equal(t, 120, *flat.MovieDuration)
	assert.Equal(t, 12, *flat.AgeLimit)
	assert.Empty(t, flat.Genre)

	expanded := converter.MovieToDto(movie, true)
	if assert.Len(t, expanded.Genre, 1) {
		assert.Equal(t, "Sci-Fi", expanded.Genre[0].Name)
	}
}

func TestCouponToDto_FormatsExpireAt(t *testing.T) {
	coupon := &entity.Coupon{
		ID:          7,
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    time.Date(2018, 12, 12, 20, 20, 0, 0, time.UTC),
		Percentage:  10,
	}

	d := converter.CouponToDto(coupon)
	assert.Equal(t, "7", d.ID)
	assert.Equal(t, "2018-12-12 20:20:00.000000", d.ExpireAt)
	assert.Equal(t, 10, *d.Percentage)
}

func TestInvoiceToDto_TicketExpansion(t *testing.T) {
	invoice := &entity.Invoice{
		ID:           11,
		Username:     "alice",
		OrderDate:    time.Date(2018, 12, 1, 18, 0, 0, 0, time.UTC),
		NowPlayingID: 4,
		Paid:         false,
		TotalPrice:   180,
		Tickets: []entity.Ticket{
			{ID: 1, Price: 100, Seat: "A1", InvoiceID: 11},
			{ID: 2, Price: 100, Seat: "A2", InvoiceID: 11},
		},
	}

	flat := converter.InvoiceToDto(invoice, false)
	assert.Empty(t, flat.Tickets)
	assert.Equal(t, 180.0, *flat.TotalPrice)

	expanded := converter.InvoiceToDto(invoice, true)
	if assert.Len(t, expanded.Tickets, 2) {
		assert.Equal(t, "A2", expanded.Tickets[1].Seat)
		assert.Equal(t, "11", expanded.Tickets[1].InvoiceID)
	}
}

func TestUserToDto_HidesPassword(t *testing.T) {
	user := &entity.User{
		Username:     "alice",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
	}

	d := converter.UserToDto(user)
	assert.Equal(t, "alice", d.Username)
	assert.Empty(t, d.Password)
}

func TestListConversionPreservesOrder(t *testing.T) {
	coupons := []*entity.Coupon{
		{ID: 1, Code: "A"},
		{ID: 2, Code: "B"},
		{ID: 3, Code: "C"},
	}

	dtos := converter.CouponListToDtoList(coupons)
	if assert.Len(t, dtos, 3) {
		assert.Equal(t, "A", dtos[0].Code)
		assert.Equal(t, "B", dtos[1].Code)
		assert.Equal(t, "C", dtos[2].Code)
	}
}
