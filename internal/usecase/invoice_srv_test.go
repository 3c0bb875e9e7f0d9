package usecase_test

import (
	"context"
	"testing"
	"time"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/dto"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type invoiceFixture struct {
	service     usecase.InvoiceService
	invoiceRepo *fakeInvoiceRepo
	ticketRepo  *fakeTicketRepo
}

// Each fixture comes with one screening (id 1) and the SUMMER10 coupon at a
// unit ticket price of 100.
func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	ctx := context.Background()

	couponRepo := newFakeCouponRepo()
	_, err := couponRepo.Create(ctx, &entity.Coupon{
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Percentage:  10,
	})
	assert.NoError(t, err)

	nowPlayingRepo := newFakeNowPlayingRepo()
	_, err = nowPlayingRepo.Create(ctx, &entity.NowPlaying{
		MovieID:           1,
		TimeWhenMoviePlay: time.Date(2018, 12, 1, 20, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	config := &utils.Config{Order: utils.OrderConfig{TicketPrice: 100}}
	invoiceRepo := newFakeInvoiceRepo()
	ticketRepo := newFakeTicketRepo()

	return &invoiceFixture{
		service:     usecase.NewInvoiceService(invoiceRepo, ticketRepo, couponRepo, nowPlayingRepo, config, zap.NewNop()),
		invoiceRepo: invoiceRepo,
		ticketRepo:  ticketRepo,
	}
}

func validInvoice() dto.InvoiceDto {
	return dto.InvoiceDto{
		Username:     "alice",
		OrderDate:    "2018-12-01 18:00:00",
		NowPlayingID: "1",
		Tickets: []dto.TicketDto{
			{Seat: "A1"},
			{Seat: "A2"},
		},
	}
}

func TestInvoiceCreate_AppliesCouponDiscount(t *testing.T) {
	f := newInvoiceFixture(t)

	request := validInvoice()
	request.CouponCode = "SUMMER10"

	result, err := f.service.Create(context.Background(), request)

	assert.NoError(t, err)
	assert.Equal(t, 180.0, *result.TotalPrice)
	assert.Equal(t, "SUMMER10", result.CouponCode)
	assert.False(t, *result.Paid)
	if assert.Len(t, result.Tickets, 2) {
		assert.Equal(t, 100.0, *result.Tickets[0].Price)
		assert.Equal(t, "A1", result.Tickets[0].Seat)
	}
}

func TestInvoiceCreate_WithoutCoupon(t *testing.T) {
	f := newInvoiceFixture(t)

	result, err := f.service.Create(context.Background(), validInvoice())

	assert.NoError(t, err)
	assert.Equal(t, 200.0, *result.TotalPrice)
	assert.Empty(t, result.CouponCode)
}

func TestInvoiceCreate_ClientTotalPriceIllegal(t *testing.T) {
	f := newInvoiceFixture(t)

	request := validInvoice()
	price := 1.0
	request.TotalPrice = &price

	_, err := f.service.Create(context.Background(), request)

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "illegal parameter: totalPrice", validationErr.Message)
	}
}

func TestInvoiceCreate_UnknownCoupon(t *testing.T) {
	f := newInvoiceFixture(t)

	request := validInvoice()
	request.CouponCode = "NOPE"

	_, err := f.service.Create(context.Background(), request)

	var conflict *apperror.ConflictError
	if assert.ErrorAs(t, err, &conflict) {
		assert.Equal(t, "no coupon with code NOPE found", conflict.Message)
		assert.Equal(t, 404, conflict.Status)
	}
}

func TestInvoiceCreate_MissingScreening(t *testing.T) {
	f := newInvoiceFixture(t)

	request := validInvoice()
	request.NowPlayingID = "42"

	_, err := f.service.Create(context.Background(), request)

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestInvoiceCreate_BadSeat(t *testing.T) {
	f := newInvoiceFixture(t)

	request := validInvoice()
	request.Tickets[1].Seat = "1A"

	_, err := f.service.Create(context.Background(), request)

	var validationErr *apperror.UserInputValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestInvoiceGet_RejectsThreeWayFilter(t *testing.T) {
	f := newInvoiceFixture(t)

	paid := true
	_, err := f.service.Get(context.Background(), "alice", "1", &paid)

	var validationErr *apperror.UserInputValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestInvoicePatch_SetsPaid(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, validInvoice())
	assert.NoError(t, err)

	patched, err := f.service.Patch(ctx, created.ID, []byte(`{"paid": true}`))

	assert.NoError(t, err)
	assert.True(t, *patched.Paid)
	assert.Len(t, patched.Tickets, 2)
	assert.True(t, f.invoiceRepo.invoices[1].Paid)
}

func TestInvoiceDelete_RemovesTickets(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, validInvoice())
	assert.NoError(t, err)
	assert.Len(t, f.ticketRepo.tickets, 2)

	id, err := f.service.Delete(ctx, created.ID)

	assert.NoError(t, err)
	assert.Equal(t, created.ID, id)
	assert.Empty(t, f.ticketRepo.tickets)
	assert.Empty(t, f.invoiceRepo.invoices)
}
