package converter

import (
	"strconv"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/validation"
)

func CouponToDto(e *entity.Coupon) dto.CouponDto {
	percentage := e.Percentage

	return dto.CouponDto{
		ID:          strconv.FormatInt(e.ID, 10),
		Code:        e.Code,
		Description: e.Description,
		ExpireAt:    e.ExpireAt.Format(validation.TimestampLayout),
		Percentage:  &percentage,
	}
}

func CouponListToDtoList(entities []*entity.Coupon) []dto.CouponDto {
	dtos := make([]dto.CouponDto, len(entities))
	for i, e := range entities {
		dtos[i] = CouponToDto(e)
	}
	return dtos
}

func InvoiceToDto(e *entity.Invoice, loadTickets bool) dto.InvoiceDto {
	paid := e.Paid
	totalPrice := e.TotalPrice

	invoice := dto.InvoiceDto{
		ID:           strconv.FormatInt(e.ID, 10),
		Username:     e.Username,
		OrderDate:    e.OrderDate.Format(validation.TimestampLayout),
		NowPlayingID: strconv.FormatInt(e.NowPlayingID, 10),
		Paid:         &paid,
		TotalPrice:   &totalPrice,
	}

	if loadTickets {
		invoice.Tickets = make([]dto.TicketDto, len(e.Tickets))
		for i := range e.Tickets {
			invoice.Tickets[i] = TicketToDto(&e.Tickets[i])
		}
	}

	return invoice
}

func InvoiceListToDtoList(entities []*entity.Invoice, loadTickets bool) []dto.InvoiceDto {
	dtos := make([]dto.InvoiceDto, len(entities))
	for i, e := range entities {
		dtos[i] = InvoiceToDto(e, loadTickets)
	}
	return dtos
}

func TicketToDto(e *entity.Ticket) dto.TicketDto {
	price := e.Price

	return dto.TicketDto{
		ID:        strconv.FormatInt(e.ID, 10),
		Price:     &price,
		Seat:      e.Seat,
		InvoiceID: strconv.FormatInt(e.InvoiceID, 10),
	}
}

// TicketToEntity expects a pre-validated dto: price and invoiceId must be
// present and parseable.
func TicketToEntity(d dto.TicketDto) *entity.Ticket {
	invoiceID, _ := strconv.ParseInt(d.InvoiceID, 10, 64)

	return &entity.Ticket{
		Price:     *d.Price,
		Seat:      d.Seat,
		InvoiceID: invoiceID,
	}
}

func TicketListToDtoList(entities []*entity.Ticket) []dto.TicketDto {
	dtos := make([]dto.TicketDto, len(entities))
	for i, e := range entities {
		dtos[i] = TicketToDto(e)
	}
	return dtos
}
