package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"cinema-platform/internal/converter"
	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/utils"
	"cinema-platform/pkg/validation"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InvoiceService interface {
	Get(ctx context.Context, username, paramNowPlayingID string, paid *bool) ([]dto.InvoiceDto, error)
	GetByID(ctx context.Context, paramID string) (*dto.InvoiceDto, error)
	Create(ctx context.Context, d dto.InvoiceDto) (*dto.InvoiceDto, error)
	Patch(ctx context.Context, paramID string, body []byte) (*dto.InvoiceDto, error)
	Delete(ctx context.Context, paramID string) (string, error)
}

type invoiceService struct {
	invoiceRepo    repository.InvoiceRepository
	ticketRepo     repository.TicketRepository
	couponRepo     repository.CouponRepository
	nowPlayingRepo repository.NowPlayingRepository
	config         *utils.Config
	log            *zap.Logger
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository, ticketRepo repository.TicketRepository, couponRepo repository.CouponRepository, nowPlayingRepo repository.NowPlayingRepository, config *utils.Config, log *zap.Logger) InvoiceService {
	return &invoiceService{
		invoiceRepo:    invoiceRepo,
		ticketRepo:     ticketRepo,
		couponRepo:     couponRepo,
		nowPlayingRepo: nowPlayingRepo,
		config:         config,
		log:            log.With(zap.String("service", "invoice")),
	}
}

// Get lists invoices matching the given filters. Tickets are not expanded on
// list responses.
func (s *invoiceService) Get(ctx context.Context, username, paramNowPlayingID string, paid *bool) ([]dto.InvoiceDto, error) {
	var usernameFilter *string
	if username != "" {
		usernameFilter = &username
	}

	var nowPlayingID *int64
	if paramNowPlayingID != "" {
		id, err := validation.ValidateID(paramNowPlayingID, "nowPlayingId")
		if err != nil {
			return nil, err
		}
		nowPlayingID = &id
	}

	if usernameFilter != nil && nowPlayingID != nil && paid != nil {
		errorMsg := apperror.InvalidFieldCombination("username, nowPlayingId and paid can not be combined")
		s.log.Warn(errorMsg)
		return nil, apperror.NewUserInputValidation(errorMsg)
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, usernameFilter, nowPlayingID, paid)
	if err != nil {
		return nil, err
	}

	return converter.InvoiceListToDtoList(invoices, false), nil
}

func (s *invoiceService) GetByID(ctx context.Context, paramID string) (*dto.InvoiceDto, error) {
	invoice, err := s.findInvoice(ctx, paramID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.ticketRepo.FindByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Tickets = tickets

	result := s.toDto(ctx, invoice)
	return &result, nil
}

// Create persists an invoice together with its tickets. The total price is
// always computed server side: unit ticket price times ticket count, minus
// the coupon percentage applied to that subtotal.
func (s *invoiceService) Create(ctx context.Context, d dto.InvoiceDto) (*dto.InvoiceDto, error) {
	if d.ID != "" {
		errorMsg := apperror.IllegalParameter("id")
		s.log.Warn(errorMsg)
		return nil, apperror.NewUserInputValidation(errorMsg)
	}

	if d.TotalPrice != nil {
		errorMsg := apperror.IllegalParameter("totalPrice")
		s.log.Warn(errorMsg)
		return nil, apperror.NewUserInputValidation(errorMsg)
	}

	if err := requireFields(s.log, map[string]bool{
		"username":     d.Username == "",
		"orderDate":    d.OrderDate == "",
		"nowPlayingId": d.NowPlayingID == "",
		"tickets":      len(d.Tickets) == 0,
	}, "username", "orderDate", "nowPlayingId", "tickets"); err != nil {
		return nil, err
	}

	// Client input format is "yyyy-MM-dd HH:mm:ss".
	formatted := fmt.Sprintf("%s.000000", d.OrderDate)

	validated, err := validation.ValidateTimeFormat(formatted)
	if err != nil {
		s.log.Warn(err.Error())
		return nil, err
	}

	orderDate, err := validation.ParseTimestamp(validated)
	if err != nil {
		s.log.Warn(err.Error())
		return nil, err
	}

	nowPlayingID, err := validation.ValidateID(d.NowPlayingID, "nowPlayingId")
	if err != nil {
		return nil, err
	}

	exists, err := s.nowPlayingRepo.ExistsByID(ctx, nowPlayingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		errorMsg := apperror.NotFoundMessage("now playing", "id", d.NowPlayingID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	for _, ticket := range d.Tickets {
		if ticket.ID != "" {
			errorMsg := apperror.IllegalParameter("tickets.id")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}

		if ticket.Seat == "" {
			errorMsg := apperror.MissingRequiredField("tickets.seat")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}

		if _, err := validation.ValidateSeatFormat(ticket.Seat); err != nil {
			s.log.Warn(err.Error(), zap.String("seat", ticket.Seat))
			return nil, err
		}
	}

	unitPrice := s.config.Order.TicketPrice
	subtotal := unitPrice * float64(len(d.Tickets))
	totalPrice := subtotal

	var couponID *int64
	if d.CouponCode != "" {
		coupon, err := s.couponRepo.FindByCode(ctx, d.CouponCode)
		if err != nil {
			return nil, err
		}
		if coupon == nil {
			errorMsg := apperror.NotFoundMessage("coupon", "code", d.CouponCode)
			s.log.Warn(errorMsg)
			return nil, apperror.NewConflictWithStatus(errorMsg, 404)
		}

		couponID = &coupon.ID
		totalPrice = subtotal - (float64(coupon.Percentage)/100.0)*subtotal
	}

	invoice := &entity.Invoice{
		Username:     d.Username,
		OrderDate:    orderDate,
		NowPlayingID: nowPlayingID,
		Paid:         false,
		TotalPrice:   totalPrice,
		CouponID:     couponID,
	}

	invoiceID, err := s.invoiceRepo.Create(ctx, invoice)
	if err != nil {
		return nil, err
	}
	invoice.ID = invoiceID

	for _, ticketDto := range d.Tickets {
		ticket := &entity.Ticket{
			Price:     unitPrice,
			Seat:      ticketDto.Seat,
			InvoiceID: invoiceID,
		}

		ticketID, err := s.ticketRepo.Create(ctx, ticket)
		if err != nil {
			return nil, err
		}

		ticket.ID = ticketID
		invoice.Tickets = append(invoice.Tickets, *ticket)
	}

	s.log.Info(apperror.EntityCreated("invoice", strconv.FormatInt(invoiceID, 10)))

	result := s.toDto(ctx, invoice)
	return &result, nil
}

func (s *invoiceService) Patch(ctx context.Context, paramID string, body []byte) (*dto.InvoiceDto, error) {
	invoice, err := s.findInvoice(ctx, paramID)
	if err != nil {
		return nil, err
	}

	fields, err := decodePatch(s.log, body)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["paid"]; ok {
		var paid bool
		if err := json.Unmarshal(raw, &paid); err != nil {
			errorMsg := apperror.UnableToParse("paid")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}

		if err := s.invoiceRepo.SetPaid(ctx, invoice.ID, paid); err != nil {
			return nil, err
		}
		invoice.Paid = paid

		s.log.Info(apperror.EntityFieldUpdated("invoice", paramID, "paid"))
	}

	tickets, err := s.ticketRepo.FindByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Tickets = tickets

	result := s.toDto(ctx, invoice)
	return &result, nil
}

// Delete removes the invoice together with its tickets.
func (s *invoiceService) Delete(ctx context.Context, paramID string) (string, error) {
	invoice, err := s.findInvoice(ctx, paramID)
	if err != nil {
		return "", err
	}

	if err := s.ticketRepo.DeleteByInvoiceID(ctx, invoice.ID); err != nil {
		return "", err
	}

	if err := s.invoiceRepo.Delete(ctx, invoice.ID); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("invoice", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("invoice", paramID))
	return paramID, nil
}

func (s *invoiceService) findInvoice(ctx context.Context, paramID string) (*entity.Invoice, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		errorMsg := apperror.NotFoundMessage("invoice", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	return invoice, nil
}

// toDto resolves the coupon reference back to its code on the way out.
func (s *invoiceService) toDto(ctx context.Context, invoice *entity.Invoice) dto.InvoiceDto {
	result := converter.InvoiceToDto(invoice, true)

	if invoice.CouponID != nil {
		coupon, err := s.couponRepo.FindByID(ctx, *invoice.CouponID)
		if err == nil && coupon != nil {
			result.CouponCode = coupon.Code
		}
	}

	return result
}
