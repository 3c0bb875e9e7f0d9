package usecase

import (
	"context"
	"encoding/json"
	"strconv"

	"cinema-platform/internal/converter"
	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/validation"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketService interface {
	Get(ctx context.Context, offset, limit int) ([]dto.TicketDto, error)
	GetByID(ctx context.Context, paramID string) (*dto.TicketDto, error)
	Create(ctx context.Context, d dto.TicketDto) (string, error)
	Update(ctx context.Context, paramID string, d dto.TicketDto) (string, error)
	Patch(ctx context.Context, paramID string, body []byte) (*dto.TicketDto, error)
	Delete(ctx context.Context, paramID string) (string, error)
}

type ticketService struct {
	ticketRepo repository.TicketRepository
	log        *zap.Logger
}

func NewTicketService(ticketRepo repository.TicketRepository, log *zap.Logger) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		log:        log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) Get(ctx context.Context, offset, limit int) ([]dto.TicketDto, error) {
	if err := validation.ValidateLimitAndOffset(offset, limit); err != nil {
		s.log.Warn(err.Error())
		return nil, err
	}

	tickets, err := s.ticketRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return converter.TicketListToDtoList(tickets), nil
}

func (s *ticketService) GetByID(ctx context.Context, paramID string) (*dto.TicketDto, error) {
	ticket, err := s.findTicket(ctx, paramID)
	if err != nil {
		return nil, err
	}

	result := converter.TicketToDto(ticket)
	return &result, nil
}

func (s *ticketService) Create(ctx context.Context, d dto.TicketDto) (string, error) {
	if d.ID != "" {
		errorMsg := apperror.IllegalParameter("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if err := requireFields(s.log, map[string]bool{
		"price":     d.Price == nil,
		"seat":      d.Seat == "",
		"invoiceId": d.InvoiceID == "",
	}, "price", "seat", "invoiceId"); err != nil {
		return "", err
	}

	if err := validatePrice(s.log, *d.Price); err != nil {
		return "", err
	}

	if _, err := validation.ValidateSeatFormat(d.Seat); err != nil {
		s.log.Warn(err.Error(), zap.String("seat", d.Seat))
		return "", err
	}

	if _, err := validation.ValidateID(d.InvoiceID, "invoiceId"); err != nil {
		return "", err
	}

	id, err := s.ticketRepo.Create(ctx, converter.TicketToEntity(d))
	if err != nil {
		return "", err
	}

	idStr := strconv.FormatInt(id, 10)
	s.log.Info(apperror.EntityCreated("ticket", idStr))

	return idStr, nil
}

func (s *ticketService) Update(ctx context.Context, paramID string, d dto.TicketDto) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := requireFields(s.log, map[string]bool{
		"id":        d.ID == "",
		"price":     d.Price == nil,
		"seat":      d.Seat == "",
		"invoiceId": d.InvoiceID == "",
	}, "id", "price", "seat", "invoiceId"); err != nil {
		return "", err
	}

	if d.ID != paramID {
		errorMsg := apperror.NotMatchingIds("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidationWithStatus(errorMsg, 409)
	}

	if err := validatePrice(s.log, *d.Price); err != nil {
		return "", err
	}

	if _, err := validation.ValidateSeatFormat(d.Seat); err != nil {
		s.log.Warn(err.Error(), zap.String("seat", d.Seat))
		return "", err
	}

	invoiceID, err := validation.ValidateID(d.InvoiceID, "invoiceId")
	if err != nil {
		return "", err
	}

	ticket := &entity.Ticket{
		ID:        id,
		Price:     *d.Price,
		Seat:      d.Seat,
		InvoiceID: invoiceID,
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("ticket", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityUpdated("ticket", paramID))
	return paramID, nil
}

func (s *ticketService) Patch(ctx context.Context, paramID string, body []byte) (*dto.TicketDto, error) {
	ticket, err := s.findTicket(ctx, paramID)
	if err != nil {
		return nil, err
	}

	fields, err := decodePatch(s.log, body)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["seat"]; ok {
		var seat string
		if err := json.Unmarshal(raw, &seat); err != nil {
			errorMsg := apperror.UnableToParse("seat")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}

		if _, err := validation.ValidateSeatFormat(seat); err != nil {
			s.log.Warn(err.Error(), zap.String("seat", seat))
			return nil, err
		}
		ticket.Seat = seat
	}

	if raw, ok := fields["price"]; ok {
		var price float64
		if err := json.Unmarshal(raw, &price); err != nil {
			errorMsg := apperror.UnableToParse("price")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}
		if err := validatePrice(s.log, price); err != nil {
			return nil, err
		}
		ticket.Price = price
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.log.Info(apperror.EntityUpdated("ticket", paramID))

	result := converter.TicketToDto(ticket)
	return &result, nil
}

func (s *ticketService) Delete(ctx context.Context, paramID string) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := s.ticketRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("ticket", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("ticket", paramID))
	return paramID, nil
}

func validatePrice(log *zap.Logger, price float64) error {
	if price < 0 {
		errorMsg := apperror.PriceNegative()
		log.Warn(errorMsg, zap.Float64("price", price))
		return apperror.NewUserInputValidation(errorMsg)
	}
	return nil
}

func (s *ticketService) findTicket(ctx context.Context, paramID string) (*entity.Ticket, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		errorMsg := apperror.NotFoundMessage("ticket", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	return ticket, nil
}
