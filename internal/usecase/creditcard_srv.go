package usecase

import (
	"context"
	"strconv"

	"cinema-platform/internal/converter"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/validation"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CreditCardService interface {
	GetByUsername(ctx context.Context, username string) ([]dto.CreditCardDto, error)
	GetByID(ctx context.Context, paramID string) (*dto.CreditCardDto, error)
	Create(ctx context.Context, d dto.CreditCardDto) (string, error)
	Delete(ctx context.Context, paramID string) (string, error)
}

type creditCardService struct {
	creditCardRepo repository.CreditCardRepository
	userRepo       repository.UserRepository
	log            *zap.Logger
}

func NewCreditCardService(creditCardRepo repository.CreditCardRepository, userRepo repository.UserRepository, log *zap.Logger) CreditCardService {
	return &creditCardService{
		creditCardRepo: creditCardRepo,
		userRepo:       userRepo,
		log:            log.With(zap.String("service", "creditcard")),
	}
}

func (s *creditCardService) GetByUsername(ctx context.Context, username string) ([]dto.CreditCardDto, error) {
	if username == "" {
		errorMsg := apperror.MissingRequiredField("username")
		s.log.Warn(errorMsg)
		return nil, apperror.NewUserInputValidation(errorMsg)
	}

	cards, err := s.creditCardRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return converter.CreditCardListToDtoList(cards), nil
}

func (s *creditCardService) GetByID(ctx context.Context, paramID string) (*dto.CreditCardDto, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	card, err := s.creditCardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		errorMsg := apperror.NotFoundMessage("credit card", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	result := converter.CreditCardToDto(card)
	return &result, nil
}

func (s *creditCardService) Create(ctx context.Context, d dto.CreditCardDto) (string, error) {
	if d.ID != "" {
		errorMsg := apperror.IllegalParameter("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if err := requireFields(s.log, map[string]bool{
		"cardNumber":     d.CardNumber == "",
		"expirationDate": d.ExpirationDate == "",
		"cvc":            d.CVC == nil,
		"username":       d.Username == "",
	}, "cardNumber", "expirationDate", "cvc", "username"); err != nil {
		return "", err
	}

	userExists, err := s.userRepo.ExistsByUsername(ctx, d.Username)
	if err != nil {
		return "", err
	}
	if !userExists {
		errorMsg := apperror.NotFoundMessage("user", "username", d.Username)
		s.log.Warn(errorMsg)
		return "", apperror.NewNotFound(errorMsg)
	}

	exists, err := s.creditCardRepo.ExistsByCardNumber(ctx, d.CardNumber)
	if err != nil {
		return "", err
	}
	if exists {
		errorMsg := apperror.ResourceAlreadyExists("credit card", "cardNumber", d.CardNumber)
		s.log.Warn(errorMsg)
		return "", apperror.NewConflict(errorMsg)
	}

	id, err := s.creditCardRepo.Create(ctx, converter.CreditCardToEntity(d))
	if err != nil {
		return "", err
	}

	idStr := strconv.FormatInt(id, 10)
	s.log.Info(apperror.EntityCreated("credit card", idStr))

	return idStr, nil
}

func (s *creditCardService) Delete(ctx context.Context, paramID string) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := s.creditCardRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("credit card", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("credit card", paramID))
	return paramID, nil
}
