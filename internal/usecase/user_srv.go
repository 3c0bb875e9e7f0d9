package usecase

import (
	"context"
	"encoding/json"
	"time"

	"cinema-platform/internal/converter"
	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserService interface {
	Get(ctx context.Context, username string) ([]dto.UserDto, error)
	GetByUsername(ctx context.Context, username string) (*dto.UserDto, error)
	Create(ctx context.Context, d dto.UserDto) (string, error)
	Update(ctx context.Context, paramUsername string, d dto.UserDto) (string, error)
	Patch(ctx context.Context, paramUsername string, body []byte) (*dto.UserDto, error)
	Delete(ctx context.Context, username string) (string, error)
}

type userService struct {
	userRepo       repository.UserRepository
	creditCardRepo repository.CreditCardRepository
	sessionRepo    repository.SessionRepository
	log            *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, creditCardRepo repository.CreditCardRepository, sessionRepo repository.SessionRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo:       userRepo,
		creditCardRepo: creditCardRepo,
		sessionRepo:    sessionRepo,
		log:            log.With(zap.String("service", "user")),
	}
}

func (s *userService) Get(ctx context.Context, username string) ([]dto.UserDto, error) {
	var usernameFilter *string
	if username != "" {
		usernameFilter = &username
	}

	users, err := s.userRepo.FindAll(ctx, usernameFilter)
	if err != nil {
		return nil, err
	}

	return converter.UserListToDtoList(users), nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*dto.UserDto, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	result := converter.UserToDto(user)
	return &result, nil
}

// Create registers a new user. The password is optional here since accounts
// can also arrive through the registration queue already verified elsewhere.
func (s *userService) Create(ctx context.Context, d dto.UserDto) (string, error) {
	if err := requireFields(s.log, map[string]bool{
		"username": d.Username == "",
		"name":     d.Name == "",
		"email":    d.Email == "",
	}, "username", "name", "email"); err != nil {
		return "", err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, d.Username)
	if err != nil {
		return "", err
	}
	if exists {
		errorMsg := apperror.ResourceAlreadyExists("user", "username", d.Username)
		s.log.Warn(errorMsg)
		return "", apperror.NewConflict(errorMsg)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Username:  d.Username,
		Name:      d.Name,
		Email:     d.Email,
		Role:      entity.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if d.DateOfBirth != "" {
		dateOfBirth := d.DateOfBirth
		user.DateOfBirth = &dateOfBirth
	}

	if d.Password != "" {
		hash, err := utils.HashPassword(d.Password)
		if err != nil {
			return "", err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	s.log.Info(apperror.EntityCreated("user", d.Username))
	return d.Username, nil
}

func (s *userService) Update(ctx context.Context, paramUsername string, d dto.UserDto) (string, error) {
	if err := requireFields(s.log, map[string]bool{
		"username": d.Username == "",
		"name":     d.Name == "",
		"email":    d.Email == "",
	}, "username", "name", "email"); err != nil {
		return "", err
	}

	if d.Username != paramUsername {
		errorMsg := apperror.NotMatchingIds("username")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidationWithStatus(errorMsg, 409)
	}

	user, err := s.findUser(ctx, paramUsername)
	if err != nil {
		return "", err
	}

	user.Name = d.Name
	user.Email = d.Email
	user.UpdatedAt = time.Now().UTC()

	if d.DateOfBirth != "" {
		dateOfBirth := d.DateOfBirth
		user.DateOfBirth = &dateOfBirth
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("user", "username", paramUsername)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityUpdated("user", paramUsername))
	return paramUsername, nil
}

func (s *userService) Patch(ctx context.Context, paramUsername string, body []byte) (*dto.UserDto, error) {
	user, err := s.findUser(ctx, paramUsername)
	if err != nil {
		return nil, err
	}

	fields, err := decodePatch(s.log, body)
	if err != nil {
		return nil, err
	}

	// The username is the identifier and can not be rewritten.
	if _, ok := fields["username"]; ok {
		errorMsg := apperror.IllegalParameter("username")
		s.log.Warn(errorMsg)
		return nil, apperror.NewUserInputValidation(errorMsg)
	}

	if raw, ok := fields["name"]; ok {
		if err := patchString(s.log, raw, "name", &user.Name); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["email"]; ok {
		if err := patchString(s.log, raw, "email", &user.Email); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["dateOfBirth"]; ok {
		var dateOfBirth string
		if err := json.Unmarshal(raw, &dateOfBirth); err != nil {
			errorMsg := apperror.UnableToParse("dateOfBirth")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}
		user.DateOfBirth = &dateOfBirth
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(apperror.EntityUpdated("user", paramUsername))

	result := converter.UserToDto(user)
	return &result, nil
}

// Delete removes the user together with their credit cards and sessions.
func (s *userService) Delete(ctx context.Context, username string) (string, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return "", err
	}

	cards, err := s.creditCardRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		return "", err
	}
	for _, card := range cards {
		if err := s.creditCardRepo.Delete(ctx, card.ID); err != nil {
			return "", err
		}
	}

	if err := s.sessionRepo.RevokeAllUserSessions(ctx, user.Username); err != nil {
		return "", err
	}

	if err := s.userRepo.Delete(ctx, user.Username); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("user", "username", username)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("user", username))
	return username, nil
}

func (s *userService) findUser(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		errorMsg := apperror.MissingRequiredField("username")
		s.log.Warn(errorMsg)
		return nil, apperror.NewUserInputValidation(errorMsg)
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		errorMsg := apperror.NotFoundMessage("user", "username", username)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	return user, nil
}
