package usecase

import (
	"context"
	"net/http"
	"time"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/utils"
	"cinema-platform/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionTTL = 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	log         *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, log *zap.Logger) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		log:         log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		errorMsg := apperror.ResourceAlreadyExists("user", "username", req.Username)
		s.log.Warn(errorMsg)
		return nil, apperror.NewConflict(errorMsg)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if req.DateOfBirth != "" {
		dateOfBirth := req.DateOfBirth
		user.DateOfBirth = &dateOfBirth
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(apperror.EntityCreated("user", req.Username))

	return s.openSession(ctx, user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" || !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Login rejected", zap.String("username", req.Username))
		return nil, apperror.NewUserInputValidationWithStatus("invalid username or password", http.StatusUnauthorized)
	}

	return s.openSession(ctx, user)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Revoke(ctx, token)
}

// Authenticate resolves a session token back to its user. Expired and
// unknown tokens both come back as unauthorized.
func (s *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	session, err := s.sessionRepo.FindValidSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewUserInputValidationWithStatus("invalid or expired session", http.StatusUnauthorized)
	}

	user, err := s.userRepo.FindByUsername(ctx, session.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewUserInputValidationWithStatus("invalid or expired session", http.StatusUnauthorized)
	}

	return user, nil
}

func (s *authService) openSession(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	now := time.Now().UTC()
	session := &entity.Session{
		Username:  user.Username,
		Token:     uuid.New(),
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Username:  user.Username,
		Role:      string(user.Role),
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt.Format(validation.TimestampLayout),
	}, nil
}
