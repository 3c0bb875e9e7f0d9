package usecase

import (
	"context"
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

type CinemaService interface {
	Get(ctx context.Context, name string, offset, limit int) ([]dto.CinemaDto, error)
	GetByID(ctx context.Context, paramID string) (*dto.CinemaDto, error)
	Create(ctx context.Context, d dto.CinemaDto) (string, error)
	Update(ctx context.Context, paramID string, d dto.CinemaDto) (string, error)
	Patch(ctx context.Context, paramID string, body []byte) (*dto.CinemaDto, error)
	Delete(ctx context.Context, paramID string) (string, error)
}

type cinemaService struct {
	cinemaRepo repository.CinemaRepository
	roomRepo   repository.RoomRepository
	log        *zap.Logger
}

func NewCinemaService(cinemaRepo repository.CinemaRepository, roomRepo repository.RoomRepository, log *zap.Logger) CinemaService {
	return &cinemaService{
		cinemaRepo: cinemaRepo,
		roomRepo:   roomRepo,
		log:        log.With(zap.String("service", "cinema")),
	}
}

// Get lists cinemas, optionally filtered by a name fragment. Rooms are not
// expanded on list responses.
func (s *cinemaService) Get(ctx context.Context, name string, offset, limit int) ([]dto.CinemaDto, error) {
	if err := validation.ValidateLimitAndOffset(offset, limit); err != nil {
		s.log.Warn(err.Error())
		return nil, err
	}

	var nameFilter *string
	if name != "" {
		nameFilter = &name
	}

	cinemas, err := s.cinemaRepo.FindAll(ctx, nameFilter, offset, limit)
	if err != nil {
		return nil, err
	}

	return converter.CinemaListToDtoList(cinemas, false), nil
}

func (s *cinemaService) GetByID(ctx context.Context, paramID string) (*dto.CinemaDto, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	cinema, err := s.cinemaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cinema == nil {
		errorMsg := apperror.NotFoundMessage("cinema", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	rooms, err := s.roomRepo.FindAllByCinemaID(ctx, id)
	if err != nil {
		return nil, err
	}
	cinema.Rooms = rooms

	result := converter.CinemaToDto(cinema, true)
	return &result, nil
}

func (s *cinemaService) Create(ctx context.Context, d dto.CinemaDto) (string, error) {
	if d.ID != "" {
		errorMsg := apperror.IllegalParameter("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if len(d.Rooms) > 0 {
		errorMsg := apperror.IllegalParameter("rooms")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if err := requireFields(s.log, map[string]bool{
		"name":     d.Name == "",
		"location": d.Location == "",
	}, "name", "location"); err != nil {
		return "", err
	}

	cinema := converter.CinemaToEntity(d)

	id, err := s.cinemaRepo.Create(ctx, cinema)
	if err != nil {
		return "", err
	}

	idStr := strconv.FormatInt(id, 10)
	s.log.Info(apperror.EntityCreated("cinema", idStr))

	return idStr, nil
}

func (s *cinemaService) Update(ctx context.Context, paramID string, d dto.CinemaDto) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := requireFields(s.log, map[string]bool{
		"id":       d.ID == "",
		"name":     d.Name == "",
		"location": d.Location == "",
	}, "id", "name", "location"); err != nil {
		return "", err
	}

	if d.ID != paramID {
		errorMsg := apperror.NotMatchingIds("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidationWithStatus(errorMsg, 409)
	}

	cinema := &entity.Cinema{
		ID:       id,
		Name:     d.Name,
		Location: d.Location,
	}

	if err := s.cinemaRepo.Update(ctx, cinema); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("cinema", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityUpdated("cinema", paramID))
	return paramID, nil
}

func (s *cinemaService) Patch(ctx context.Context, paramID string, body []byte) (*dto.CinemaDto, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	cinema, err := s.cinemaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cinema == nil {
		errorMsg := apperror.NotFoundMessage("cinema", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	fields, err := decodePatch(s.log, body)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["name"]; ok {
		if err := patchString(s.log, raw, "name", &cinema.Name); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["location"]; ok {
		if err := patchString(s.log, raw, "location", &cinema.Location); err != nil {
			return nil, err
		}
	}

	if err := s.cinemaRepo.Update(ctx, cinema); err != nil {
		return nil, err
	}

	s.log.Info(apperror.EntityUpdated("cinema", paramID))

	result := converter.CinemaToDto(cinema, false)
	return &result, nil
}

// Delete removes the cinema together with its rooms.
func (s *cinemaService) Delete(ctx context.Context, paramID string) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	exists, err := s.cinemaRepo.ExistsByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !exists {
		errorMsg := apperror.NotFoundMessage("cinema", "id", paramID)
		s.log.Warn(errorMsg)
		return "", apperror.NewNotFound(errorMsg)
	}

	if err := s.roomRepo.DeleteByCinemaID(ctx, id); err != nil {
		return "", err
	}

	if err := s.cinemaRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("cinema", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("cinema", paramID))
	return paramID, nil
}
