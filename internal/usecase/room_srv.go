package usecase

import (
	"context"
	"encoding/json"
	"strconv"

	"cinema-platform/internal/converter"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/validation"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomService interface {
	GetAllByCinema(ctx context.Context, paramCinemaID string) ([]dto.RoomDto, error)
	GetByID(ctx context.Context, paramCinemaID, paramID string) (*dto.RoomDto, error)
	Create(ctx context.Context, paramCinemaID string, d dto.RoomDto) (string, error)
	Update(ctx context.Context, paramCinemaID, paramID string, d dto.RoomDto) (string, error)
	Patch(ctx context.Context, paramCinemaID, paramID string, body []byte) (*dto.RoomDto, error)
	Delete(ctx context.Context, paramCinemaID, paramID string) (string, error)
}

type roomService struct {
	roomRepo   repository.RoomRepository
	cinemaRepo repository.CinemaRepository
	log        *zap.Logger
}

func NewRoomService(roomRepo repository.RoomRepository, cinemaRepo repository.CinemaRepository, log *zap.Logger) RoomService {
	return &roomService{
		roomRepo:   roomRepo,
		cinemaRepo: cinemaRepo,
		log:        log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetAllByCinema(ctx context.Context, paramCinemaID string) ([]dto.RoomDto, error) {
	cinemaID, err := s.resolveCinema(ctx, paramCinemaID)
	if err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.FindAllByCinemaID(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	return converter.RoomListToDtoList(rooms), nil
}

func (s *roomService) GetByID(ctx context.Context, paramCinemaID, paramID string) (*dto.RoomDto, error) {
	cinemaID, err := s.resolveCinema(ctx, paramCinemaID)
	if err != nil {
		return nil, err
	}

	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByIDAndCinemaID(ctx, id, cinemaID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		errorMsg := apperror.NotFoundMessage("room", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	result := converter.RoomToDto(room)
	return &result, nil
}

func (s *roomService) Create(ctx context.Context, paramCinemaID string, d dto.RoomDto) (string, error) {
	cinemaID, err := s.resolveCinema(ctx, paramCinemaID)
	if err != nil {
		return "", err
	}

	if d.ID != "" {
		errorMsg := apperror.IllegalParameter("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if err := requireFields(s.log, map[string]bool{
		"name":  d.Name == "",
		"seats": len(d.Seats) == 0,
	}, "name", "seats"); err != nil {
		return "", err
	}

	if err := s.validateSeats(d.Seats); err != nil {
		return "", err
	}

	exists, err := s.roomRepo.ExistsByCinemaIDAndName(ctx, cinemaID, d.Name)
	if err != nil {
		return "", err
	}
	if exists {
		errorMsg := apperror.ResourceAlreadyExists("room", "name", d.Name)
		s.log.Warn(errorMsg)
		return "", apperror.NewConflict(errorMsg)
	}

	room := converter.RoomToEntity(d)
	room.CinemaID = cinemaID

	id, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		return "", err
	}

	idStr := strconv.FormatInt(id, 10)
	s.log.Info(apperror.EntityCreated("room", idStr))

	return idStr, nil
}

func (s *roomService) Update(ctx context.Context, paramCinemaID, paramID string, d dto.RoomDto) (string, error) {
	cinemaID, err := s.resolveCinema(ctx, paramCinemaID)
	if err != nil {
		return "", err
	}

	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := requireFields(s.log, map[string]bool{
		"id":    d.ID == "",
		"name":  d.Name == "",
		"seats": len(d.Seats) == 0,
	}, "id", "name", "seats"); err != nil {
		return "", err
	}

	if d.ID != paramID {
		errorMsg := apperror.NotMatchingIds("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidationWithStatus(errorMsg, 409)
	}

	if err := s.validateSeats(d.Seats); err != nil {
		return "", err
	}

	room, err := s.roomRepo.FindByIDAndCinemaID(ctx, id, cinemaID)
	if err != nil {
		return "", err
	}
	if room == nil {
		errorMsg := apperror.NotFoundMessage("room", "id", paramID)
		s.log.Warn(errorMsg)
		return "", apperror.NewNotFound(errorMsg)
	}

	if err := s.checkRename(ctx, cinemaID, room.Name, d.Name); err != nil {
		return "", err
	}

	room.Name = d.Name
	room.Seats = d.Seats

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return "", err
	}

	s.log.Info(apperror.EntityUpdated("room", paramID))
	return paramID, nil
}

func (s *roomService) Patch(ctx context.Context, paramCinemaID, paramID string, body []byte) (*dto.RoomDto, error) {
	cinemaID, err := s.resolveCinema(ctx, paramCinemaID)
	if err != nil {
		return nil, err
	}

	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByIDAndCinemaID(ctx, id, cinemaID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		errorMsg := apperror.NotFoundMessage("room", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	fields, err := decodePatch(s.log, body)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["name"]; ok {
		previous := room.Name
		if err := patchString(s.log, raw, "name", &room.Name); err != nil {
			return nil, err
		}
		if err := s.checkRename(ctx, cinemaID, previous, room.Name); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["seats"]; ok {
		var seats []string
		if err := json.Unmarshal(raw, &seats); err != nil {
			errorMsg := apperror.UnableToParse("seats")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}

		if err := s.validateSeats(seats); err != nil {
			return nil, err
		}
		room.Seats = seats
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info(apperror.EntityUpdated("room", paramID))

	result := converter.RoomToDto(room)
	return &result, nil
}

func (s *roomService) Delete(ctx context.Context, paramCinemaID, paramID string) (string, error) {
	cinemaID, err := s.resolveCinema(ctx, paramCinemaID)
	if err != nil {
		return "", err
	}

	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	room, err := s.roomRepo.FindByIDAndCinemaID(ctx, id, cinemaID)
	if err != nil {
		return "", err
	}
	if room == nil {
		errorMsg := apperror.NotFoundMessage("room", "id", paramID)
		s.log.Warn(errorMsg)
		return "", apperror.NewNotFound(errorMsg)
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("room", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("room", paramID))
	return paramID, nil
}

// checkRename guards the name-per-cinema uniqueness when a room changes name.
func (s *roomService) checkRename(ctx context.Context, cinemaID int64, current, next string) error {
	if next == current {
		return nil
	}

	exists, err := s.roomRepo.ExistsByCinemaIDAndName(ctx, cinemaID, next)
	if err != nil {
		return err
	}
	if exists {
		errorMsg := apperror.ResourceAlreadyExists("room", "name", next)
		s.log.Warn(errorMsg)
		return apperror.NewConflict(errorMsg)
	}

	return nil
}

// resolveCinema validates the path cinema id and checks the cinema exists.
func (s *roomService) resolveCinema(ctx context.Context, paramCinemaID string) (int64, error) {
	cinemaID, err := validation.ValidateID(paramCinemaID, "cinemaId")
	if err != nil {
		return 0, err
	}

	exists, err := s.cinemaRepo.ExistsByID(ctx, cinemaID)
	if err != nil {
		return 0, err
	}
	if !exists {
		errorMsg := apperror.NotFoundMessage("cinema", "id", paramCinemaID)
		s.log.Warn(errorMsg)
		return 0, apperror.NewNotFound(errorMsg)
	}

	return cinemaID, nil
}

func (s *roomService) validateSeats(seats []string) error {
	for _, seat := range seats {
		if _, err := validation.ValidateSeatFormat(seat); err != nil {
			s.log.Warn(apperror.InvalidSeatFormat(), zap.String("seat", seat))
			return err
		}
	}
	return nil
}
