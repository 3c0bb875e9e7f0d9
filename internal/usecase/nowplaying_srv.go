package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cinema-platform/internal/converter"
	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/validation"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NowPlayingService interface {
	Get(ctx context.Context, title, date string) ([]dto.NowPlayingDto, error)
	GetByID(ctx context.Context, paramID string) (*dto.NowPlayingDto, error)
	Create(ctx context.Context, d dto.NowPlayingDto) (string, error)
	Delete(ctx context.Context, paramID string) (string, error)
}

type nowPlayingService struct {
	nowPlayingRepo repository.NowPlayingRepository
	movieRepo      repository.MovieRepository
	log            *zap.Logger
}

func NewNowPlayingService(nowPlayingRepo repository.NowPlayingRepository, movieRepo repository.MovieRepository, log *zap.Logger) NowPlayingService {
	return &nowPlayingService{
		nowPlayingRepo: nowPlayingRepo,
		movieRepo:      movieRepo,
		log:            log.With(zap.String("service", "nowplaying")),
	}
}

// Get lists screenings filtered on a movie title fragment or a calendar day.
// The two filters are mutually exclusive.
func (s *nowPlayingService) Get(ctx context.Context, title, date string) ([]dto.NowPlayingDto, error) {
	if title != "" && date != "" {
		errorMsg := apperror.InvalidFieldCombination("title and date can not be combined")
		s.log.Warn(errorMsg)
		return nil, apperror.NewUserInputValidation(errorMsg)
	}

	var (
		screenings []*entity.NowPlaying
		err        error
	)

	switch {
	case title != "":
		screenings, err = s.nowPlayingRepo.FindByMovieTitleContains(ctx, title)
	case date != "":
		day, parseErr := time.Parse("2006-01-02", date)
		if parseErr != nil {
			errorMsg := apperror.UnableToParse("date")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}
		screenings, err = s.nowPlayingRepo.FindByTimeBetween(ctx, day, day.Add(24*time.Hour))
	default:
		screenings, err = s.nowPlayingRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return converter.NowPlayingListToDtoList(screenings), nil
}

func (s *nowPlayingService) GetByID(ctx context.Context, paramID string) (*dto.NowPlayingDto, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	screening, err := s.nowPlayingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if screening == nil {
		errorMsg := apperror.NotFoundMessage("now playing", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	result := converter.NowPlayingToDto(screening)
	return &result, nil
}

func (s *nowPlayingService) Create(ctx context.Context, d dto.NowPlayingDto) (string, error) {
	if d.ID != "" {
		errorMsg := apperror.IllegalParameter("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if err := requireFields(s.log, map[string]bool{
		"movieId": d.MovieID == "",
		"time":    d.TimeWhenMoviePlay == "",
	}, "movieId", "time"); err != nil {
		return "", err
	}

	movieID, err := validation.ValidateID(d.MovieID, "movieId")
	if err != nil {
		return "", err
	}

	exists, err := s.movieRepo.ExistsByID(ctx, movieID)
	if err != nil {
		return "", err
	}
	if !exists {
		errorMsg := apperror.NotFoundMessage("movie", "id", d.MovieID)
		s.log.Warn(errorMsg)
		return "", apperror.NewNotFound(errorMsg)
	}

	// Client input format is "yyyy-MM-dd HH:mm:ss".
	formatted := fmt.Sprintf("%s.000000", d.TimeWhenMoviePlay)

	validated, err := validation.ValidateTimeFormat(formatted)
	if err != nil {
		s.log.Warn(err.Error())
		return "", err
	}

	playTime, err := validation.ParseTimestamp(validated)
	if err != nil {
		s.log.Warn(err.Error())
		return "", err
	}

	screening := &entity.NowPlaying{
		MovieID:           movieID,
		TimeWhenMoviePlay: playTime,
	}

	id, err := s.nowPlayingRepo.Create(ctx, screening)
	if err != nil {
		return "", err
	}

	idStr := strconv.FormatInt(id, 10)
	s.log.Info(apperror.EntityCreated("now playing", idStr))

	return idStr, nil
}

func (s *nowPlayingService) Delete(ctx context.Context, paramID string) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := s.nowPlayingRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("now playing", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("now playing", paramID))
	return paramID, nil
}
