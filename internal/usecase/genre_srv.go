package usecase

import (
	"context"
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

type GenreService interface {
	Get(ctx context.Context, name string, offset, limit int) ([]dto.GenreDto, error)
	GetByID(ctx context.Context, paramID string) (*dto.GenreDto, error)
	Create(ctx context.Context, d dto.GenreDto) (string, error)
	Update(ctx context.Context, paramID string, d dto.GenreDto) (string, error)
	Patch(ctx context.Context, paramID string, body []byte) (*dto.GenreDto, error)
	Delete(ctx context.Context, paramID string) (string, error)
}

type genreService struct {
	genreRepo      repository.GenreRepository
	movieGenreRepo repository.MovieGenreRepository
	log            *zap.Logger
}

func NewGenreService(genreRepo repository.GenreRepository, movieGenreRepo repository.MovieGenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genreRepo:      genreRepo,
		movieGenreRepo: movieGenreRepo,
		log:            log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) Get(ctx context.Context, name string, offset, limit int) ([]dto.GenreDto, error) {
	if err := validation.ValidateLimitAndOffset(offset, limit); err != nil {
		s.log.Warn(err.Error())
		return nil, err
	}

	var (
		genres []*entity.Genre
		err    error
	)

	if name != "" {
		genres, err = s.genreRepo.FindByNameContains(ctx, name, offset, limit)
	} else {
		genres, err = s.genreRepo.FindAll(ctx, offset, limit)
	}
	if err != nil {
		return nil, err
	}

	return converter.GenreListToDtoList(genres, false), nil
}

// GetByID expands the genre with the movies attached to it.
func (s *genreService) GetByID(ctx context.Context, paramID string) (*dto.GenreDto, error) {
	genre, err := s.findGenre(ctx, paramID)
	if err != nil {
		return nil, err
	}

	movies, err := s.movieGenreRepo.FindMoviesByGenreID(ctx, genre.ID)
	if err != nil {
		return nil, err
	}
	genre.Movies = movies

	result := converter.GenreToDto(genre, true)
	return &result, nil
}

func (s *genreService) Create(ctx context.Context, d dto.GenreDto) (string, error) {
	if d.ID != "" {
		errorMsg := apperror.IllegalParameter("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if d.Name == "" {
		errorMsg := apperror.MissingRequiredField("name")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	d.Name = utils.Capitalize(d.Name)

	exists, err := s.genreRepo.ExistsByName(ctx, d.Name)
	if err != nil {
		return "", err
	}
	if exists {
		errorMsg := apperror.ResourceAlreadyExists("genre", "name", d.Name)
		s.log.Warn(errorMsg)
		return "", apperror.NewConflict(errorMsg)
	}

	id, err := s.genreRepo.Create(ctx, converter.GenreToEntity(d))
	if err != nil {
		return "", err
	}

	idStr := strconv.FormatInt(id, 10)
	s.log.Info(apperror.EntityCreated("genre", idStr))

	return idStr, nil
}

func (s *genreService) Update(ctx context.Context, paramID string, d dto.GenreDto) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := requireFields(s.log, map[string]bool{
		"id":   d.ID == "",
		"name": d.Name == "",
	}, "id", "name"); err != nil {
		return "", err
	}

	if d.ID != paramID {
		errorMsg := apperror.NotMatchingIds("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidationWithStatus(errorMsg, 409)
	}

	genre := &entity.Genre{
		ID:   id,
		Name: utils.Capitalize(d.Name),
	}

	if err := s.genreRepo.Update(ctx, genre); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("genre", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityUpdated("genre", paramID))
	return paramID, nil
}

func (s *genreService) Patch(ctx context.Context, paramID string, body []byte) (*dto.GenreDto, error) {
	genre, err := s.findGenre(ctx, paramID)
	if err != nil {
		return nil, err
	}

	fields, err := decodePatch(s.log, body)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["name"]; ok {
		if err := patchString(s.log, raw, "name", &genre.Name); err != nil {
			return nil, err
		}
		genre.Name = utils.Capitalize(genre.Name)
	}

	if err := s.genreRepo.Update(ctx, genre); err != nil {
		return nil, err
	}

	if _, ok := fields["name"]; ok {
		s.log.Info(apperror.EntityFieldUpdated("genre", paramID, "name"))
	}

	result := converter.GenreToDto(genre, false)
	return &result, nil
}

// Delete detaches all movies from the genre before removing it.
func (s *genreService) Delete(ctx context.Context, paramID string) (string, error) {
	genre, err := s.findGenre(ctx, paramID)
	if err != nil {
		return "", err
	}

	if err := s.movieGenreRepo.DetachByGenreID(ctx, genre.ID); err != nil {
		return "", err
	}

	if err := s.genreRepo.Delete(ctx, genre.ID); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("genre", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("genre", paramID))
	return paramID, nil
}

func (s *genreService) findGenre(ctx context.Context, paramID string) (*entity.Genre, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	genre, err := s.genreRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		errorMsg := apperror.NotFoundMessage("genre", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	return genre, nil
}
