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
	"cinema-platform/pkg/utils"
	"cinema-platform/pkg/validation"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieService interface {
	Get(ctx context.Context, title string, offset, limit int) ([]dto.MovieDto, error)
	GetByID(ctx context.Context, paramID string) (*dto.MovieDto, error)
	Create(ctx context.Context, d dto.MovieDto) (string, error)
	Update(ctx context.Context, paramID string, d dto.MovieDto) (string, error)
	Patch(ctx context.Context, paramID string, body []byte) (*dto.MovieDto, error)
	Delete(ctx context.Context, paramID string) (string, error)
}

type movieService struct {
	movieRepo      repository.MovieRepository
	genreRepo      repository.GenreRepository
	movieGenreRepo repository.MovieGenreRepository
	log            *zap.Logger
}

func NewMovieService(movieRepo repository.MovieRepository, genreRepo repository.GenreRepository, movieGenreRepo repository.MovieGenreRepository, log *zap.Logger) MovieService {
	return &movieService{
		movieRepo:      movieRepo,
		genreRepo:      genreRepo,
		movieGenreRepo: movieGenreRepo,
		log:            log.With(zap.String("service", "movie")),
	}
}

// Get lists movies, optionally filtered on a title fragment. Genres are not
// expanded on list responses.
func (s *movieService) Get(ctx context.Context, title string, offset, limit int) ([]dto.MovieDto, error) {
	if err := validation.ValidateLimitAndOffset(offset, limit); err != nil {
		s.log.Warn(err.Error())
		return nil, err
	}

	var (
		movies []*entity.Movie
		err    error
	)

	if title != "" {
		movies, err = s.movieRepo.FindByTitleContains(ctx, title, offset, limit)
	} else {
		movies, err = s.movieRepo.FindAll(ctx, offset, limit)
	}
	if err != nil {
		return nil, err
	}

	return converter.MovieListToDtoList(movies, false), nil
}

func (s *movieService) GetByID(ctx context.Context, paramID string) (*dto.MovieDto, error) {
	movie, err := s.findMovie(ctx, paramID)
	if err != nil {
		return nil, err
	}

	genres, err := s.movieGenreRepo.FindGenresByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}
	movie.Genres = genres

	result := converter.MovieToDto(movie, true)
	return &result, nil
}

func (s *movieService) Create(ctx context.Context, d dto.MovieDto) (string, error) {
	if d.ID != "" {
		errorMsg := apperror.IllegalParameter("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if d.NowPlayingID != "" {
		errorMsg := apperror.IllegalParameter("nowPlayingId")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if err := requireFields(s.log, map[string]bool{
		"title":         d.Title == "",
		"posterUrl":     d.PosterURL == "",
		"movieDuration": d.MovieDuration == nil,
		"ageLimit":      d.AgeLimit == nil,
	}, "title", "posterUrl", "movieDuration", "ageLimit"); err != nil {
		return "", err
	}

	// Titles are stored capitalized so the uniqueness check below is stable
	// across differently-cased client input.
	d.Title = utils.Capitalize(d.Title)

	exists, err := s.movieRepo.ExistsByTitleAndPosterURL(ctx, d.Title, d.PosterURL)
	if err != nil {
		return "", err
	}
	if exists {
		errorMsg := apperror.ResourceAlreadyExists("movie", "title", d.Title)
		s.log.Warn(errorMsg)
		return "", apperror.NewConflict(errorMsg)
	}

	genreIDs, err := s.resolveGenres(ctx, d.Genre)
	if err != nil {
		return "", err
	}

	movie := converter.MovieToEntity(d)

	id, err := s.movieRepo.Create(ctx, movie)
	if err != nil {
		return "", err
	}

	for _, genreID := range genreIDs {
		if err := s.movieGenreRepo.Attach(ctx, id, genreID); err != nil {
			return "", err
		}
	}

	idStr := strconv.FormatInt(id, 10)
	s.log.Info(apperror.EntityCreated("movie", idStr))

	return idStr, nil
}

func (s *movieService) Update(ctx context.Context, paramID string, d dto.MovieDto) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := requireFields(s.log, map[string]bool{
		"id":            d.ID == "",
		"title":         d.Title == "",
		"posterUrl":     d.PosterURL == "",
		"movieDuration": d.MovieDuration == nil,
		"ageLimit":      d.AgeLimit == nil,
	}, "id", "title", "posterUrl", "movieDuration", "ageLimit"); err != nil {
		return "", err
	}

	if d.ID != paramID {
		errorMsg := apperror.NotMatchingIds("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidationWithStatus(errorMsg, 409)
	}

	movie, err := s.findMovie(ctx, paramID)
	if err != nil {
		return "", err
	}

	movie.Title = utils.Capitalize(d.Title)
	movie.PosterURL = d.PosterURL
	movie.MovieDuration = *d.MovieDuration
	movie.AgeLimit = *d.AgeLimit

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return "", err
	}

	if d.Genre != nil {
		if err := s.replaceGenres(ctx, id, d.Genre); err != nil {
			return "", err
		}
	}

	s.log.Info(apperror.EntityUpdated("movie", paramID))
	return paramID, nil
}

func (s *movieService) Patch(ctx context.Context, paramID string, body []byte) (*dto.MovieDto, error) {
	movie, err := s.findMovie(ctx, paramID)
	if err != nil {
		return nil, err
	}

	fields, err := decodePatch(s.log, body)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["title"]; ok {
		if err := patchString(s.log, raw, "title", &movie.Title); err != nil {
			return nil, err
		}
		movie.Title = utils.Capitalize(movie.Title)
	}

	if raw, ok := fields["posterUrl"]; ok {
		if err := patchString(s.log, raw, "posterUrl", &movie.PosterURL); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["movieDuration"]; ok {
		if err := patchInt(s.log, raw, "movieDuration", &movie.MovieDuration); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["ageLimit"]; ok {
		if err := patchInt(s.log, raw, "ageLimit", &movie.AgeLimit); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["genre"]; ok {
		var genres []dto.GenreDto
		if err := json.Unmarshal(raw, &genres); err != nil {
			errorMsg := apperror.UnableToParse("genre")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}

		if err := s.replaceGenres(ctx, movie.ID, genres); err != nil {
			return nil, err
		}
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}

	genres, err := s.movieGenreRepo.FindGenresByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}
	movie.Genres = genres

	s.log.Info(apperror.EntityUpdated("movie", paramID))

	result := converter.MovieToDto(movie, true)
	return &result, nil
}

// Delete detaches the movie from all its genres before removing the row.
func (s *movieService) Delete(ctx context.Context, paramID string) (string, error) {
	movie, err := s.findMovie(ctx, paramID)
	if err != nil {
		return "", err
	}

	if err := s.movieGenreRepo.DetachByMovieID(ctx, movie.ID); err != nil {
		return "", err
	}

	if err := s.movieRepo.Delete(ctx, movie.ID); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("movie", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("movie", paramID))
	return paramID, nil
}

func (s *movieService) findMovie(ctx context.Context, paramID string) (*entity.Movie, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		errorMsg := apperror.NotFoundMessage("movie", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	return movie, nil
}

// resolveGenres validates every referenced genre id and checks it exists.
func (s *movieService) resolveGenres(ctx context.Context, genres []dto.GenreDto) ([]int64, error) {
	ids := make([]int64, 0, len(genres))

	for _, genre := range genres {
		if genre.ID == "" {
			errorMsg := apperror.MissingRequiredField("genre.id")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}

		id, err := validation.ValidateID(genre.ID, "genre.id")
		if err != nil {
			return nil, err
		}

		exists, err := s.genreRepo.ExistsByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			errorMsg := apperror.NotFoundMessage("genre", "id", genre.ID)
			s.log.Warn(errorMsg)
			return nil, apperror.NewNotFound(errorMsg)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func (s *movieService) replaceGenres(ctx context.Context, movieID int64, genres []dto.GenreDto) error {
	genreIDs, err := s.resolveGenres(ctx, genres)
	if err != nil {
		return err
	}

	if err := s.movieGenreRepo.DetachByMovieID(ctx, movieID); err != nil {
		return err
	}

	for _, genreID := range genreIDs {
		if err := s.movieGenreRepo.Attach(ctx, movieID, genreID); err != nil {
			return err
		}
	}

	return nil
}
