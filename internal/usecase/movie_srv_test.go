package usecase_test

import (
	"context"
	"testing"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/dto"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type movieFixture struct {
	service        usecase.MovieService
	movieRepo      *fakeMovieRepo
	movieGenreRepo *fakeMovieGenreRepo
}

// Each fixture comes with one genre (id 1, "Sci-Fi").
func newMovieFixture(t *testing.T) *movieFixture {
	t.Helper()

	movieRepo := newFakeMovieRepo()
	genreRepo := newFakeGenreRepo()
	movieGenreRepo := newFakeMovieGenreRepo(movieRepo, genreRepo)

	_, err := genreRepo.Create(context.Background(), &entity.Genre{Name: "Sci-Fi"})
	assert.NoError(t, err)

	return &movieFixture{
		service:        usecase.NewMovieService(movieRepo, genreRepo, movieGenreRepo, zap.NewNop()),
		movieRepo:      movieRepo,
		movieGenreRepo: movieGenreRepo,
	}
}

func validMovie() dto.MovieDto {
	return dto.MovieDto{
		Title:         "inception",
		PosterURL:     "http://example.com/p.jpg",
		MovieDuration: intPtr(148),
		AgeLimit:      intPtr(12),
		Genre:         []dto.GenreDto{{ID: "1"}},
	}
}

func TestMovieCreate_CapitalizesTitleAndAttachesGenres(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	id, err := f.service.Create(ctx, validMovie())

	assert.NoError(t, err)
	assert.Equal(t, "1", id)

	movie, err := f.service.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "Inception", movie.Title)
	if assert.Len(t, movie.Genre, 1) {
		assert.Equal(t, "Sci-Fi", movie.Genre[0].Name)
	}
}

func TestMovieGet_Pagination(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	for _, title := range []string{"alpha", "beta", "gamma"} {
		request := validMovie()
		request.Title = title
		request.PosterURL = "http://example.com/" + title + ".jpg"
		_, err := f.service.Create(ctx, request)
		assert.NoError(t, err)
	}

	page, err := f.service.Get(ctx, "", 1, 2)
	assert.NoError(t, err)
	if assert.Len(t, page, 2) {
		assert.Equal(t, "Beta", page[0].Title)
		assert.Equal(t, "Gamma", page[1].Title)
	}

	_, err = f.service.Get(ctx, "", -1, 2)
	var validationErr *apperror.UserInputValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestMovieCreate_DuplicateTitleCaseInsensitive(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, validMovie())
	assert.NoError(t, err)

	duplicate := validMovie()
	duplicate.Title = "INCEPTION"

	_, err = f.service.Create(ctx, duplicate)

	var conflict *apperror.ConflictError
	if assert.ErrorAs(t, err, &conflict) {
		assert.Equal(t, "movie with title INCEPTION already exists", conflict.Message)
	}
}

func TestMovieCreate_UnknownGenre(t *testing.T) {
	f := newMovieFixture(t)

	request := validMovie()
	request.Genre = []dto.GenreDto{{ID: "42"}}

	_, err := f.service.Create(context.Background(), request)

	var notFound *apperror.NotFoundError
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "no genre with id 42 found", notFound.Message)
	}
}

func TestMovieCreate_RejectsNowPlayingID(t *testing.T) {
	f := newMovieFixture(t)

	request := validMovie()
	request.NowPlayingID = "3"

	_, err := f.service.Create(context.Background(), request)

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "illegal parameter: nowPlayingId", validationErr.Message)
	}
}

func TestMoviePatch_RejectsID(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	id, err := f.service.Create(ctx, validMovie())
	assert.NoError(t, err)

	_, err = f.service.Patch(ctx, id, []byte(`{"id": "9"}`))

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "illegal parameter: id", validationErr.Message)
	}
}

func TestMoviePatch_CapitalizesTitle(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	id, err := f.service.Create(ctx, validMovie())
	assert.NoError(t, err)

	patched, err := f.service.Patch(ctx, id, []byte(`{"title": "the matrix"}`))

	assert.NoError(t, err)
	assert.Equal(t, "The matrix", patched.Title)
}

func TestMovieDelete_DetachesGenres(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	id, err := f.service.Create(ctx, validMovie())
	assert.NoError(t, err)
	assert.Len(t, f.movieGenreRepo.pairs, 1)

	_, err = f.service.Delete(ctx, id)

	assert.NoError(t, err)
	assert.Empty(t, f.movieGenreRepo.pairs)
	assert.Empty(t, f.movieRepo.movies)
}
