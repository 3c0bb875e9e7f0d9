package usecase_test

import (
	"context"
	"testing"

	"cinema-platform/internal/dto"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newGenreService(log *zap.Logger) (usecase.GenreService, *fakeGenreRepo) {
	movieRepo := newFakeMovieRepo()
	genreRepo := newFakeGenreRepo()
	movieGenreRepo := newFakeMovieGenreRepo(movieRepo, genreRepo)
	return usecase.NewGenreService(genreRepo, movieGenreRepo, log), genreRepo
}

func TestGenreCreate_CapitalizesAndConflicts(t *testing.T) {
	service, repo := newGenreService(zap.NewNop())
	ctx := context.Background()

	id, err := service.Create(ctx, dto.GenreDto{Name: "action"})
	assert.NoError(t, err)
	assert.Equal(t, "1", id)
	assert.Equal(t, "Action", repo.genres[1].Name)

	_, err = service.Create(ctx, dto.GenreDto{Name: "Action"})

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestGenreGet_Pagination(t *testing.T) {
	service, _ := newGenreService(zap.NewNop())
	ctx := context.Background()

	for _, name := range []string{"Action", "Drama", "Horror"} {
		_, err := service.Create(ctx, dto.GenreDto{Name: name})
		assert.NoError(t, err)
	}

	page, err := service.Get(ctx, "", 1, 2)
	assert.NoError(t, err)
	if assert.Len(t, page, 2) {
		assert.Equal(t, "Drama", page[0].Name)
		assert.Equal(t, "Horror", page[1].Name)
	}

	_, err = service.Get(ctx, "", 0, 0)
	var validationErr *apperror.UserInputValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGenrePatch_LogsNameUpdateOnlyWhenPatched(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	service, _ := newGenreService(zap.New(core))
	ctx := context.Background()

	id, err := service.Create(ctx, dto.GenreDto{Name: "Action"})
	assert.NoError(t, err)

	_, err = service.Patch(ctx, id, []byte(`{}`))
	assert.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("field name on genre with id 1 was updated").Len())

	patched, err := service.Patch(ctx, id, []byte(`{"name": "thriller"}`))
	assert.NoError(t, err)
	assert.Equal(t, "Thriller", patched.Name)
	assert.Equal(t, 1, logs.FilterMessage("field name on genre with id 1 was updated").Len())
}
