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

// Each fixture comes with one movie (id 1, "Inception").
func newNowPlayingService(t *testing.T) usecase.NowPlayingService {
	t.Helper()

	movieRepo := newFakeMovieRepo()
	_, err := movieRepo.Create(context.Background(), &entity.Movie{
		Title:         "Inception",
		PosterURL:     "http://example.com/p.jpg",
		MovieDuration: 148,
		AgeLimit:      12,
	})
	assert.NoError(t, err)

	return usecase.NewNowPlayingService(newFakeNowPlayingRepo(), movieRepo, zap.NewNop())
}

func TestNowPlayingGet_DateWindowIsHalfOpen(t *testing.T) {
	service := newNowPlayingService(t)
	ctx := context.Background()

	evening, err := service.Create(ctx, dto.NowPlayingDto{
		MovieID:           "1",
		TimeWhenMoviePlay: "2018-12-01 20:00:00",
	})
	assert.NoError(t, err)

	// Midnight of the next day must not show up in the previous day's window.
	_, err = service.Create(ctx, dto.NowPlayingDto{
		MovieID:           "1",
		TimeWhenMoviePlay: "2018-12-02 00:00:00",
	})
	assert.NoError(t, err)

	screenings, err := service.Get(ctx, "", "2018-12-01")
	assert.NoError(t, err)
	if assert.Len(t, screenings, 1) {
		assert.Equal(t, evening, screenings[0].ID)
	}

	nextDay, err := service.Get(ctx, "", "2018-12-02")
	assert.NoError(t, err)
	assert.Len(t, nextDay, 1)
}

func TestNowPlayingGet_TitleAndDateRejected(t *testing.T) {
	service := newNowPlayingService(t)

	_, err := service.Get(context.Background(), "Inception", "2018-12-01")

	var validationErr *apperror.UserInputValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNowPlayingCreate_UnknownMovie(t *testing.T) {
	service := newNowPlayingService(t)

	_, err := service.Create(context.Background(), dto.NowPlayingDto{
		MovieID:           "42",
		TimeWhenMoviePlay: "2018-12-01 20:00:00",
	})

	var notFound *apperror.NotFoundError
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "no movie with id 42 found", notFound.Message)
	}
}
