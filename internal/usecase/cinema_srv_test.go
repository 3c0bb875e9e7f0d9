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

type cinemaFixture struct {
	service    usecase.CinemaService
	cinemaRepo *fakeCinemaRepo
	roomRepo   *fakeRoomRepo
}

func newCinemaFixture() *cinemaFixture {
	cinemaRepo := newFakeCinemaRepo()
	roomRepo := newFakeRoomRepo()
	return &cinemaFixture{
		service:    usecase.NewCinemaService(cinemaRepo, roomRepo, zap.NewNop()),
		cinemaRepo: cinemaRepo,
		roomRepo:   roomRepo,
	}
}

func TestCinemaGet_Pagination(t *testing.T) {
	f := newCinemaFixture()
	ctx := context.Background()

	for _, name := range []string{"Colosseum", "Ringen", "Symra"} {
		_, err := f.service.Create(ctx, dto.CinemaDto{Name: name, Location: "Oslo"})
		assert.NoError(t, err)
	}

	page, err := f.service.Get(ctx, "", 1, 2)
	assert.NoError(t, err)
	if assert.Len(t, page, 2) {
		assert.Equal(t, "Ringen", page[0].Name)
		assert.Equal(t, "Symra", page[1].Name)
	}

	filtered, err := f.service.Get(ctx, "ring", 0, 10)
	assert.NoError(t, err)
	if assert.Len(t, filtered, 1) {
		assert.Equal(t, "Ringen", filtered[0].Name)
	}

	_, err = f.service.Get(ctx, "", -1, 10)
	var validationErr *apperror.UserInputValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCinemaCreate_RejectsRooms(t *testing.T) {
	f := newCinemaFixture()

	_, err := f.service.Create(context.Background(), dto.CinemaDto{
		Name:     "Colosseum",
		Location: "Oslo",
		Rooms:    []dto.RoomDto{{Name: "Sal 1"}},
	})

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "illegal parameter: rooms", validationErr.Message)
	}
}

func TestCinemaDelete_RemovesRooms(t *testing.T) {
	f := newCinemaFixture()
	ctx := context.Background()

	id, err := f.service.Create(ctx, dto.CinemaDto{Name: "Colosseum", Location: "Oslo"})
	assert.NoError(t, err)

	_, err = f.roomRepo.Create(ctx, &entity.Room{Name: "Sal 1", CinemaID: 1, Seats: []string{"A1"}})
	assert.NoError(t, err)

	_, err = f.service.Delete(ctx, id)

	assert.NoError(t, err)
	assert.Empty(t, f.roomRepo.rooms)
	assert.Empty(t, f.cinemaRepo.cinemas)
}
