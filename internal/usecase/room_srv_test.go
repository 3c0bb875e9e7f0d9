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

type roomFixture struct {
	service  usecase.RoomService
	roomRepo *fakeRoomRepo
}

// Each fixture comes with one cinema (id 1) holding rooms "Sal 1" and "Sal 2".
func newRoomFixture(t *testing.T) *roomFixture {
	t.Helper()
	ctx := context.Background()

	cinemaRepo := newFakeCinemaRepo()
	_, err := cinemaRepo.Create(ctx, &entity.Cinema{Name: "Colosseum", Location: "Oslo"})
	assert.NoError(t, err)

	roomRepo := newFakeRoomRepo()
	for _, name := range []string{"Sal 1", "Sal 2"} {
		_, err := roomRepo.Create(ctx, &entity.Room{
			Name:     name,
			CinemaID: 1,
			Seats:    []string{"A1", "A2"},
		})
		assert.NoError(t, err)
	}

	return &roomFixture{
		service:  usecase.NewRoomService(roomRepo, cinemaRepo, zap.NewNop()),
		roomRepo: roomRepo,
	}
}

func TestRoomCreate_DuplicateNameInCinema(t *testing.T) {
	f := newRoomFixture(t)

	_, err := f.service.Create(context.Background(), "1", dto.RoomDto{
		Name:  "Sal 1",
		Seats: []string{"B1"},
	})

	var conflict *apperror.ConflictError
	if assert.ErrorAs(t, err, &conflict) {
		assert.Equal(t, "room with name Sal 1 already exists", conflict.Message)
	}
}

func TestRoomUpdate_RenameToSiblingName(t *testing.T) {
	f := newRoomFixture(t)

	_, err := f.service.Update(context.Background(), "1", "2", dto.RoomDto{
		ID:    "2",
		Name:  "Sal 1",
		Seats: []string{"A1", "A2"},
	})

	var conflict *apperror.ConflictError
	if assert.ErrorAs(t, err, &conflict) {
		assert.Equal(t, "room with name Sal 1 already exists", conflict.Message)
	}
	assert.Equal(t, "Sal 2", f.roomRepo.rooms[2].Name)
}

func TestRoomUpdate_SameNameKeepsWorking(t *testing.T) {
	f := newRoomFixture(t)

	id, err := f.service.Update(context.Background(), "1", "2", dto.RoomDto{
		ID:    "2",
		Name:  "Sal 2",
		Seats: []string{"B1", "B2"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "2", id)
	assert.Equal(t, []string{"B1", "B2"}, f.roomRepo.rooms[2].Seats)
}

func TestRoomPatch_RenameToSiblingName(t *testing.T) {
	f := newRoomFixture(t)

	_, err := f.service.Patch(context.Background(), "1", "2", []byte(`{"name": "Sal 1"}`))

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Sal 2", f.roomRepo.rooms[2].Name)
}

func TestRoomPatch_RenameToFreeName(t *testing.T) {
	f := newRoomFixture(t)

	patched, err := f.service.Patch(context.Background(), "1", "2", []byte(`{"name": "Sal 3"}`))

	assert.NoError(t, err)
	assert.Equal(t, "Sal 3", patched.Name)
	assert.Equal(t, "Sal 3", f.roomRepo.rooms[2].Name)
}

func TestRoomCreate_BadSeatLabel(t *testing.T) {
	f := newRoomFixture(t)

	_, err := f.service.Create(context.Background(), "1", dto.RoomDto{
		Name:  "Sal 3",
		Seats: []string{"A1", "1A"},
	})

	var validationErr *apperror.UserInputValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRoomGet_UnknownCinema(t *testing.T) {
	f := newRoomFixture(t)

	_, err := f.service.GetAllByCinema(context.Background(), "42")

	var notFound *apperror.NotFoundError
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "no cinema with id 42 found", notFound.Message)
	}
}
