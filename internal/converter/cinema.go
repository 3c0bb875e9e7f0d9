package converter

import (
	"strconv"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/dto"
)

// CinemaToDto maps a cinema to its wire shape. Rooms are only converted when
// loadRooms is set; skipping the expansion is a caller-controlled knob.
func CinemaToDto(e *entity.Cinema, loadRooms bool) dto.CinemaDto {
	cinema := dto.CinemaDto{
		ID:       strconv.FormatInt(e.ID, 10),
		Name:     e.Name,
		Location: e.Location,
	}

	if loadRooms {
		cinema.Rooms = RoomListToDtoList(e.Rooms)
	}

	return cinema
}

// CinemaToEntity never carries the id over; identifiers are assigned by the
// persistence layer on creation.
func CinemaToEntity(d dto.CinemaDto) *entity.Cinema {
	return &entity.Cinema{
		Name:     d.Name,
		Location: d.Location,
	}
}

func CinemaListToDtoList(entities []*entity.Cinema, loadRooms bool) []dto.CinemaDto {
	dtos := make([]dto.CinemaDto, len(entities))
	for i, e := range entities {
		dtos[i] = CinemaToDto(e, loadRooms)
	}
	return dtos
}

func RoomToDto(e *entity.Room) dto.RoomDto {
	return dto.RoomDto{
		ID:       strconv.FormatInt(e.ID, 10),
		Name:     e.Name,
		CinemaID: strconv.FormatInt(e.CinemaID, 10),
		Seats:    e.Seats,
	}
}

func RoomToEntity(d dto.RoomDto) *entity.Room {
	return &entity.Room{
		Name:  d.Name,
		Seats: d.Seats,
	}
}

func RoomListToDtoList(entities []entity.Room) []dto.RoomDto {
	dtos := make([]dto.RoomDto, len(entities))
	for i := range entities {
		dtos[i] = RoomToDto(&entities[i])
	}
	return dtos
}
