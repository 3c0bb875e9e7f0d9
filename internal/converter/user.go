package converter

import (
	"strconv"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/dto"
)

// UserToDto never exposes the password hash.
func UserToDto(e *entity.User) dto.UserDto {
	user := dto.UserDto{
		Username: e.Username,
		Name:     e.Name,
		Email:    e.Email,
	}

	if e.DateOfBirth != nil {
		user.DateOfBirth = *e.DateOfBirth
	}

	return user
}

func UserListToDtoList(entities []*entity.User) []dto.UserDto {
	dtos := make([]dto.UserDto, len(entities))
	for i, e := range entities {
		dtos[i] = UserToDto(e)
	}
	return dtos
}

func CreditCardToDto(e *entity.CreditCard) dto.CreditCardDto {
	cvc := e.CVC

	return dto.CreditCardDto{
		ID:             strconv.FormatInt(e.ID, 10),
		CardNumber:     e.CardNumber,
		ExpirationDate: e.ExpirationDate,
		CVC:            &cvc,
		Username:       e.Username,
	}
}

func CreditCardToEntity(d dto.CreditCardDto) *entity.CreditCard {
	return &entity.CreditCard{
		CardNumber:     d.CardNumber,
		ExpirationDate: d.ExpirationDate,
		CVC:            *d.CVC,
		Username:       d.Username,
	}
}

func CreditCardListToDtoList(entities []*entity.CreditCard) []dto.CreditCardDto {
	dtos := make([]dto.CreditCardDto, len(entities))
	for i, e := range entities {
		dtos[i] = CreditCardToDto(e)
	}
	return dtos
}
