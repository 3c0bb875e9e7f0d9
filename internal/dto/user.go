package dto

type UserDto struct {
	Username    string `json:"username,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Password    string `json:"password,omitempty"`
}

type CreditCardDto struct {
	ID             string `json:"id,omitempty"`
	CardNumber     string `json:"cardNumber,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	CVC            *int   `json:"cvc,omitempty"`
	Username       string `json:"username,omitempty"`
}
