package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User is keyed by username, not by a surrogate id.
type User struct {
	Username     string    `db:"username"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	DateOfBirth  *string   `db:"date_of_birth"`
	PasswordHash string    `db:"password"`
	Role         UserRole  `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// CreditCard is owned by exactly one user and only readable by its owner or
// an admin.
type CreditCard struct {
	ID             int64  `db:"id"`
	CardNumber     string `db:"card_number"`
	ExpirationDate string `db:"expiration_date"`
	CVC            int    `db:"cvc"`
	Username       string `db:"username"`
}

type Session struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Token     uuid.UUID `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
