package apperror

import "net/http"

// NotFoundError signals that the requested entity does not exist.
type NotFoundError struct {
	Message string
	Status  int
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message, Status: http.StatusNotFound}
}

// UserInputValidationError signals malformed, missing, or illegal input.
// Default status is 400, but some paths override it (409 on id mismatch).
type UserInputValidationError struct {
	Message string
	Status  int
}

func (e *UserInputValidationError) Error() string {
	return e.Message
}

func NewUserInputValidation(message string) *UserInputValidationError {
	return &UserInputValidationError{Message: message, Status: http.StatusBadRequest}
}

func NewUserInputValidationWithStatus(message string, status int) *UserInputValidationError {
	return &UserInputValidationError{Message: message, Status: status}
}

// ConflictError signals a uniqueness violation. Default status is 409.
type ConflictError struct {
	Message string
	Status  int
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message, Status: http.StatusConflict}
}

func NewConflictWithStatus(message string, status int) *ConflictError {
	return &ConflictError{Message: message, Status: status}
}
