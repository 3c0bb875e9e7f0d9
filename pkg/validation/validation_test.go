package validation_test

import (
	"testing"
	"time"

	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidateID_Valid(t *testing.T) {
	id, err := validation.ValidateID("42", "id")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestValidateID_UndefinedSentinel(t *testing.T) {
	_, err := validation.ValidateID("undefined", "couponId")

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "missing required field: couponId", validationErr.Message)
		assert.Equal(t, 400, validationErr.Status)
	}
}

func TestValidateID_Malformed(t *testing.T) {
	_, err := validation.ValidateID("abc", "id")

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "invalid id parameter", validationErr.Message)
	}
}

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{
		"2018-12-12 20:20:00.000000",
		"1999-01-01 0:00:00.123456",
		"2021-06-30 23:59:59.999999",
	}
	for _, raw := range valid {
		got, err := validation.ValidateTimeFormat(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, raw, got)
	}

	invalid := []string{
		"2018-12-12 20:20:00",         // missing microseconds
		"2018-13-12 20:20:00.000000",  // month out of range
		"2018-12-12 24:20:00.000000",  // hour out of range
		"2118-12-12 20:20:00.000000",  // year prefix
		"2018-12-12T20:20:00.000000",  // wrong separator
		"2018-12-12 20:20:00.0000000", // too many digits
	}
	for _, raw := range invalid {
		_, err := validation.ValidateTimeFormat(raw)
		assert.Error(t, err, raw)
	}
}

// The pattern does not cross-check the day against the month, so an
// impossible calendar date still passes here.
func TestValidateTimeFormat_LooseDayBound(t *testing.T) {
	_, err := validation.ValidateTimeFormat("2021-02-31 10:00:00.000000")
	assert.NoError(t, err)
}

func TestParseTimestamp_RejectsImpossibleDate(t *testing.T) {
	_, err := validation.ParseTimestamp("2021-02-31 10:00:00.000000")
	assert.Error(t, err)
}

func TestParseTimestamp_Valid(t *testing.T) {
	parsed, err := validation.ParseTimestamp("2018-12-12 20:20:00.000000")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2018, 12, 12, 20, 20, 0, 0, time.UTC), parsed)
}

func TestValidateLimitAndOffset(t *testing.T) {
	assert.Error(t, validation.ValidateLimitAndOffset(-1, 5))
	assert.Error(t, validation.ValidateLimitAndOffset(0, 0))
	assert.NoError(t, validation.ValidateLimitAndOffset(0, 1))
}

func TestValidateSeatFormat(t *testing.T) {
	valid := []string{"A1", "K12", "Z99"}
	for _, seat := range valid {
		_, err := validation.ValidateSeatFormat(seat)
		assert.NoError(t, err, seat)
	}

	invalid := []string{"1A", "AA1", "a1", "A123", "A", ""}
	for _, seat := range invalid {
		_, err := validation.ValidateSeatFormat(seat)
		assert.Error(t, err, seat)
	}
}
