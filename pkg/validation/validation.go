package validation

import (
	"regexp"
	"strconv"
	"time"

	"cinema-platform/pkg/apperror"
)

// TimestampLayout is the canonical storage format for timestamps,
// microsecond precision included.
const TimestampLayout = "2006-01-02 15:04:05.000000"

var (
	timeFormatRegex = regexp.MustCompile(`^(19|20)\d\d[-](0[1-9]|1[012])[-](0[1-9]|[12][0-9]|3[01]) ([01]?[0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])\.([0-9]{6})$`)
	seatFormatRegex = regexp.MustCompile(`^[A-Z][0-9]{1,2}$`)
)

// ValidateID parses a path or body id into an int64. The literal string
// "undefined" is what a browser client sends for an absent value, so it is
// reported as a missing field rather than a malformed one.
func ValidateID(paramID, paramName string) (int64, error) {
	id, err := strconv.ParseInt(paramID, 10, 64)
	if err != nil {
		if paramID == "undefined" {
			return 0, apperror.NewUserInputValidation(apperror.MissingRequiredField(paramName))
		}
		return 0, apperror.NewUserInputValidation(apperror.InvalidIdParameter())
	}
	return id, nil
}

// ValidateTimeFormat checks the raw string against the timestamp pattern.
// The day-of-month bound is not cross-checked against the month, so a date
// like 2021-02-31 passes here and is only rejected when actually parsed.
func ValidateTimeFormat(raw string) (string, error) {
	if !timeFormatRegex.MatchString(raw) {
		return "", apperror.NewUserInputValidation(apperror.InvalidTimeFormat())
	}
	return raw, nil
}

// ValidateLimitAndOffset rejects negative offsets and non-positive limits.
func ValidateLimitAndOffset(offset, limit int) error {
	if offset < 0 || limit < 1 {
		return apperror.NewUserInputValidation(apperror.OffsetAndLimitInvalid())
	}
	return nil
}

// ValidateSeatFormat accepts one uppercase letter followed by 1-2 digits.
func ValidateSeatFormat(raw string) (string, error) {
	if !seatFormatRegex.MatchString(raw) {
		return "", apperror.NewUserInputValidation(apperror.InvalidSeatFormat())
	}
	return raw, nil
}

// ParseTimestamp converts a pattern-validated timestamp string into a
// time.Time in UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return time.Time{}, apperror.NewUserInputValidation(apperror.InvalidTimeFormat())
	}
	return t.UTC(), nil
}
