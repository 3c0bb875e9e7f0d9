package apperror

import "fmt"

// Message builders keep error and log text identical across all services.

func NotFoundMessage(entity, field, value string) string {
	return fmt.Sprintf("no %s with %s %s found", entity, field, value)
}

func MissingRequiredField(field string) string {
	return fmt.Sprintf("missing required field: %s", field)
}

func InvalidIdParameter() string {
	return "invalid id parameter"
}

func InvalidTimeFormat() string {
	return "invalid time format"
}

func InvalidSeatFormat() string {
	return "invalid seat format"
}

func OffsetAndLimitInvalid() string {
	return "invalid offset or limit"
}

func IllegalParameter(field string) string {
	return fmt.Sprintf("illegal parameter: %s", field)
}

func NotMatchingIds(field string) string {
	return fmt.Sprintf("not matching %s in request path and body", field)
}

func ResourceAlreadyExists(entity, field, value string) string {
	return fmt.Sprintf("%s with %s %s already exists", entity, field, value)
}

func UnableToParse(field string) string {
	return fmt.Sprintf("unable to parse: %s", field)
}

func InvalidJSONFormat() string {
	return "invalid JSON format"
}

func InvalidFieldCombination(message string) string {
	return fmt.Sprintf("invalid field combination: %s", message)
}

func InputFilterInvalid() string {
	return "invalid filtering parameters"
}

func PercentageOutOfRange() string {
	return "percentage must be between 0 and 100"
}

func PriceNegative() string {
	return "price can not be negative"
}

// Informational messages logged around successful mutations.

func EntityCreated(entity, id string) string {
	return fmt.Sprintf("%s with id %s was created", entity, id)
}

func EntityUpdated(entity, id string) string {
	return fmt.Sprintf("%s with id %s was updated", entity, id)
}

func EntityFieldUpdated(entity, id, field string) string {
	return fmt.Sprintf("field %s on %s with id %s was updated", field, entity, id)
}

func EntityDeleted(entity, id string) string {
	return fmt.Sprintf("%s with id %s was deleted", entity, id)
}
