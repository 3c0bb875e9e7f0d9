package usecase

import (
	"encoding/json"

	"cinema-platform/pkg/apperror"

	"go.uber.org/zap"
)

// requireFields reports the first missing required field, in declaration
// order, so that error messages are deterministic.
func requireFields(log *zap.Logger, missing map[string]bool, order ...string) error {
	for _, field := range order {
		if missing[field] {
			errorMsg := apperror.MissingRequiredField(field)
			log.Warn(errorMsg)
			return apperror.NewUserInputValidation(errorMsg)
		}
	}
	return nil
}

// decodePatch parses a partial-update body into its top-level fields and
// rejects any attempt to rewrite the identifier.
func decodePatch(log *zap.Logger, body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		errorMsg := apperror.InvalidJSONFormat()
		log.Warn(errorMsg)
		return nil, apperror.NewUserInputValidation(errorMsg)
	}

	if _, ok := fields["id"]; ok {
		errorMsg := apperror.IllegalParameter("id")
		log.Warn(errorMsg)
		return nil, apperror.NewUserInputValidation(errorMsg)
	}

	return fields, nil
}

func patchString(log *zap.Logger, raw json.RawMessage, field string, target *string) error {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		errorMsg := apperror.UnableToParse(field)
		log.Warn(errorMsg)
		return apperror.NewUserInputValidation(errorMsg)
	}

	*target = value
	return nil
}

func patchInt(log *zap.Logger, raw json.RawMessage, field string, target *int) error {
	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		errorMsg := apperror.UnableToParse(field)
		log.Warn(errorMsg)
		return apperror.NewUserInputValidation(errorMsg)
	}

	*target = value
	return nil
}
