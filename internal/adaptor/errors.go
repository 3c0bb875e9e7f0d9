package adaptor

import (
	"errors"
	"io"
	"net/http"

	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError translates typed service errors into HTTP responses.
// Anything outside the three known kinds is an internal error and the
// message is not leaked to the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var notFound *apperror.NotFoundError
	if errors.As(err, &notFound) {
		utils.ResponseError(w, notFound.Status, notFound.Message)
		return
	}

	var validationErr *apperror.UserInputValidationError
	if errors.As(err, &validationErr) {
		utils.ResponseError(w, validationErr.Status, validationErr.Message)
		return
	}

	var conflict *apperror.ConflictError
	if errors.As(err, &conflict) {
		utils.ResponseError(w, conflict.Status, conflict.Message)
		return
	}

	log.Error(operation+" failed",
		zap.Error(err),
		zap.String("operation", operation),
	)
	utils.ResponseInternalError(w, "internal server error")
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, 1<<20))
}
