package handler

import (
	"errors"
	"net/http"

	"binfresh/internal/domain/entity"
	"binfresh/pkg/response"
)

// writeDomainError maps the error taxonomy onto HTTP: validation
// problems become 400 with the offending field, missing ids become 404,
// everything else is a 500 with the handler's fallback message.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		response.ValidationError(w, map[string]string{
			validationErr.Field: validationErr.Message,
		})
		return
	}

	var notFoundErr *entity.NotFoundError
	if errors.As(err, &notFoundErr) {
		response.NotFound(w, notFoundErr.Error())
		return
	}

	response.InternalServerError(w, fallback)
}
