// Package httperror maps domain errors onto HTTP status codes at the
// handler boundary.
package httperror

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/core"
)

// FromDomain converts a domain error into a huma error: validation maps to
// 400, not-found to 404, duplicates to 409, anything else to 500 with the
// fallback message.
func FromDomain(err error, fallback string) error {
	switch {
	case core.IsValidation(err):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case core.IsNotFound(err):
		return huma.NewError(http.StatusNotFound, err.Error())
	case core.IsDuplicate(err):
		return huma.NewError(http.StatusConflict, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
