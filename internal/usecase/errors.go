package usecase

import (
	"errors"
	"fmt"

	"streamtube/internal/repo/persistent"
	"streamtube/pkg/response"
)

// mapRepoErr translates the store's sentinel errors into the response
// taxonomy. Anything unrecognized stays a plain error and renders as 500.
func mapRepoErr(err error, resource string) error {
	switch {
	case errors.Is(err, persistent.ErrNotFound):
		return response.NotFound(fmt.Sprintf("%s not found", resource))
	case errors.Is(err, persistent.ErrForbidden):
		return response.Forbidden(fmt.Sprintf("you do not own this %s", resource))
	case errors.Is(err, persistent.ErrDuplicate):
		return response.Conflict(fmt.Sprintf("%s already exists", resource))
	default:
		return err
	}
}
