package response

import "net/http"

// Error is a request error with a fixed HTTP status. The taxonomy:
// validation 400, authentication 401, authorization 403, not found 404,
// conflict 409, upstream 500.
type Error struct {
	Code    int
	Message string
	Errs    []string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code int, message string, errs ...string) *Error {
	return &Error{Code: code, Message: message, Errs: errs}
}

func Validation(message string, errs ...string) *Error {
	return newError(http.StatusBadRequest, message, errs...)
}

func Unauthorized(message string) *Error {
	return newError(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return newError(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return newError(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return newError(http.StatusConflict, message)
}

func Upstream(message string) *Error {
	return newError(http.StatusInternalServerError, message)
}
