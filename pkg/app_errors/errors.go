package apperrors

import "errors"

var (
	ErrInvalidCategory     = errors.New("invalid category")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInternalServerError = errors.New("internal server error")
)
