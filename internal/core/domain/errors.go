package domain

import "errors"

var (
	ErrInvalidFrame       = errors.New("invalid timeline frame")
	ErrInvalidTrip        = errors.New("invalid trip parameters")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrClientNotFound     = errors.New("client not found")
	ErrForbidden          = errors.New("access forbidden")
)
