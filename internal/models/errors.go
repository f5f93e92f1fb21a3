package models

import "errors"

// Caller-facing error taxonomy. Background-loop errors never use these;
// they stay inside the consumer loop and surface only through logs and
// metrics.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrInvalidOption = errors.New("invalid option")
)
