package domain

import "errors"

var (
	ErrMalformedRoute = errors.New("malformed exchange route")
	ErrOrderNotFound  = errors.New("order not found")
	ErrUnauthorized   = errors.New("not authenticated")
)
