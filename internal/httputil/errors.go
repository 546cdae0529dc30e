package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the request body is not valid JSON for this resource")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidQuery     = errors.New("the query string contains values that cannot be parsed")
)
