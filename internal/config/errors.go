package config

import "errors"

var (
	// ErrInvalidTimeout is returned when request timeout is not greater than 0
	ErrInvalidTimeout = errors.New("request_timeout must be greater than 0")
	// ErrEmptyUserAgent is returned when the user agent is empty
	ErrEmptyUserAgent = errors.New("user_agent cannot be empty")
	// ErrInvalidHeader is returned when a custom header is not in "Name: Value" form
	ErrInvalidHeader = errors.New("header must be in 'Name: Value' format")
)
