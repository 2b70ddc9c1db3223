package domain

import "errors"

var (
	MessageFailedBodyRequest = "failed to process request body"
	MessageUnauthorized      = "invalid or missing API key"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrInvalidAPIKey = errors.New("invalid API key")
)
