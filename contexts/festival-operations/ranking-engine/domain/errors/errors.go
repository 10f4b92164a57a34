package errors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid ranking input")
	ErrTeamNotFound     = errors.New("team not found")
	ErrStoreUnavailable = errors.New("ranking store unavailable")
)
