package errors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid registry input")
	ErrYearNotFound       = errors.New("year not found")
	ErrModalityNotFound   = errors.New("modality not found")
	ErrCriterionNotFound  = errors.New("criterion not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrJudgeNotFound      = errors.New("judge not found")
	ErrDuplicateEntry     = errors.New("registry entry already exists")
	ErrInvalidCredentials = errors.New("invalid judge credentials")
	ErrStoreUnavailable   = errors.New("registry store unavailable")
)
