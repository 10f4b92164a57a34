package errors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid voting input")
	ErrInvalidScoreValue  = errors.New("score value outside accepted band")
	ErrScoreNotFound      = errors.New("score card not found")
	ErrScoreNotEditable   = errors.New("score card is not editable")
	ErrTeamNotFound       = errors.New("team not found")
	ErrJudgeNotFound      = errors.New("judge not found")
	ErrSessionAlreadyOpen = errors.New("voting session already open for team")
	ErrIncompleteBallot   = errors.New("ballot submission must cover every editable card")
	ErrStoreUnavailable   = errors.New("voting store unavailable")
)
