package entities

import (
	"strings"
	"time"
)

// ScoreStatus is the per-card state machine. Wire values match the
// legacy store; parsing folds case at the read boundary only.
type ScoreStatus string

const (
	// ScoreOpen is the initial state; the judge may submit.
	ScoreOpen ScoreStatus = "liberado"
	// ScoreBlocked bars the judge; the value is forced unset.
	ScoreBlocked ScoreStatus = "bloqueado"
	// ScoreInProgress marks a card shown to the judge but not yet
	// committed. It is equivalent to open for ballot visibility.
	ScoreInProgress ScoreStatus = "votando"
	// ScoreSubmitted is terminal; the value is set and read-only.
	ScoreSubmitted ScoreStatus = "ok"
)

func ParseScoreStatus(raw string) (ScoreStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ScoreOpen):
		return ScoreOpen, true
	case string(ScoreBlocked):
		return ScoreBlocked, true
	case string(ScoreInProgress):
		return ScoreInProgress, true
	case string(ScoreSubmitted):
		return ScoreSubmitted, true
	default:
		return "", false
	}
}

// Editable reports whether the card may still receive a value.
func (s ScoreStatus) Editable() bool {
	return s == ScoreOpen || s == ScoreInProgress
}

// Accepted score values are whole numbers on a fixed band.
const (
	ScoreValueMin = 6
	ScoreValueMax = 10
)

func ValidScoreValue(value int) bool {
	return value >= ScoreValueMin && value <= ScoreValueMax
}

// ScoreCard is one (team, judge, criterion) scoring unit. Value is nil
// until the card reaches the submitted state.
type ScoreCard struct {
	ScoreID     string
	Year        int
	ModalityID  string
	TeamID      string
	JudgeID     string
	CriterionID string
	Value       *int
	Status      ScoreStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
