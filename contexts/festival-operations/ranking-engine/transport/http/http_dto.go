package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ComputeFinalScoreRequest struct {
	Year       int    `json:"year" validate:"required,gt=0"`
	ModalityID string `json:"modality_id" validate:"required"`
	TeamID     string `json:"team_id" validate:"required"`
}

type RankingDTO struct {
	RankingID  string  `json:"ranking_id"`
	Year       int     `json:"year"`
	ModalityID string  `json:"modality_id"`
	TeamID     string  `json:"team_id"`
	FinalScore float64 `json:"final_score"`
	ComputedAt string  `json:"computed_at"`
}

type RankingResponse struct {
	Status string     `json:"status"`
	Data   RankingDTO `json:"data"`
}

type TeamStandingDTO struct {
	Position     int      `json:"position"`
	TeamID       string   `json:"team_id"`
	TeamName     string   `json:"team_name"`
	Participants []string `json:"participants"`
	FinalScore   float64  `json:"final_score"`
}

type GradeStandingsDTO struct {
	Grade string            `json:"grade"`
	Teams []TeamStandingDTO `json:"teams"`
}

type StandingsResponse struct {
	Status string              `json:"status"`
	Data   []GradeStandingsDTO `json:"data"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
