package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type AddJudgeRequest struct {
	JudgeID string `json:"judge_id" validate:"required"`
}

type JudgeToggleRequest struct {
	JudgeID string `json:"judge_id" validate:"required"`
}

type SubmitScoreRequest struct {
	Value int `json:"value" validate:"required,gte=6,lte=10"`
}

type ScoreCardDTO struct {
	ScoreID     string `json:"score_id"`
	TeamID      string `json:"team_id"`
	JudgeID     string `json:"judge_id"`
	CriterionID string `json:"criterion_id"`
	Value       *int   `json:"value,omitempty"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at,omitempty"`
}

type ScoreCardResponse struct {
	Status string       `json:"status"`
	Data   ScoreCardDTO `json:"data"`
}

type SubmitBallotRequest struct {
	Values map[string]int `json:"values" validate:"required,min=1"`
}

type BallotTeamDTO struct {
	TeamID         string   `json:"team_id"`
	Name           string   `json:"name"`
	Grade          string   `json:"grade"`
	ModalityName   string   `json:"modality_name"`
	TechnicalSheet string   `json:"technical_sheet,omitempty"`
	Participants   []string `json:"participants"`
	Pending        int      `json:"pending"`
}

type BallotTeamListResponse struct {
	Status string          `json:"status"`
	Data   []BallotTeamDTO `json:"data"`
}

type BallotItemDTO struct {
	ScoreID       string `json:"score_id"`
	CriterionID   string `json:"criterion_id"`
	CriterionName string `json:"criterion_name"`
	Value         *int   `json:"value,omitempty"`
	Status        string `json:"status"`
	Editable      bool   `json:"editable"`
}

type BallotResponse struct {
	Status string `json:"status"`
	Data   struct {
		TeamID  string          `json:"team_id"`
		JudgeID string          `json:"judge_id"`
		Items   []BallotItemDTO `json:"items"`
	} `json:"data"`
}

type CriterionValueDTO struct {
	CriterionID   string `json:"criterion_id"`
	CriterionName string `json:"criterion_name"`
	Value         *int   `json:"value,omitempty"`
	Status        string `json:"status"`
}

type JudgeProgressDTO struct {
	JudgeID    string              `json:"judge_id"`
	JudgeName  string              `json:"judge_name"`
	Specialist bool                `json:"specialist"`
	Submitted  int                 `json:"submitted"`
	Pending    int                 `json:"pending"`
	Blocked    int                 `json:"blocked"`
	Values     []CriterionValueDTO `json:"values"`
}

type SessionOverviewResponse struct {
	Status string `json:"status"`
	Data   struct {
		TeamID   string             `json:"team_id"`
		TeamName string             `json:"team_name"`
		Voting   bool               `json:"voting"`
		Judges   []JudgeProgressDTO `json:"judges"`
	} `json:"data"`
}
