package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateYearRequest struct {
	Year int `json:"year" validate:"required,gt=0"`
}

type YearDTO struct {
	Year int `json:"year"`
}

type YearListResponse struct {
	Status string    `json:"status"`
	Data   []YearDTO `json:"data"`
}

type YearResponse struct {
	Status string  `json:"status"`
	Data   YearDTO `json:"data"`
}

type CreateModalityRequest struct {
	Name string `json:"name" validate:"required"`
	Year int    `json:"year" validate:"required,gt=0"`
}

type ModalityDTO struct {
	ModalityID string `json:"modality_id"`
	Name       string `json:"name"`
	Year       int    `json:"year"`
}

type ModalityResponse struct {
	Status string      `json:"status"`
	Data   ModalityDTO `json:"data"`
}

type ModalityListResponse struct {
	Status string        `json:"status"`
	Data   []ModalityDTO `json:"data"`
}

type CreateCriterionRequest struct {
	Name       string `json:"name" validate:"required"`
	ModalityID string `json:"modality_id" validate:"required"`
}

type CriterionDTO struct {
	CriterionID string `json:"criterion_id"`
	Name        string `json:"name"`
	ModalityID  string `json:"modality_id"`
}

type CriterionResponse struct {
	Status string       `json:"status"`
	Data   CriterionDTO `json:"data"`
}

type CriterionListResponse struct {
	Status string         `json:"status"`
	Data   []CriterionDTO `json:"data"`
}

type CreateTeamRequest struct {
	Name              string `json:"name" validate:"required"`
	Grade             string `json:"grade" validate:"required,oneof=elementary high_school"`
	PresentationOrder int    `json:"presentation_order" validate:"required,gt=0"`
	TechnicalSheet    string `json:"technical_sheet,omitempty"`
	ModalityID        string `json:"modality_id" validate:"required"`
}

type TeamDTO struct {
	TeamID            string `json:"team_id"`
	Name              string `json:"name"`
	Grade             string `json:"grade"`
	PresentationOrder int    `json:"presentation_order"`
	TechnicalSheet    string `json:"technical_sheet,omitempty"`
	ModalityID        string `json:"modality_id"`
	VotingStatus      string `json:"voting_status"`
}

type TeamResponse struct {
	Status string  `json:"status"`
	Data   TeamDTO `json:"data"`
}

type TeamListResponse struct {
	Status string    `json:"status"`
	Data   []TeamDTO `json:"data"`
}

type CreateParticipantRequest struct {
	Name       string `json:"name" validate:"required"`
	ClassLabel string `json:"class_label,omitempty"`
	TeamID     string `json:"team_id" validate:"required"`
}

type ParticipantDTO struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	ClassLabel    string `json:"class_label,omitempty"`
	TeamID        string `json:"team_id"`
}

type ParticipantResponse struct {
	Status string         `json:"status"`
	Data   ParticipantDTO `json:"data"`
}

type ParticipantListResponse struct {
	Status string           `json:"status"`
	Data   []ParticipantDTO `json:"data"`
}

type CreateJudgeRequest struct {
	Name     string `json:"name" validate:"required"`
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	Year     int    `json:"year" validate:"required,gt=0"`
}

type JudgeDTO struct {
	JudgeID string `json:"judge_id"`
	Name    string `json:"name"`
	Login   string `json:"login"`
	Year    int    `json:"year"`
}

type JudgeResponse struct {
	Status string   `json:"status"`
	Data   JudgeDTO `json:"data"`
}

type JudgeListResponse struct {
	Status string     `json:"status"`
	Data   []JudgeDTO `json:"data"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token string   `json:"token"`
		Judge JudgeDTO `json:"judge"`
	} `json:"data"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

type AssignSpecialistRequest struct {
	Year       int    `json:"year" validate:"required,gt=0"`
	JudgeID    string `json:"judge_id" validate:"required"`
	ModalityID string `json:"modality_id" validate:"required"`
}

type SpecialistDTO struct {
	Year       int    `json:"year"`
	JudgeID    string `json:"judge_id"`
	ModalityID string `json:"modality_id"`
}

type SpecialistListResponse struct {
	Status string          `json:"status"`
	Data   []SpecialistDTO `json:"data"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
