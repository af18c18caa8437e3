package dto

import (
	"beauty-advisor-be/pkg/matching"
	"beauty-advisor-be/pkg/qualification"
	"beauty-advisor-be/pkg/questionbank"
)

type StartQualificationRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Category  string `json:"category" validate:"required"`
	Language  string `json:"language"`
}

type StartQualificationResponse struct {
	SessionId string                          `json:"session_id"`
	Category  string                          `json:"category"`
	Question  *questionbank.LocalizedQuestion `json:"question"`
}

type ProcessAnswerRequest struct {
	SessionId string        `json:"session_id" validate:"required"`
	Step      int           `json:"step" validate:"required,min=1"`
	Answer    AnswerPayload `json:"answer" validate:"required"`
	Language  string        `json:"language"`
}

// AnswerPayload wraps the raw selection; qualification.Selection accepts
// both "opt-id" and ["opt-a","opt-b"] wire forms.
type AnswerPayload struct {
	Selected qualification.Selection `json:"selected"`
}

type ProcessAnswerResponse struct {
	Completed    bool                            `json:"completed"`
	NextQuestion *questionbank.LocalizedQuestion `json:"next_question,omitempty"`
}

type RecommendationsResponse struct {
	SessionId       string                    `json:"session_id"`
	Category        string                    `json:"category"`
	Count           int                       `json:"count"`
	Recommendations []matching.Recommendation `json:"recommendations"`
}

type CategoryResponse struct {
	Category   string `json:"category"`
	TotalSteps int    `json:"total_steps"`
	Products   int    `json:"products"`
}
