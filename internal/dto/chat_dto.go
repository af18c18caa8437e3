package dto

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required,max=2000"`
	Language  string `json:"language"`
}

type SendChatResponse struct {
	SessionId string `json:"session_id"`
	Reply     string `json:"reply"`
	// Source tells the flow layer whether the reply came from the LLM
	// collaborator or the deterministic template fallback.
	Source string `json:"source"` // "llm" | "template"
}
