package dto

// AssistantQueryRequest carries a free-form question for the assistant.
type AssistantQueryRequest struct {
	Question string `json:"question" binding:"required"`
}

// AssistantQueryResponse carries the assistant answer. The answer is always
// present; upstream failures degrade to a fixed apology text instead of an
// error status.
type AssistantQueryResponse struct {
	Answer string `json:"answer"`
}
