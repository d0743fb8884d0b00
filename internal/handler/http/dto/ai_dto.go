package dto

type GeneratePromptRequest struct {
	Topic   string `json:"topic" binding:"required,max=500"`
	Context string `json:"context" binding:"max=2000"`
}

type ImprovePromptRequest struct {
	PromptText string `json:"prompt_text" binding:"required"`
}

type ImprovePromptResponse struct {
	PromptText string `json:"prompt_text"`
}
