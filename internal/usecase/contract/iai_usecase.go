package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// IAIService is the text generation backend.
type IAIService interface {
	GenerateText(ctx context.Context, apiKey, prompt, systemInstruction string) (string, error)
	GenerateStructuredPrompt(ctx context.Context, apiKey, systemInstruction, content string) (*entity.GeneratedPrompt, error)
}

type IAIUseCase interface {
	GeneratePrompt(ctx context.Context, apiKey, topic, extraContext string) (*entity.GeneratedPrompt, error)
	ImprovePrompt(ctx context.Context, apiKey, promptText string) (string, error)
}
