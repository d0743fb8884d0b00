package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// ErrMissingAPIKey is returned when neither the caller nor the server supplies a Gemini key.
var ErrMissingAPIKey = errors.New("gemini api key is required")

const promptEngineerInstruction = `You are an expert prompt engineer. Your task is to generate a high-quality, structured AI prompt in Arabic based on the user's input.
The output must be a valid JSON object matching the provided schema. Do not include any markdown formatting like ` + "```json."

const promptEditorInstruction = `You are an expert prompt engineer.
Improve the following AI prompt written in Arabic:
- Make the instructions clearer and more specific
- Keep the original intent and language
- Do not add unrelated information
Return only the improved prompt text.`

type AIUseCase struct {
	aiService     usecasecontract.IAIService
	defaultAPIKey string
}

// check if AIUseCase implement IAIUseCase
var _ usecasecontract.IAIUseCase = (*AIUseCase)(nil)

// NewAIUseCase creates the generator. defaultAPIKey is used when a request
// does not bring its own key.
func NewAIUseCase(aiServ usecasecontract.IAIService, defaultAPIKey string) *AIUseCase {
	return &AIUseCase{
		aiService:     aiServ,
		defaultAPIKey: defaultAPIKey,
	}
}

func (uc *AIUseCase) resolveKey(apiKey string) (string, error) {
	if k := strings.TrimSpace(apiKey); k != "" {
		return k, nil
	}
	if uc.defaultAPIKey != "" {
		return uc.defaultAPIKey, nil
	}
	return "", ErrMissingAPIKey
}

// GeneratePrompt drafts a structured Arabic prompt about topic.
func (uc *AIUseCase) GeneratePrompt(ctx context.Context, apiKey, topic, extraContext string) (*entity.GeneratedPrompt, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("%w: empty topic provided", ErrInvalidInput)
	}
	key, err := uc.resolveKey(apiKey)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(extraContext) == "" {
		extraContext = "لا يوجد"
	}
	content := fmt.Sprintf("الموضوع: %s\n\nالسياق الإضافي: %s", topic, extraContext)

	generated, err := uc.aiService.GenerateStructuredPrompt(ctx, key, promptEngineerInstruction, content)
	if err != nil {
		return nil, fmt.Errorf("failed to generate prompt: %w", err)
	}
	if strings.TrimSpace(generated.Title) == "" || strings.TrimSpace(generated.PromptText) == "" {
		return nil, fmt.Errorf("failed to generate prompt: incomplete response")
	}
	return generated, nil
}

// ImprovePrompt rewrites an existing prompt text.
func (uc *AIUseCase) ImprovePrompt(ctx context.Context, apiKey, promptText string) (string, error) {
	if strings.TrimSpace(promptText) == "" {
		return "", fmt.Errorf("%w: empty prompt provided", ErrInvalidInput)
	}
	key, err := uc.resolveKey(apiKey)
	if err != nil {
		return "", err
	}
	improved, err := uc.aiService.GenerateText(ctx, key, promptText, promptEditorInstruction)
	if err != nil {
		return "", fmt.Errorf("failed to improve prompt: %w", err)
	}
	return improved, nil
}
