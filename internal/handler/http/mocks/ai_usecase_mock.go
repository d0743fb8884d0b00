package mocks

import (
	"context"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// MockAIUsecase requires an API key unless ServerKey is set.
type MockAIUsecase struct {
	ServerKey  bool
	LastAPIKey string
}

var _ usecasecontract.IAIUseCase = (*MockAIUsecase)(nil)

func (m *MockAIUsecase) GeneratePrompt(ctx context.Context, apiKey, topic, extraContext string) (*entity.GeneratedPrompt, error) {
	m.LastAPIKey = apiKey
	if apiKey == "" && !m.ServerKey {
		return nil, usecase.ErrMissingAPIKey
	}
	return &entity.GeneratedPrompt{
		Title:      "أمر عن " + topic,
		PromptText: "اكتب عن " + topic,
		Tags:       []string{"أ", "ب", "ج"},
	}, nil
}

func (m *MockAIUsecase) ImprovePrompt(ctx context.Context, apiKey, promptText string) (string, error) {
	m.LastAPIKey = apiKey
	if apiKey == "" && !m.ServerKey {
		return "", usecase.ErrMissingAPIKey
	}
	return promptText + " (محسن)", nil
}
