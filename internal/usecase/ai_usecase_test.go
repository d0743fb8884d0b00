package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

type fakeAIService struct {
	lastKey         string
	lastContent     string
	lastInstruction string
	generated       *entity.GeneratedPrompt
	text            string
	err             error
}

func (f *fakeAIService) GenerateText(_ context.Context, apiKey, prompt, systemInstruction string) (string, error) {
	f.lastKey, f.lastContent, f.lastInstruction = apiKey, prompt, systemInstruction
	return f.text, f.err
}

func (f *fakeAIService) GenerateStructuredPrompt(_ context.Context, apiKey, systemInstruction, content string) (*entity.GeneratedPrompt, error) {
	f.lastKey, f.lastContent, f.lastInstruction = apiKey, content, systemInstruction
	return f.generated, f.err
}

func TestAIUseCase_GeneratePrompt(t *testing.T) {
	svc := &fakeAIService{generated: &entity.GeneratedPrompt{Title: "عنوان", PromptText: "نص", Tags: []string{"a", "b", "c"}}}
	uc := NewAIUseCase(svc, "server-key")

	generated, err := uc.GeneratePrompt(context.Background(), "", "التسويق", "")

	require.NoError(t, err)
	assert.Equal(t, "عنوان", generated.Title)
	assert.Equal(t, "server-key", svc.lastKey)
	assert.Contains(t, svc.lastContent, "التسويق")
	assert.Contains(t, svc.lastContent, "لا يوجد")
	assert.Equal(t, promptEngineerInstruction, svc.lastInstruction)
}

func TestAIUseCase_CallerKeyWins(t *testing.T) {
	svc := &fakeAIService{text: "محسن"}
	uc := NewAIUseCase(svc, "server-key")

	improved, err := uc.ImprovePrompt(context.Background(), " visitor-key ", "اكتب قصة")

	require.NoError(t, err)
	assert.Equal(t, "محسن", improved)
	assert.Equal(t, "visitor-key", svc.lastKey)
	assert.Equal(t, promptEditorInstruction, svc.lastInstruction)
}

func TestAIUseCase_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewAIUseCase(&fakeAIService{}, "").GeneratePrompt(ctx, "", "topic", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewAIUseCase(&fakeAIService{}, "k").GeneratePrompt(ctx, "", "  ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewAIUseCase(&fakeAIService{}, "k").ImprovePrompt(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	upstream := errors.New("quota exceeded")
	_, err = NewAIUseCase(&fakeAIService{err: upstream}, "k").ImprovePrompt(ctx, "", "x")
	assert.ErrorIs(t, err, upstream)

	_, err = NewAIUseCase(&fakeAIService{generated: &entity.GeneratedPrompt{Title: "t"}}, "k").GeneratePrompt(ctx, "", "topic", "")
	assert.Error(t, err)
}
