package external_services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDecodeGeneratedPrompt(t *testing.T) {
	raw := "```json\n{\"title\":\"عنوان\",\"prompt_text\":\"نص\",\"tags\":[\"أ\",\"ب\",\"ج\"],\"tips\":\"نصيحة\"}\n```"
	got, err := decodeGeneratedPrompt(raw)
	require.NoError(t, err)
	assert.Equal(t, "عنوان", got.Title)
	assert.Equal(t, "نص", got.PromptText)
	assert.Len(t, got.Tags, 3)
	assert.Equal(t, "نصيحة", got.Tips)
}

func TestDecodeGeneratedPrompt_MissingTags(t *testing.T) {
	got, err := decodeGeneratedPrompt(`{"title":"t","prompt_text":"p"}`)
	require.NoError(t, err)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestDecodeGeneratedPrompt_Invalid(t *testing.T) {
	_, err := decodeGeneratedPrompt("")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = decodeGeneratedPrompt("not json")
	assert.Error(t, err)
}

func TestGeminiAIService_ClientCacheIsBounded(t *testing.T) {
	s := NewGeminiAIService()
	defer s.Stop()

	for i := 0; i < maxClients+20; i++ {
		_, err := s.client(context.Background(), fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
	}

	assert.LessOrEqual(t, s.clients.Len(), maxClients)
}

func TestGeminiAIService_ReusesClientPerKey(t *testing.T) {
	s := NewGeminiAIService()
	defer s.Stop()

	first, err := s.client(context.Background(), "key")
	require.NoError(t, err)
	second, err := s.client(context.Background(), "key")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestGeminiAIService_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := NewGeminiAIService()
	s.Stop()
	s.Stop()
}
