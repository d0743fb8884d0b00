package external_services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
	"google.golang.org/genai"
)

const (
	modelFlash = "gemini-2.5-flash"
	modelPro   = "gemini-2.5-pro"

	clientIdleTTL = 15 * time.Minute
	// maxClients caps the per-key client cache; the least recently used client is evicted.
	maxClients    = 256
	sweepInterval = time.Minute
)

var ErrEmptyResponse = errors.New("gemini returned an empty response")

// GeminiAIService calls the Gemini API. Visitors may bring their own key, so
// one client is kept per key and dropped after it sits idle.
type GeminiAIService struct {
	clients *ttlcache.Cache[string, *genai.Client]

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

var _ usecasecontract.IAIService = (*GeminiAIService)(nil)

func NewGeminiAIService() *GeminiAIService {
	clients := ttlcache.New[string, *genai.Client](
		ttlcache.WithTTL[string, *genai.Client](clientIdleTTL),
		ttlcache.WithCapacity[string, *genai.Client](maxClients),
	)
	s := &GeminiAIService{clients: clients, done: make(chan struct{})}
	s.wg.Add(1)
	go s.sweep()
	return s
}

func (s *GeminiAIService) sweep() {
	defer s.wg.Done()
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.clients.DeleteExpired()
		case <-s.done:
			return
		}
	}
}

// Stop ends the client cache sweep and waits for it to exit.
func (s *GeminiAIService) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
	s.wg.Wait()
}

func (s *GeminiAIService) client(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	sum := sha256.Sum256([]byte(apiKey))
	id := hex.EncodeToString(sum[:])
	if item := s.clients.Get(id); item != nil {
		return item.Value(), nil
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	s.clients.Set(id, c, ttlcache.DefaultTTL)
	return c, nil
}

// GenerateText runs a plain completion. The pro model is used when a system
// instruction is given, the flash model otherwise.
func (s *GeminiAIService) GenerateText(ctx context.Context, apiKey, prompt, systemInstruction string) (string, error) {
	c, err := s.client(ctx, apiKey)
	if err != nil {
		return "", err
	}
	model := modelFlash
	var cfg *genai.GenerateContentConfig
	if systemInstruction != "" {
		model = modelPro
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		}
	}
	resp, err := c.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// generatedPromptSchema constrains the JSON the model returns.
var generatedPromptSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title": {
			Type:        genai.TypeString,
			Description: "عنوان جذاب ومختصر باللغة العربية للأمر",
		},
		"prompt_text": {
			Type:        genai.TypeString,
			Description: "نص الأمر المفصل والموجه للذكاء الاصطناعي باللغة العربية",
		},
		"tags": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "قائمة من 3 إلى 5 علامات (tags) ذات صلة باللغة العربية",
		},
		"tips": {
			Type:        genai.TypeString,
			Description: "نصيحة قصيرة للمستخدم حول كيفية استخدام الأمر بفعالية باللغة العربية",
		},
	},
	Required: []string{"title", "prompt_text", "tags"},
}

// GenerateStructuredPrompt asks the flash model for a JSON prompt draft.
func (s *GeminiAIService) GenerateStructuredPrompt(ctx context.Context, apiKey, systemInstruction, content string) (*entity.GeneratedPrompt, error) {
	c, err := s.client(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    generatedPromptSchema,
	}
	resp, err := c.Models.GenerateContent(ctx, modelFlash, genai.Text(content), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini structured generate failed: %w", err)
	}
	return decodeGeneratedPrompt(resp.Text())
}

func decodeGeneratedPrompt(raw string) (*entity.GeneratedPrompt, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	if raw == "" {
		return nil, ErrEmptyResponse
	}
	var out entity.GeneratedPrompt
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to decode generated prompt: %w", err)
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return &out, nil
}
