package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/mikiasgoitom/Prompaty/internal/handler/http"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/mocks"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

type testDeps struct {
	prompts   *mocks.MockPromptUsecase
	posts     *mocks.MockPostUsecase
	likes     *mocks.MockLikeUsecase
	reactions *mocks.MockReactionUsecase
	ai        *mocks.MockAIUsecase
	admin     *mocks.MockAdminUsecase
}

func newTestDeps() *testDeps {
	return &testDeps{
		prompts:   mocks.NewMockPromptUsecase(),
		posts:     mocks.NewMockPostUsecase(),
		likes:     mocks.NewMockLikeUsecase(),
		reactions: mocks.NewMockReactionUsecase(),
		ai:        &mocks.MockAIUsecase{},
		admin:     mocks.NewMockAdminUsecase(),
	}
}

func setupRouter(d *testDeps) *gin.Engine {
	r := gin.New()
	handler.NewRouter(d.prompts, d.posts, d.likes, d.reactions, d.ai, d.admin, handler.RouterOptions{
		AllowOrigins: []string{"http://localhost:5173"},
	}).SetupRoutes(r)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
