package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"llmgateway/internal/manager"
	"llmgateway/pkg/types"
)

type generateCall struct {
	Key    string
	Prompt string
	Params manager.InferParams
}

type mockService struct {
	mu      sync.Mutex
	calls   []generateCall
	keys    map[string]bool
	result  manager.Result
	health  types.HealthResponse
	models  types.ModelsResponse
	preload func(keys []string) map[string]string
	genCtx  context.Context
}

func newMockService() *mockService {
	return &mockService{
		keys:   map[string]bool{"llama-scout": true, "codellama-70b": true, "phind-codellama": true},
		result: manager.Ok("generated"),
	}
}

func (m *mockService) Generate(ctx context.Context, key, prompt string, params manager.InferParams) manager.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, generateCall{Key: key, Prompt: prompt, Params: params})
	m.genCtx = ctx
	return m.result
}

func (m *mockService) HasModel(key string) bool { return m.keys[key] }

func (m *mockService) Models() types.ModelsResponse { return m.models }

func (m *mockService) Health(ctx context.Context) types.HealthResponse { return m.health }

func (m *mockService) Preload(ctx context.Context, keys []string) map[string]string {
	if m.preload != nil {
		return m.preload(keys)
	}
	return map[string]string{}
}

func (m *mockService) Calls() []generateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generateCall(nil), m.calls...)
}

var testRoutes = Routes{
	Complete: "phind-codellama",
	Chat:     "llama-scout",
	Explain:  "llama-scout",
	Refactor: "codellama-70b",
	Reason:   "llama-scout",
	Generate: "codellama-70b",
}

// postJSON serves a JSON POST through h and returns the recorder.
func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("json: %v body=%q", err, w.Body.String())
	}
	return v
}
