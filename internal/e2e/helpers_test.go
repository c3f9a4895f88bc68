package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"llmgateway/internal/config"
	"llmgateway/internal/httpapi"
	"llmgateway/internal/manager"
)

// echoAdapter is an in-process runtime that answers every prompt with a
// fixed text and counts loads.
type echoAdapter struct {
	loads atomic.Int32
	reply string
}

func (a *echoAdapter) Load(string) (manager.InferSession, error) {
	a.loads.Add(1)
	return echoSession{reply: a.reply}, nil
}

type echoSession struct{ reply string }

func (s echoSession) Generate(ctx context.Context, prompt string, params manager.InferParams) (string, error) {
	return s.reply, ctx.Err()
}

func (echoSession) Close() error { return nil }

// fakeDaemon is an Ollama-compatible daemon recording generate requests.
type fakeDaemon struct {
	*httptest.Server
	mu       sync.Mutex
	requests []map[string]any
	reply    string
}

func newFakeDaemon(t *testing.T, reply string) *fakeDaemon {
	t.Helper()
	d := &fakeDaemon{reply: reply}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"phind-codellama:34b-v2-fp16"}]}`))
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		d.mu.Lock()
		d.requests = append(d.requests, req)
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]any{"model": req["model"], "response": d.reply, "done": true})
	})
	d.Server = httptest.NewServer(mux)
	t.Cleanup(d.Close)
	return d
}

func (d *fakeDaemon) Requests() []map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]map[string]any(nil), d.requests...)
}

// newGateway starts the full stack: default model table, real manager and
// daemon client, in-process runtime replaced by adapter.
func newGateway(t *testing.T, adapter manager.InferenceAdapter, daemonURL string) (*httptest.Server, *manager.Manager) {
	t.Helper()
	cfg := config.Default()
	cfg.DaemonURL = daemonURL
	reg, err := cfg.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Registry:      reg,
		Adapter:       adapter,
		DaemonURL:     daemonURL,
		DaemonTimeout: 5 * time.Second,
		ProbeTimeout:  time.Second,
	})
	t.Cleanup(func() { _ = mgr.Close() })
	srv := httptest.NewServer(httpapi.NewMux(mgr, httpapi.Routes(cfg.Routes)))
	t.Cleanup(srv.Close)
	return srv, mgr
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

func httpPost(t *testing.T, url string, body any) (*http.Response, []byte) {
	t.Helper()
	b, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp, out
}
