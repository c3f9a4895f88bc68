package manager

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"llmgateway/internal/registry"
)

// fakeAdapter is a lightweight in-memory adapter used for tests. It counts
// loads so tests can assert how many underlying attempts ran.
type fakeAdapter struct {
	loads   atomic.Int32
	loadErr error
	// gate, when set, blocks Load until closed.
	gate   chan struct{}
	text   string
	genErr error

	mu      sync.Mutex
	prompts []string
	closed  int
}

func (f *fakeAdapter) Load(modelPath string) (InferSession, error) {
	f.loads.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return &fakeSession{f: f}, nil
}

func (f *fakeAdapter) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

type fakeSession struct{ f *fakeAdapter }

func (s *fakeSession) Generate(ctx context.Context, prompt string, params InferParams) (string, error) {
	s.f.mu.Lock()
	s.f.prompts = append(s.f.prompts, prompt)
	s.f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.f.genErr != nil {
		return "", s.f.genErr
	}
	return s.f.text, nil
}

func (s *fakeSession) Close() error {
	s.f.mu.Lock()
	s.f.closed++
	s.f.mu.Unlock()
	return nil
}

// fakeDaemon records calls and returns canned answers.
type fakeDaemon struct {
	mu       sync.Mutex
	calls    []fakeDaemonCall
	text     string
	err      error
	probeErr error
	probes   atomic.Int32
}

type fakeDaemonCall struct {
	Model  string
	Prompt string
	Params InferParams
}

func (d *fakeDaemon) Generate(ctx context.Context, model, prompt string, params InferParams) (string, error) {
	d.mu.Lock()
	d.calls = append(d.calls, fakeDaemonCall{Model: model, Prompt: prompt, Params: params})
	d.mu.Unlock()
	if d.err != nil {
		return "", d.err
	}
	return d.text, nil
}

func (d *fakeDaemon) Probe(ctx context.Context) error {
	d.probes.Add(1)
	return d.probeErr
}

func (d *fakeDaemon) Calls() []fakeDaemonCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]fakeDaemonCall(nil), d.calls...)
}

// testRegistry mirrors the built-in table with fake locators.
func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New([]registry.Descriptor{
		{Key: "llama-scout", Kind: registry.InProcess, Locator: "/models/scout.gguf", UseCase: "reasoning"},
		{Key: "codellama-70b", Kind: registry.InProcess, Locator: "/models/codellama.gguf", UseCase: "code_generation"},
		{Key: "phind-codellama", Kind: registry.RemoteDaemon, Locator: "phind-codellama:34b-v2-fp16", UseCase: "code_completion"},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return r
}

func newTestManager(t *testing.T, a *fakeAdapter, d *fakeDaemon) *Manager {
	t.Helper()
	m := NewWithConfig(ManagerConfig{Registry: testRegistry(t), Adapter: a, Daemon: d})
	t.Cleanup(func() { _ = m.Close() })
	return m
}

var errBoom = errors.New("boom")

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}
