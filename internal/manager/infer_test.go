package manager

import (
	"context"
	"strings"
	"testing"
)

func TestGenerate_UnknownModel(t *testing.T) {
	a := &fakeAdapter{}
	d := &fakeDaemon{}
	m := newTestManager(t, a, d)
	res := m.Generate(testCtx(t), "gpt-x", "p", InferParams{MaxTokens: 10})
	if res.OK() || res.Kind() != KindModelNotFound {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Payload() != "Error: Unknown model: gpt-x" {
		t.Fatalf("payload: %q", res.Payload())
	}
	if a.loads.Load() != 0 || len(d.Calls()) != 0 {
		t.Fatalf("no backend call expected")
	}
}

func TestGenerate_InProcessLoadsLazily(t *testing.T) {
	a := &fakeAdapter{text: "42"}
	m := newTestManager(t, a, &fakeDaemon{})
	ctx := testCtx(t)
	for i := 0; i < 3; i++ {
		res := m.Generate(ctx, "llama-scout", "question", InferParams{MaxTokens: 5, Temperature: 0.5})
		if !res.OK() || res.Text != "42" {
			t.Fatalf("unexpected result: %+v", res)
		}
	}
	if a.loads.Load() != 1 {
		t.Fatalf("expected single load, got %d", a.loads.Load())
	}
	if got := a.Prompts(); len(got) != 3 || got[0] != "question" {
		t.Fatalf("prompts: %v", got)
	}
}

func TestGenerate_InProcessLoadFailure(t *testing.T) {
	m := newTestManager(t, &fakeAdapter{loadErr: errBoom}, &fakeDaemon{})
	res := m.Generate(testCtx(t), "codellama-70b", "p", InferParams{})
	if res.Kind() != KindLoadFailed {
		t.Fatalf("kind: %q", res.Kind())
	}
	if res.Payload() != "Error: Failed to load codellama-70b" {
		t.Fatalf("payload: %q", res.Payload())
	}
}

func TestGenerate_RuntimeUnavailable(t *testing.T) {
	a := &fakeAdapter{loadErr: ErrDependencyUnavailable("llama support not built")}
	m := newTestManager(t, a, &fakeDaemon{})
	res := m.Generate(testCtx(t), "llama-scout", "p", InferParams{})
	if res.Kind() != KindRuntimeUnavailable {
		t.Fatalf("kind: %q", res.Kind())
	}
	if !strings.HasPrefix(res.Payload(), "Error: Failed to load llama-scout") {
		t.Fatalf("payload: %q", res.Payload())
	}
}

func TestGenerate_InProcessGenerationError(t *testing.T) {
	m := newTestManager(t, &fakeAdapter{genErr: errBoom}, &fakeDaemon{})
	res := m.Generate(testCtx(t), "llama-scout", "p", InferParams{})
	if res.Kind() != KindGeneration || res.Err.Message != "boom" {
		t.Fatalf("unexpected: %+v", res)
	}
}

func TestGenerate_DaemonPassesLocatorAndParams(t *testing.T) {
	d := &fakeDaemon{text: "return a + b;"}
	a := &fakeAdapter{}
	m := newTestManager(t, a, d)
	res := m.Generate(testCtx(t), "phind-codellama", "<PRE> x <SUF> y <MID>", InferParams{MaxTokens: 200, Temperature: 0.2})
	if !res.OK() || res.Text != "return a + b;" {
		t.Fatalf("unexpected: %+v", res)
	}
	calls := d.Calls()
	if len(calls) != 1 {
		t.Fatalf("calls: %v", calls)
	}
	c := calls[0]
	if c.Model != "phind-codellama:34b-v2-fp16" || c.Params.MaxTokens != 200 || c.Params.Temperature != 0.2 {
		t.Fatalf("unexpected call: %+v", c)
	}
	if a.loads.Load() != 0 {
		t.Fatalf("daemon models must not trigger loads")
	}
}

func TestGenerate_DaemonErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"status", &daemonStatusError{status: 500, body: "oops"}, KindHTTPStatus},
		{"bad body", &badResponseError{msg: "no response"}, KindBadResponse},
		{"transport", errBoom, KindTransport},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newTestManager(t, &fakeAdapter{}, &fakeDaemon{err: c.err})
			res := m.Generate(testCtx(t), "phind-codellama", "p", InferParams{})
			if res.Kind() != c.want {
				t.Fatalf("kind: got %q want %q", res.Kind(), c.want)
			}
			if res.Payload() != "Error: "+c.err.Error() {
				t.Fatalf("payload: %q", res.Payload())
			}
		})
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	m := newTestManager(t, &fakeAdapter{}, &fakeDaemon{err: context.Canceled})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := m.Generate(ctx, "phind-codellama", "p", InferParams{})
	if res.Kind() != KindTransport {
		t.Fatalf("kind: %q", res.Kind())
	}
}
