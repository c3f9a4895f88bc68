package manager

import (
	"context"
	"errors"
	"time"

	"llmgateway/internal/registry"
)

// Generate runs prompt on the model registered under key and returns the
// generated text or a classified failure. In-process models are loaded on
// first use. Generate never panics on backend errors; every failure is
// reported through the Result.
func (m *Manager) Generate(ctx context.Context, key, prompt string, params InferParams) Result {
	d, ok := m.reg.Get(key)
	if !ok {
		return Err(KindModelNotFound, "Unknown model: "+key)
	}
	m.log.Debug().Str("model", key).Int("max_tokens", params.MaxTokens).
		Float32("temperature", params.Temperature).Str("prompt", prompt).Msg("generate")

	start := time.Now()
	var res Result
	switch d.Kind {
	case registry.InProcess:
		res = m.generateInProcess(ctx, d, prompt, params)
	default:
		res = m.generateDaemon(ctx, d, prompt, params)
	}
	outcome := "ok"
	if !res.OK() {
		outcome = string(res.Kind())
		m.log.Warn().Str("model", key).Str("kind", outcome).Str("error", res.Err.Message).Msg("generation failed")
	}
	generationsTotal.WithLabelValues(key, string(d.Kind), outcome).Inc()
	generationDuration.WithLabelValues(key, string(d.Kind)).Observe(time.Since(start).Seconds())
	return res
}

func (m *Manager) generateInProcess(ctx context.Context, d registry.Descriptor, prompt string, params InferParams) Result {
	if err := m.ensureLoaded(ctx, d.Key); err != nil {
		if IsDependencyUnavailable(err) {
			return Err(KindRuntimeUnavailable, "Failed to load "+d.Key+": "+err.Error())
		}
		return Err(KindLoadFailed, "Failed to load "+d.Key)
	}
	m.mu.RLock()
	inst := m.instances[d.Key]
	m.mu.RUnlock()

	inst.genMu.Lock()
	defer inst.genMu.Unlock()
	m.mu.RLock()
	sess := inst.session
	m.mu.RUnlock()
	if sess == nil {
		// Freed by Close while we waited.
		return Err(KindLoadFailed, "Failed to load "+d.Key)
	}
	text, err := sess.Generate(ctx, prompt, params)
	if err != nil {
		return Err(KindGeneration, err.Error())
	}
	return Ok(text)
}

func (m *Manager) generateDaemon(ctx context.Context, d registry.Descriptor, prompt string, params InferParams) Result {
	text, err := m.daemon.Generate(ctx, d.Locator, prompt, params)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return Err(KindTransport, "request canceled")
		}
		return Err(classifyDaemonError(err), err.Error())
	}
	return Ok(text)
}
