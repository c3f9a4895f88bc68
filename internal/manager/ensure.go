package manager

import (
	"context"
	"time"

	"llmgateway/internal/registry"
)

// Preload outcomes reported per requested key.
const (
	PreloadLoaded        = "loaded"
	PreloadFailed        = "failed"
	PreloadNotApplicable = "not found or not applicable"
)

// EnsureLoaded makes sure the in-process model key is loaded. It returns true
// when the model is ready, including when it was already loaded. Unknown keys
// and remote-daemon keys return false without a load attempt. Failures are
// logged and leave the model unloaded so a later call may retry.
func (m *Manager) EnsureLoaded(ctx context.Context, key string) bool {
	return m.ensureLoaded(ctx, key) == nil
}

func (m *Manager) ensureLoaded(ctx context.Context, key string) error {
	m.mu.RLock()
	inst, ok := m.instances[key]
	loaded := ok && inst.loaded
	m.mu.RUnlock()
	if !ok {
		if d, found := m.reg.Get(key); found && d.Kind == registry.RemoteDaemon {
			return errNotInProcess
		}
		return ErrModelNotFound(key)
	}
	if loaded {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	// Concurrent first loads of one key share a single attempt.
	_, err, _ := m.loads.Do(key, func() (any, error) {
		return nil, m.load(inst)
	})
	return err
}

// load performs the actual load. It runs inside the singleflight group, so at
// most one call per key is active at a time.
func (m *Manager) load(inst *instance) error {
	key := inst.desc.Key
	m.mu.RLock()
	already := inst.loaded
	m.mu.RUnlock()
	if already {
		return nil
	}

	m.publish(Event{Name: "load_start", ModelID: key})
	m.log.Info().Str("model", key).Str("path", inst.desc.Locator).Msg("loading model")
	start := time.Now()
	sess, err := m.adapter.Load(inst.desc.Locator)
	if err != nil {
		err = loadError(key, err)
		m.mu.Lock()
		inst.lastErr = err.Error()
		m.mu.Unlock()
		modelLoadsTotal.WithLabelValues(key, "failed").Inc()
		m.publish(Event{Name: "load_failed", ModelID: key, Fields: map[string]any{"error": err.Error()}})
		m.log.Error().Err(err).Str("model", key).Msg("model load failed")
		return err
	}

	m.mu.Lock()
	inst.session = sess
	inst.loaded = true
	inst.lastErr = ""
	inst.loadedAt = time.Now()
	m.mu.Unlock()
	dur := time.Since(start)
	modelLoadsTotal.WithLabelValues(key, "loaded").Inc()
	m.publish(Event{Name: "load_ready", ModelID: key, Fields: map[string]any{"duration_ms": dur.Milliseconds()}})
	m.log.Info().Str("model", key).Dur("took", dur).Msg("model loaded")
	return nil
}

// Preload loads each key in order and reports the outcome per key. A nil
// list preloads every in-process model; an empty one loads nothing. Failures
// do not roll back models loaded earlier in the same call.
func (m *Manager) Preload(ctx context.Context, keys []string) map[string]string {
	if keys == nil {
		keys = m.reg.KeysOf(registry.InProcess)
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		d, ok := m.reg.Get(k)
		if !ok || d.Kind != registry.InProcess {
			out[k] = PreloadNotApplicable
			continue
		}
		if m.EnsureLoaded(ctx, k) {
			out[k] = PreloadLoaded
		} else {
			out[k] = PreloadFailed
		}
	}
	return out
}
