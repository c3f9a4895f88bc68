package manager

import (
	"context"

	"llmgateway/internal/registry"
	"llmgateway/pkg/types"
)

// Models returns the static listing for /models: every registered key with
// its kind, use case, load state (nil for daemon models) and locator.
func (m *Manager) Models() types.ModelsResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp := types.ModelsResponse{Models: make(map[string]types.ModelInfo)}
	for _, d := range m.reg.List() {
		info := types.ModelInfo{Type: string(d.Kind), UseCase: d.UseCase, Name: d.Locator}
		if inst, ok := m.instances[d.Key]; ok {
			loaded := inst.loaded
			info.Loaded = &loaded
		}
		resp.Models[d.Key] = info
	}
	return resp
}

// Health builds the /health report. Daemon models share a single probe of the
// daemon bounded by the probe timeout; any probe error marks them unavailable.
func (m *Manager) Health(ctx context.Context) types.HealthResponse {
	resp := types.HealthResponse{
		Status:           "healthy",
		InProcessRuntime: llamaBuilt,
		Models:           make(map[string]types.ModelHealth),
	}
	var available *bool
	if len(m.reg.KeysOf(registry.RemoteDaemon)) > 0 {
		pctx, cancel := context.WithTimeout(ctx, m.probeTimeout)
		err := m.daemon.Probe(pctx)
		cancel()
		if err != nil {
			m.log.Debug().Err(err).Msg("daemon probe failed")
		}
		ok := err == nil
		available = &ok
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.reg.List() {
		h := types.ModelHealth{Type: string(d.Kind), UseCase: d.UseCase}
		if inst, ok := m.instances[d.Key]; ok {
			loaded := inst.loaded
			h.Loaded = &loaded
		} else {
			h.Available = available
		}
		resp.Models[d.Key] = h
	}
	return resp
}
