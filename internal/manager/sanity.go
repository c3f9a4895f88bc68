package manager

import (
	"sort"

	"llmgateway/internal/common/fsutil"
	"llmgateway/internal/registry"
)

// SanityReport describes startup checks for the in-process runtime.
type SanityReport struct {
	LlamaBuilt bool `json:"llama_built"`
	// MissingModels maps in-process keys to the reason their file is unusable.
	MissingModels map[string]string `json:"missing_models,omitempty"`
}

// Warnings returns human-readable problems, sorted by model key.
func (r SanityReport) Warnings() []string {
	var out []string
	if !r.LlamaBuilt {
		out = append(out, llamaMissingWarning)
	}
	keys := make([]string, 0, len(r.MissingModels))
	for k := range r.MissingModels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+": "+r.MissingModels[k])
	}
	return out
}

const llamaMissingWarning = "in-process runtime not built; in-process models will be unavailable (rebuild with -tags=llama)"

// SanityCheck validates that the in-process runtime is present and every
// in-process model file exists. It does not mutate state and is safe to call
// at any time. Problems are reported, never fatal.
func (m *Manager) SanityCheck() SanityReport {
	r := SanityReport{LlamaBuilt: llamaBuilt}
	for _, d := range m.reg.List() {
		if d.Kind != registry.InProcess {
			continue
		}
		if err := fsutil.CheckModelFile(d.Locator); err != nil {
			if r.MissingModels == nil {
				r.MissingModels = make(map[string]string)
			}
			r.MissingModels[d.Key] = err.Error()
		}
	}
	return r
}

// LogSanity runs SanityCheck and logs each problem as a warning.
func (m *Manager) LogSanity() SanityReport {
	r := m.SanityCheck()
	for _, w := range r.Warnings() {
		m.log.Warn().Msg(w)
	}
	return r
}
