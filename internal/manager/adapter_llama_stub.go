//go:build !llama

package manager

// This file provides a no-CGO stub for the llama adapter. It is compiled when
// the 'llama' build tag is NOT set, keeping default builds and CI CGO-free.
// The real adapter lives in adapter_llama.go (tagged 'llama').

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = false

const llamaMissing = "llama support not built (missing 'llama' build tag)"

// llamaAdapter refuses every load, so in-process models stay unloaded and
// their generations fail with runtime_unavailable.
type llamaAdapter struct {
	ctxSize int
	threads int
}

func NewLlamaAdapter(ctxSize, threads int) InferenceAdapter {
	return &llamaAdapter{ctxSize: ctxSize, threads: threads}
}

func (a *llamaAdapter) Load(string) (InferSession, error) {
	return nil, ErrDependencyUnavailable(llamaMissing)
}
