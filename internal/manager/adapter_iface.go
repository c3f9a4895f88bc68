package manager

import "context"

// InferenceAdapter abstracts the in-process model runtime used by the Manager.
type InferenceAdapter interface {
	// Load materializes the model stored at modelPath. The returned session
	// owns the model and tokenizer until Close.
	Load(modelPath string) (InferSession, error)
}

// InferSession is a loaded in-process model.
type InferSession interface {
	// Generate runs one blocking completion for prompt. Implementations must
	// stop early when ctx is canceled. Sessions are not safe for concurrent use.
	Generate(ctx context.Context, prompt string, params InferParams) (string, error)
	// Close releases the model and tokenizer.
	Close() error
}

// DaemonClient abstracts the local inference daemon reached over HTTP.
type DaemonClient interface {
	// Generate runs a non-streaming completion with the daemon-side model name.
	Generate(ctx context.Context, model, prompt string, params InferParams) (string, error)
	// Probe returns nil when the daemon answers its model listing with 200.
	Probe(ctx context.Context) error
}

// InferParams captures the sampling parameters passed to a backend.
type InferParams struct {
	MaxTokens   int
	Temperature float32
}
