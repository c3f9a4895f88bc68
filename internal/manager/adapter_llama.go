//go:build llama

package manager

import (
	"context"
	"errors"

	llama "github.com/go-skynet/go-llama.cpp"

	"llmgateway/internal/common/fsutil"
)

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = true

// llamaAdapter holds global config used to initialize a model instance
type llamaAdapter struct {
	ctxSize int
	threads int
}

func NewLlamaAdapter(ctxSize, threads int) InferenceAdapter {
	return &llamaAdapter{ctxSize: ctxSize, threads: threads}
}

// llamaSession owns the loaded model. go-llama.cpp keeps the tokenizer in the
// same handle, so freeing the model releases both.
type llamaSession struct {
	model   *llama.LLama
	threads int
}

func (a *llamaAdapter) Load(modelPath string) (InferSession, error) {
	if err := fsutil.CheckModelFile(modelPath); err != nil {
		return nil, err
	}
	mo := []llama.ModelOption{
		llama.SetContext(a.ctxSize),
	}
	m, err := llama.New(modelPath, mo...)
	if err != nil {
		return nil, err
	}
	return &llamaSession{model: m, threads: a.threads}, nil
}

func (s *llamaSession) Generate(ctx context.Context, prompt string, params InferParams) (string, error) {
	if s.model == nil {
		return "", errors.New("llama model not initialized")
	}
	// Stop predicting once the caller goes away.
	s.model.SetTokenCallback(func(string) bool {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	})
	text, err := s.model.Predict(prompt, predictOptions(params, s.threads)...)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return text, nil
}

func (s *llamaSession) Close() error {
	if s.model != nil {
		s.model.Free()
		s.model = nil
	}
	return nil
}

// predictOptions converts our adapter params into go-llama.cpp options
func predictOptions(params InferParams, threads int) []llama.PredictOption {
	po := []llama.PredictOption{
		llama.SetTokens(max(1, params.MaxTokens)),
		llama.SetThreads(max(1, threads)),
		llama.SetTopP(llama.DefaultOptions.TopP),
		llama.SetTopK(llama.DefaultOptions.TopK),
		llama.SetPenalty(llama.DefaultOptions.Penalty),
	}
	temp := params.Temperature
	if temp <= 0 {
		temp = llama.DefaultOptions.Temperature
	}
	return append(po, llama.SetTemperature(temp))
}
