package types

// ChatMessage is one turn of a caller-supplied conversation.
type ChatMessage struct {
	// Speaker role (user, assistant, system).
	// example: user
	Role string `json:"role" example:"user"`
	// Message text.
	// example: How do I define a new entity?
	Content string `json:"content" example:"How do I define a new entity?"`
}

// ModelInfo is the static metadata of a registered model as returned by GET /models.
type ModelInfo struct {
	// Backend kind (in-process or remote-daemon).
	// example: in-process
	Type string `json:"type" example:"in-process"`
	// Free-text classification of the model.
	// example: reasoning
	UseCase string `json:"use_case" example:"reasoning"`
	// Whether the in-process model is loaded; null for remote-daemon models.
	Loaded *bool `json:"loaded"`
	// Model file path (in-process) or daemon-side model name (remote-daemon).
	// example: phind-codellama:34b-v2-fp16
	Name string `json:"name" example:"phind-codellama:34b-v2-fp16"`
}

// ModelHealth reports per-model readiness in GET /health.
// In-process models set Loaded, remote-daemon models set Available.
type ModelHealth struct {
	// Backend kind.
	// example: remote-daemon
	Type string `json:"type" example:"remote-daemon"`
	// Free-text classification of the model.
	// example: code_completion
	UseCase   string `json:"use_case" example:"code_completion"`
	Loaded    *bool  `json:"loaded,omitempty"`
	Available *bool  `json:"available,omitempty"`
}
