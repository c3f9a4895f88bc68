package types

// CompleteRequest is the payload for POST /complete.
type CompleteRequest struct {
	// Code before the cursor.
	// example: public int add(int a, int b) {
	Prefix string `json:"prefix" example:"public int add(int a, int b) {"`
	// Code after the cursor. A non-empty suffix switches to fill-in-the-middle.
	// example: }
	Suffix string `json:"suffix,omitempty" example:"}"`
	// Programming language. Defaults to java when absent.
	// example: java
	Language *string `json:"language,omitempty" example:"java"`
	// Model key. Defaults to the configured completion model when absent;
	// an explicit empty string is an unknown model.
	// example: phind-codellama
	Model *string `json:"model,omitempty" example:"phind-codellama"`
	// Maximum number of tokens to generate. Defaults to 200.
	// example: 200
	MaxTokens int `json:"max_tokens,omitempty" example:"200"`
}

// CompleteResponse is returned by POST /complete.
type CompleteResponse struct {
	Completion string `json:"completion"`
	Model      string `json:"model"`
	// Either "fim" or "completion".
	// example: completion
	Type      string `json:"type" example:"completion"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// ExplainRequest is the payload for POST /explain.
type ExplainRequest struct {
	// example: int x = 1;
	Code string `json:"code" example:"int x = 1;"`
	// example: java
	Language *string `json:"language,omitempty" example:"java"`
}

// ExplainResponse is returned by POST /explain.
type ExplainResponse struct {
	Explanation string `json:"explanation"`
	Model       string `json:"model"`
	ErrorKind   string `json:"error_kind,omitempty"`
}

// RefactorRequest is the payload for POST /refactor.
type RefactorRequest struct {
	Code     string  `json:"code"`
	Language *string `json:"language,omitempty"`
	// Free-form refactoring instructions. A generic quality improvement is used when absent.
	// example: Extract the validation into a helper method
	Instructions *string `json:"instructions,omitempty" example:"Extract the validation into a helper method"`
}

// RefactorResponse is returned by POST /refactor.
type RefactorResponse struct {
	Refactored string `json:"refactored"`
	Model      string `json:"model"`
	ErrorKind  string `json:"error_kind,omitempty"`
}

// ReasonRequest is the payload for POST /reason.
type ReasonRequest struct {
	// example: Should order approval run as a SECA or a service group?
	Question string `json:"question" example:"Should order approval run as a SECA or a service group?"`
	Context  string `json:"context,omitempty"`
}

// ReasonResponse is returned by POST /reason and POST /chat.
type ReasonResponse struct {
	Response  string `json:"response"`
	Model     string `json:"model"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// GenerateRequest is the payload for POST /generate.
type GenerateRequest struct {
	// example: A service that archives closed invoices older than a year
	Description string `json:"description" example:"A service that archives closed invoices older than a year"`
	Language    *string `json:"language,omitempty"`
	// Target framework. Defaults to OFBiz.
	// example: OFBiz
	Framework *string `json:"framework,omitempty" example:"OFBiz"`
}

// GenerateResponse is returned by POST /generate.
type GenerateResponse struct {
	Code      string `json:"code"`
	Model     string `json:"model"`
	Language  string `json:"language"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// ChatRequest is the payload for POST /chat.
type ChatRequest struct {
	// Conversation so far, oldest first.
	Messages []ChatMessage `json:"messages"`
	// Model key. Defaults to the configured chat model when absent.
	// example: llama-scout
	Model *string `json:"model,omitempty" example:"llama-scout"`
}

// ChatResponse is returned by POST /chat.
type ChatResponse = ReasonResponse

// PreloadRequest is the payload for POST /preload.
type PreloadRequest struct {
	// Model keys to load. Defaults to every in-process model when absent;
	// an empty list loads nothing.
	// example: ["llama-scout"]
	Models []string `json:"models,omitempty" example:"llama-scout"`
}

// PreloadResponse maps each requested key to "loaded", "failed" or "not found or not applicable".
type PreloadResponse struct {
	Results map[string]string `json:"results"`
}

// ModelsResponse wraps the registry metadata returned by GET /models.
type ModelsResponse struct {
	Models map[string]ModelInfo `json:"models"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// example: healthy
	Status string `json:"status" example:"healthy"`
	// Whether this binary was built with the in-process runtime.
	InProcessRuntime bool                   `json:"in_process_runtime"`
	Models           map[string]ModelHealth `json:"models"`
}

// Optional returns a pointer to s, or nil for an empty string. Request
// fields left nil are omitted and take the gateway's default.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringOr returns *p, or def when the field was absent.
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: Unknown model: gpt-x
	Error string `json:"error" example:"Unknown model: gpt-x"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
