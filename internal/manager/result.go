package manager

// ErrorKind classifies a failed generation.
type ErrorKind string

const (
	KindModelNotFound      ErrorKind = "model_not_found"
	KindLoadFailed         ErrorKind = "load_failed"
	KindRuntimeUnavailable ErrorKind = "runtime_unavailable"
	KindTransport          ErrorKind = "transport"
	KindHTTPStatus         ErrorKind = "http_status"
	KindBadResponse        ErrorKind = "bad_response"
	KindGeneration         ErrorKind = "generation"
)

// errorPrefix marks failure payloads on the wire.
const errorPrefix = "Error: "

// Failure describes why a generation produced no text.
type Failure struct {
	Kind    ErrorKind
	Message string
}

func (f *Failure) Error() string { return string(f.Kind) + ": " + f.Message }

// Result is the outcome of one generation: either Ok with the generated text
// or Err with a Failure. Callers branch on OK instead of inspecting the text.
type Result struct {
	Text string
	Err  *Failure
}

// Ok wraps generated text.
func Ok(text string) Result { return Result{Text: text} }

// Err builds a failed result.
func Err(kind ErrorKind, msg string) Result {
	return Result{Err: &Failure{Kind: kind, Message: msg}}
}

// OK reports whether the generation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Kind returns the failure kind, or "" on success.
func (r Result) Kind() ErrorKind {
	if r.Err == nil {
		return ""
	}
	return r.Err.Kind
}

// Payload renders the result into the single text field used by the HTTP
// responses: the generated text, or "Error: <message>" on failure.
func (r Result) Payload() string {
	if r.Err != nil {
		return errorPrefix + r.Err.Message
	}
	return r.Text
}
