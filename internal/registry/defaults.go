package registry

// Well-known model keys of the built-in table.
const (
	KeyReasoning  = "llama-scout"
	KeyCodeGen    = "codellama-70b"
	KeyCompletion = "phind-codellama"
)

// Defaults returns the built-in model table used when no config file names models.
func Defaults() []Descriptor {
	return []Descriptor{
		{
			Key:     KeyReasoning,
			Kind:    InProcess,
			Locator: "~/models/llm/Llama-4-Scout-17B-16E-Instruct-Q8_0.gguf",
			UseCase: "reasoning",
		},
		{
			Key:     KeyCodeGen,
			Kind:    InProcess,
			Locator: "~/models/llm/CodeLlama-70b-Instruct-Q4_K_M.gguf",
			UseCase: "code_generation",
		},
		{
			Key:     KeyCompletion,
			Kind:    RemoteDaemon,
			Locator: "phind-codellama:34b-v2-fp16",
			UseCase: "code_completion",
		},
	}
}
