// Package manager owns the model registry at runtime: lazy loading of
// in-process models, backend selection and generation. It is structured into
// small files by concern:
//
//   - manager.go: core Manager type, constructor, Close.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - result.go: the tagged generation Result (Ok / Err with an ErrorKind).
//   - errors.go: error types and helpers (IsModelNotFound, IsDependencyUnavailable).
//   - ensure.go: EnsureLoaded and Preload; concurrent loads of one key are
//     collapsed into a single attempt.
//   - infer.go: Generate, routing a prompt to the in-process or daemon backend.
//   - status_report.go: Models and Health projections for the HTTP layer.
//   - sanity.go: startup checks for the in-process runtime and model files.
//   - metrics.go: Prometheus counters for loads and generations.
//
// Build tags and runtimes:
//
//   - In-process llama:
//     Uses the go-llama.cpp adapter. Enabled with `-tags=llama`.
//     Files: adapter_llama.go, llama_cgo.go (linker rpath hints).
//     A no-CGO stub exists when the tag is not set: adapter_llama_stub.go.
//     Without the tag in-process models report runtime_unavailable.
//
//   - Remote daemon:
//     adapter_ollama.go talks to a local Ollama-compatible daemon over HTTP
//     (/api/generate, /api/tags). Always built.
package manager
