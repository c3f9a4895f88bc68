package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"

	"llmgateway/internal/manager"
	"llmgateway/internal/prompt"
	"llmgateway/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Generate(ctx context.Context, key, prompt string, params manager.InferParams) manager.Result
	HasModel(key string) bool
	Models() types.ModelsResponse
	Health(ctx context.Context) types.HealthResponse
	Preload(ctx context.Context, keys []string) map[string]string
}

// Endpoints lists the routes served by NewMux, for the startup banner.
var Endpoints = []string{
	"POST /complete", "POST /explain", "POST /refactor", "POST /reason",
	"POST /generate", "POST /chat", "POST /preload",
	"GET /health", "GET /models", "GET /healthz", "GET /metrics",
}

type server struct {
	svc    Service
	routes Routes
}

// NewMux builds the gateway router. SetLogger and the other package setters
// must be called before NewMux.
func NewMux(svc Service, routes Routes) http.Handler {
	s := &server{svc: svc, routes: routes}
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				w.Header().Set("X-Request-Id", rid)
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/complete", s.handleComplete)
	r.Post("/explain", s.handleExplain)
	r.Post("/refactor", s.handleRefactor)
	r.Post("/reason", s.handleReason)
	r.Post("/generate", s.handleGenerate)
	r.Post("/chat", s.handleChat)
	r.Post("/preload", s.handlePreload)
	r.Get("/health", s.handleHealth)
	r.Get("/models", s.handleModels)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// generate runs one task generation under a context joined with the server
// base context, logging the rendered prompt at debug level.
func (s *server) generate(r *http.Request, key, text string, sp prompt.Sampling) manager.Result {
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	if requestLogLevel(r) >= LevelDebug {
		hlog.FromRequest(r).Info().Str("model", key).Str("prompt", text).Msg("rendered prompt")
	}
	res := s.svc.Generate(ctx, key, text, manager.InferParams{MaxTokens: sp.MaxTokens, Temperature: sp.Temperature})
	if !res.OK() {
		recordTaskFailure(routePatternOrPath(r), string(res.Kind()))
		if requestLogLevel(r) >= LevelError {
			hlog.FromRequest(r).Error().Str("model", key).Str("kind", string(res.Kind())).
				Str("error", res.Err.Message).Msg("generation failed")
		}
	}
	return res
}

// @Summary      Code completion
// @Description  Completes code from a prefix. A non-empty suffix switches to fill-in-the-middle.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      types.CompleteRequest  true  "Completion request"
// @Success      200   {object}  types.CompleteResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      415   {object}  types.ErrorResponse
// @Router       /complete [post]
func (s *server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req types.CompleteRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	key := types.StringOr(req.Model, s.routes.Complete)
	if !s.svc.HasModel(key) {
		writeJSONError(w, http.StatusBadRequest, "Unknown model: "+key)
		return
	}
	text, kind := prompt.Completion(req.Prefix, req.Suffix, types.StringOr(req.Language, prompt.DefaultLanguage))
	sp := prompt.Complete
	if req.MaxTokens > 0 {
		sp.MaxTokens = req.MaxTokens
	}
	res := s.generate(r, key, text, sp)
	writeJSON(w, http.StatusOK, types.CompleteResponse{
		Completion: res.Payload(),
		Model:      key,
		Type:       kind,
		ErrorKind:  string(res.Kind()),
	})
}

// @Summary      Explain code
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      types.ExplainRequest  true  "Explain request"
// @Success      200   {object}  types.ExplainResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /explain [post]
func (s *server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req types.ExplainRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	key := s.routes.Explain
	text := prompt.Explanation(req.Code, types.StringOr(req.Language, prompt.DefaultLanguage))
	res := s.generate(r, key, text, prompt.Explain)
	writeJSON(w, http.StatusOK, types.ExplainResponse{
		Explanation: res.Payload(),
		Model:       key,
		ErrorKind:   string(res.Kind()),
	})
}

// @Summary      Refactor code
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      types.RefactorRequest  true  "Refactor request"
// @Success      200   {object}  types.RefactorResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /refactor [post]
func (s *server) handleRefactor(w http.ResponseWriter, r *http.Request) {
	var req types.RefactorRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	key := s.routes.Refactor
	text := prompt.Refactoring(req.Code,
		types.StringOr(req.Language, prompt.DefaultLanguage),
		types.StringOr(req.Instructions, prompt.DefaultInstructions))
	res := s.generate(r, key, text, prompt.Refactor)
	writeJSON(w, http.StatusOK, types.RefactorResponse{
		Refactored: res.Payload(),
		Model:      key,
		ErrorKind:  string(res.Kind()),
	})
}

// @Summary      Domain reasoning
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      types.ReasonRequest  true  "Reason request"
// @Success      200   {object}  types.ReasonResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /reason [post]
func (s *server) handleReason(w http.ResponseWriter, r *http.Request) {
	var req types.ReasonRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	key := s.routes.Reason
	res := s.generate(r, key, prompt.Reasoning(req.Question, req.Context), prompt.Reason)
	writeJSON(w, http.StatusOK, types.ReasonResponse{
		Response:  res.Payload(),
		Model:     key,
		ErrorKind: string(res.Kind()),
	})
}

// @Summary      Generate code
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      types.GenerateRequest  true  "Generate request"
// @Success      200   {object}  types.GenerateResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /generate [post]
func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	key := s.routes.Generate
	lang := types.StringOr(req.Language, prompt.DefaultLanguage)
	text := prompt.Generation(req.Description, lang, types.StringOr(req.Framework, prompt.DefaultFramework))
	res := s.generate(r, key, text, prompt.Generate)
	writeJSON(w, http.StatusOK, types.GenerateResponse{
		Code:      res.Payload(),
		Model:     key,
		Language:  lang,
		ErrorKind: string(res.Kind()),
	})
}

// @Summary      Multi-turn chat
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      types.ChatRequest  true  "Chat request"
// @Success      200   {object}  types.ChatResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /chat [post]
func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	key := types.StringOr(req.Model, s.routes.Chat)
	if !s.svc.HasModel(key) {
		writeJSONError(w, http.StatusBadRequest, "Unknown model: "+key)
		return
	}
	res := s.generate(r, key, prompt.Conversation(req.Messages), prompt.Chat)
	writeJSON(w, http.StatusOK, types.ChatResponse{
		Response:  res.Payload(),
		Model:     key,
		ErrorKind: string(res.Kind()),
	})
}

// @Summary      Preload models
// @Description  Loads in-process models. An empty body preloads all of them.
// @Tags         models
// @Accept       json
// @Produce      json
// @Param        body  body      types.PreloadRequest  false  "Keys to preload"
// @Success      200   {object}  types.PreloadResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /preload [post]
func (s *server) handlePreload(w http.ResponseWriter, r *http.Request) {
	var req types.PreloadRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	writeJSON(w, http.StatusOK, types.PreloadResponse{Results: s.svc.Preload(ctx, req.Models)})
}

// @Summary      Gateway health
// @Description  Reports load state of in-process models and daemon availability of remote ones.
// @Tags         system
// @Produce      json
// @Success      200  {object}  types.HealthResponse
// @Router       /health [get]
func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Health(r.Context()))
}

// @Summary      List models
// @Tags         models
// @Produce      json
// @Success      200  {object}  types.ModelsResponse
// @Router       /models [get]
func (s *server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Models())
}
