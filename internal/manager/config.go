package manager

import (
	"time"

	"github.com/rs/zerolog"

	"llmgateway/internal/registry"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultDaemonURL     = "http://localhost:11434"
	defaultDaemonTimeout = 120 * time.Second
	defaultProbeTimeout  = 5 * time.Second
	defaultLlamaCtx      = 4096
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Registry *registry.Registry
	// Adapter loads in-process models. Nil selects the llama adapter for this
	// build (real with -tags=llama, stub otherwise).
	Adapter InferenceAdapter
	// Daemon reaches remote-daemon models. Nil builds an Ollama client for DaemonURL.
	Daemon        DaemonClient
	DaemonURL     string
	DaemonTimeout time.Duration
	ProbeTimeout  time.Duration
	// Inference / llama.cpp configuration
	LlamaCtx     int
	LlamaThreads int
	Logger       *zerolog.Logger
	Publisher    EventPublisher
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		reg:       cfg.Registry,
		instances: make(map[string]*instance),
		publisher: cfg.Publisher,
		log:       zerolog.Nop(),
	}
	if m.reg == nil {
		m.reg = &registry.Registry{}
	}
	if cfg.Logger != nil {
		m.log = cfg.Logger.With().Str("component", "manager").Logger()
	}
	if m.publisher == nil {
		m.publisher = noopPublisher{}
	}
	// Apply defaults if unset
	if cfg.ProbeTimeout <= 0 {
		m.probeTimeout = defaultProbeTimeout
	} else {
		m.probeTimeout = cfg.ProbeTimeout
	}
	if cfg.LlamaCtx <= 0 {
		cfg.LlamaCtx = defaultLlamaCtx
	}
	m.adapter = cfg.Adapter
	if m.adapter == nil {
		m.adapter = NewLlamaAdapter(cfg.LlamaCtx, cfg.LlamaThreads)
	}
	m.daemon = cfg.Daemon
	if m.daemon == nil {
		url := cfg.DaemonURL
		if url == "" {
			url = defaultDaemonURL
		}
		timeout := cfg.DaemonTimeout
		if timeout <= 0 {
			timeout = defaultDaemonTimeout
		}
		m.daemon = NewOllamaClient(url, timeout)
	}
	for _, d := range m.reg.List() {
		if d.Kind == registry.InProcess {
			m.instances[d.Key] = &instance{desc: d}
		}
	}
	return m
}
