package manager

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"llmgateway/internal/registry"
)

// instance tracks the load state of one in-process model. loaded flips from
// false to true at most once; session is owned by the instance until Close.
type instance struct {
	desc     registry.Descriptor
	loaded   bool
	session  InferSession
	lastErr  string
	loadedAt time.Time
	// genMu serializes generations: a llama context is single-threaded.
	genMu sync.Mutex
}

type Manager struct {
	mu        sync.RWMutex
	reg       *registry.Registry
	instances map[string]*instance
	adapter   InferenceAdapter
	daemon    DaemonClient
	loads     singleflight.Group

	probeTimeout time.Duration

	log       zerolog.Logger
	publisher EventPublisher
}

// New builds a Manager for reg with the llama adapter of this build and an
// Ollama client for daemonURL.
func New(reg *registry.Registry, daemonURL string) *Manager {
	// Delegate to NewWithConfig to centralize defaults
	return NewWithConfig(ManagerConfig{
		Registry:  reg,
		DaemonURL: daemonURL,
	})
}

// SetEventPublisher installs a publisher for lifecycle events; nil disables events.
func (m *Manager) SetEventPublisher(p EventPublisher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p == nil {
		m.publisher = noopPublisher{}
		return
	}
	m.publisher = p
}

func (m *Manager) publish(e Event) {
	m.mu.RLock()
	p := m.publisher
	m.mu.RUnlock()
	p.Publish(e)
}

// Registry returns the registry the manager serves.
func (m *Manager) Registry() *registry.Registry { return m.reg }

// HasModel reports whether key is registered.
func (m *Manager) HasModel(key string) bool { return m.reg.Has(key) }

// IsLoaded reports whether the in-process model key is loaded. Remote and
// unknown keys report false.
func (m *Manager) IsLoaded(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inst, ok := m.instances[key]
	return ok && inst.loaded
}

// Close frees every loaded model. The manager must not be used afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	insts := make([]*instance, 0, len(m.instances))
	for _, inst := range m.instances {
		insts = append(insts, inst)
	}
	m.mu.Unlock()

	var errs []error
	for _, inst := range insts {
		// Wait for an in-flight generation on this model to finish.
		inst.genMu.Lock()
		m.mu.Lock()
		sess := inst.session
		inst.session = nil
		inst.loaded = false
		m.mu.Unlock()
		if sess != nil {
			if err := sess.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", inst.desc.Key, err))
			} else {
				m.log.Debug().Str("model", inst.desc.Key).Msg("model freed")
			}
		}
		inst.genMu.Unlock()
	}
	return errors.Join(errs...)
}
