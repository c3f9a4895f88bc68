package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind identifies which backend serves a model.
type Kind string

const (
	// InProcess models run inside the gateway and must be loaded before use.
	InProcess Kind = "in-process"
	// RemoteDaemon models are served by a local inference daemon over HTTP.
	RemoteDaemon Kind = "remote-daemon"
)

// ParseKind accepts the canonical names plus the short aliases used in config files.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in-process", "inprocess", "local", "llama":
		return InProcess, nil
	case "remote-daemon", "daemon", "remote", "ollama":
		return RemoteDaemon, nil
	default:
		return "", fmt.Errorf("unknown backend kind %q", s)
	}
}

// Descriptor identifies one usable model. Descriptors are immutable once registered.
type Descriptor struct {
	Key     string
	Kind    Kind
	Locator string
	UseCase string
}

// Registry is the fixed set of model descriptors built at startup.
type Registry struct {
	keys  []string
	byKey map[string]Descriptor
}

// New validates descriptors and builds a registry. Keys must be unique and
// every descriptor needs a key, a known kind and a locator.
func New(descs []Descriptor) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Descriptor, len(descs))}
	var errs []error
	for i, d := range descs {
		d.Key = strings.TrimSpace(d.Key)
		d.Locator = strings.TrimSpace(d.Locator)
		switch {
		case d.Key == "":
			errs = append(errs, fmt.Errorf("model #%d: key is required", i))
			continue
		case d.Kind != InProcess && d.Kind != RemoteDaemon:
			errs = append(errs, fmt.Errorf("model %s: unknown backend kind %q", d.Key, d.Kind))
		case d.Locator == "":
			errs = append(errs, fmt.Errorf("model %s: locator is required", d.Key))
		}
		if _, dup := r.byKey[d.Key]; dup {
			errs = append(errs, fmt.Errorf("model %s: duplicate key", d.Key))
			continue
		}
		r.byKey[d.Key] = d
		r.keys = append(r.keys, d.Key)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if len(r.keys) == 0 {
		return nil, errors.New("registry is empty")
	}
	return r, nil
}

// Get returns the descriptor for key.
func (r *Registry) Get(key string) (Descriptor, bool) {
	d, ok := r.byKey[key]
	return d, ok
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Keys returns registered keys in registration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// List returns all descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}
	return out
}

// KeysOf returns the sorted keys of every descriptor with the given kind.
func (r *Registry) KeysOf(kind Kind) []string {
	var out []string
	for _, d := range r.byKey {
		if d.Kind == kind {
			out = append(out, d.Key)
		}
	}
	sort.Strings(out)
	return out
}
