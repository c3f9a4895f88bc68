package manager

import (
	"errors"
	"fmt"
	"strconv"
)

// modelNotFoundError is returned when a requested key is not in the registry.
type modelNotFoundError struct{ id string }

func (e modelNotFoundError) Error() string { return "model not found: " + e.id }

// ErrModelNotFound returns an error for a key missing from the registry.
func ErrModelNotFound(id string) error { return modelNotFoundError{id: id} }

// IsModelNotFound reports whether the error indicates a missing model key.
func IsModelNotFound(err error) bool {
	var e modelNotFoundError
	return errors.As(err, &e)
}

// dependencyUnavailableError signals that the in-process runtime is missing
// from this build or cannot be initialized.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string) error { return dependencyUnavailableError{msg: msg} }

// IsDependencyUnavailable reports whether err indicates a missing runtime dependency.
func IsDependencyUnavailable(err error) bool {
	var e dependencyUnavailableError
	return errors.As(err, &e)
}

// daemonStatusError is a non-2xx answer from the inference daemon.
type daemonStatusError struct {
	status int
	body   string
}

func (e *daemonStatusError) Error() string {
	msg := "daemon returned HTTP " + strconv.Itoa(e.status)
	if e.body != "" {
		msg += ": " + e.body
	}
	return msg
}

// badResponseError is a 2xx answer whose body could not be understood.
type badResponseError struct{ msg string }

func (e *badResponseError) Error() string { return e.msg }

// classifyDaemonError maps a daemon adapter error onto an ErrorKind.
// Anything that is neither a status nor a body problem is a transport failure.
func classifyDaemonError(err error) ErrorKind {
	var se *daemonStatusError
	var be *badResponseError
	switch {
	case errors.As(err, &se):
		return KindHTTPStatus
	case errors.As(err, &be):
		return KindBadResponse
	default:
		return KindTransport
	}
}

// loadError wraps a failed in-process load with the model key.
func loadError(key string, err error) error {
	return fmt.Errorf("load %s: %w", key, err)
}

// errNotInProcess is returned by ensureLoaded for keys served by the daemon.
var errNotInProcess = errors.New("model is not served in-process")
