package backend

// State tags a Remote value. Sentinel empty records are not used anywhere
// in this layer: "no data by design", "fetch failed", and "data present"
// are distinct states.
type State uint8

const (
	// StatePresent means the backend returned data.
	StatePresent State = iota
	// StateAbsent means the backend reported a valid empty state
	// (no team, no submission, no progress yet).
	StateAbsent
	// StateFailed means the fetch itself failed (transport or 5xx).
	StateFailed
)

// Remote wraps a fetched value with its fetch outcome.
type Remote[T any] struct {
	state State
	value T
	err   error
}

// Present wraps a successfully fetched value.
func Present[T any](v T) Remote[T] {
	return Remote[T]{state: StatePresent, value: v}
}

// Absent marks a valid empty state.
func Absent[T any]() Remote[T] {
	return Remote[T]{state: StateAbsent}
}

// Failed marks a fetch failure, keeping the cause for logging.
func Failed[T any](err error) Remote[T] {
	return Remote[T]{state: StateFailed, err: err}
}

// IsPresent reports whether data was fetched.
func (r Remote[T]) IsPresent() bool { return r.state == StatePresent }

// IsAbsent reports whether the backend returned a valid empty state.
func (r Remote[T]) IsAbsent() bool { return r.state == StateAbsent }

// IsFailed reports whether the fetch failed.
func (r Remote[T]) IsFailed() bool { return r.state == StateFailed }

// Value returns the fetched value and whether it is present.
func (r Remote[T]) Value() (T, bool) {
	return r.value, r.state == StatePresent
}

// MustValue returns the value, or the zero value when not present.
// Intended for templates, where a zero value renders as empty.
func (r Remote[T]) MustValue() T {
	return r.value
}

// Err returns the failure cause, nil unless IsFailed.
func (r Remote[T]) Err() error { return r.err }
