package memo

import "time"

// Expiring caches a producer's result for a fixed validity window and
// re-invokes the producer on the first Get after the window has elapsed.
type Expiring[T any] struct {
	produce  func() (T, error)
	validity time.Duration
	last     time.Time
	value    *T
	now      func() time.Time
}

// NewExpiring wraps produce without invoking it. validity must not be
// negative; a zero validity makes every Get recompute.
func NewExpiring[T any](produce func() (T, error), validity time.Duration) *Expiring[T] {
	if validity < 0 {
		panic("memo: validity must not be negative")
	}
	return &Expiring[T]{produce: produce, validity: validity, now: time.Now}
}

// Get returns a handle to the cached value, recomputing it first when no
// value exists yet or more than the validity window has passed since the
// last computation. Each computation allocates a new handle, so handles from
// earlier calls keep the value they were handed out with. A producer error
// is returned as-is with a nil handle and leaves the previous value and
// timestamp in place, so the next Get retries under the same staleness rule.
func (e *Expiring[T]) Get() (*T, error) {
	now := e.now()
	if e.value == nil || now.Sub(e.last) > e.validity {
		value, err := e.produce()
		if err != nil {
			return nil, err
		}
		e.value = &value
		e.last = now
	}
	return e.value, nil
}

// ExpiringIn is Expiring for producers that take an input. The input reaches
// the producer only when Get recomputes; a non-stale Get discards it, so the
// cached value reflects the input of the last Get that actually computed.
// Callers that need the input honored must call when recomputation is due.
type ExpiringIn[I, T any] struct {
	produce  func(I) (T, error)
	validity time.Duration
	last     time.Time
	value    *T
	now      func() time.Time
}

// NewExpiringIn wraps produce without invoking it. validity must not be
// negative; a zero validity makes every Get recompute.
func NewExpiringIn[I, T any](produce func(I) (T, error), validity time.Duration) *ExpiringIn[I, T] {
	if validity < 0 {
		panic("memo: validity must not be negative")
	}
	return &ExpiringIn[I, T]{produce: produce, validity: validity, now: time.Now}
}

// Get returns a handle to the cached value, recomputing it from in when no
// value exists yet or more than the validity window has passed since the
// last computation. See Expiring.Get for the handle and error contract.
func (e *ExpiringIn[I, T]) Get(in I) (*T, error) {
	now := e.now()
	if e.value == nil || now.Sub(e.last) > e.validity {
		value, err := e.produce(in)
		if err != nil {
			return nil, err
		}
		e.value = &value
		e.last = now
	}
	return e.value, nil
}
