// Package memo provides single-slot lazy-evaluation caches: a value computed
// on first access and reused on every access after that, plus a variant that
// recomputes once a validity window has elapsed. Instances are not safe for
// concurrent use.
package memo

// Lazy defers a producer until the first Get and caches its result for the
// lifetime of the instance.
type Lazy[T any] struct {
	produce  func() (T, error)
	value    T
	resolved bool
}

// NewLazy wraps produce without invoking it.
func NewLazy[T any](produce func() (T, error)) *Lazy[T] {
	return &Lazy[T]{produce: produce}
}

// Get returns the cached value, invoking the producer on the first call only.
// A producer error is returned as-is and leaves the Lazy unresolved, so the
// next Get retries.
func (l *Lazy[T]) Get() (T, error) {
	if l.resolved {
		return l.value, nil
	}

	value, err := l.produce()
	if err != nil {
		var zero T
		return zero, err
	}

	l.value = value
	l.resolved = true
	l.produce = nil // never invoked again once resolved
	return l.value, nil
}

// LazyIn is Lazy for producers that take an input. The input reaches the
// producer only on the Get that resolves the value; there is a single slot,
// not one per input, so any input passed once resolved is silently discarded.
type LazyIn[I, T any] struct {
	produce  func(I) (T, error)
	value    T
	resolved bool
}

// NewLazyIn wraps produce without invoking it.
func NewLazyIn[I, T any](produce func(I) (T, error)) *LazyIn[I, T] {
	return &LazyIn[I, T]{produce: produce}
}

// Get returns the cached value, invoking the producer with in on the first
// call only.
func (l *LazyIn[I, T]) Get(in I) (T, error) {
	if l.resolved {
		return l.value, nil
	}

	value, err := l.produce(in)
	if err != nil {
		var zero T
		return zero, err
	}

	l.value = value
	l.resolved = true
	l.produce = nil
	return l.value, nil
}
