package lifecycle

import "sync"

// DisposeBag collects cleanup functions and runs them exactly once.
//
// Typical use is to stash the unsubscribe functions returned by
// AddHandler, BindRegistry and similar APIs, then empty the bag when the
// owning object is torn down:
//
//	bag := &lifecycle.DisposeBag{}
//	bag.Add(svc.AddHandler(onChange))
//	bag.Add(lifecycle.BindRegistry(svc, reg))
//	// ...
//	bag.Dispose()
type DisposeBag struct {
	mu        sync.Mutex
	disposers []func()
	disposed  bool
}

// Add registers a cleanup function. If the bag is already disposed the
// function runs immediately. Returns a function that removes the cleanup
// from the bag without running it.
func (b *DisposeBag) Add(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed {
		cleanup()
		return func() {}
	}

	index := len(b.disposers)
	b.disposers = append(b.disposers, cleanup)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if index < len(b.disposers) {
			b.disposers[index] = nil
		}
	}
}

// Dispose runs all registered cleanups in reverse order (LIFO).
// Subsequent calls are no-ops.
func (b *DisposeBag) Dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed {
		return
	}
	b.disposed = true

	for i := len(b.disposers) - 1; i >= 0; i-- {
		if b.disposers[i] != nil {
			b.disposers[i]()
		}
	}
	b.disposers = nil
}

// IsDisposed returns true if the bag has been disposed.
func (b *DisposeBag) IsDisposed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disposed
}
