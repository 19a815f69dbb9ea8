package countdown

import (
	"fmt"
	"sync"
	"time"
	"weak"

	"github.com/go-drift/appbase/pkg/errors"
)

// DefaultInterval is the base interval between ticks.
const DefaultInterval = time.Second

// ErrDuplicateID is reported when a registration is rejected because a
// live slot with the same identifier already exists.
var ErrDuplicateID = fmt.Errorf("subscriber already registered")

// slot binds a subscriber's identifier to a non-owning resolver.
// resolve returns nil once the referent has been reclaimed.
type slot struct {
	id      string
	resolve func() Subscriber
}

// Registry multiplexes a single periodic timer across many subscribers.
//
// All mutations and tick fan-outs are serialized onto one background
// goroutine in FIFO order, so Register, Cancel and the broadcast methods
// are safe to call from any goroutine and return immediately. An
// operation enqueued before a tick is applied before that tick.
//
// The registry holds subscribers weakly and never extends their lifetime.
// Construct with [New], or use the process-wide [Default] instance.
// A registry, once created, lives for the remainder of the process.
type Registry struct {
	interval time.Duration

	// mu guards slots and ticks. All access already happens on the
	// serial loop; the lock covers direct external reads and is
	// defense in depth, not the primary serialization mechanism.
	mu    sync.Mutex
	slots []slot
	ticks uint64

	qmu     sync.Mutex
	qcond   *sync.Cond
	queue   []func()
	running bool
	enabled bool

	// newTicker is the time source, replaceable in tests.
	newTicker func(time.Duration) ticker
}

// New creates a registry with the given base interval.
// An interval of 0 or less selects [DefaultInterval].
func New(interval time.Duration) *Registry {
	if interval <= 0 {
		interval = DefaultInterval
	}
	r := &Registry{
		interval:  interval,
		newTicker: newRealTicker,
	}
	r.qcond = sync.NewCond(&r.qmu)
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, constructing it on first
// access with [DefaultInterval]. Prefer passing a *Registry explicitly;
// Default exists for hosts that want the conventional single shared
// countdown without wiring one through their object graph.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(DefaultInterval)
	})
	return defaultRegistry
}

// Interval returns the base interval between ticks.
func (r *Registry) Interval() time.Duration {
	return r.interval
}

// Enable arms the underlying periodic timer and starts tick delivery.
// Idempotent: repeated calls never create a second timer. Tick delivery
// tolerates normal scheduler slack; subscribers needing sub-second
// precision should not be driven by a countdown registry.
func (r *Registry) Enable() {
	r.qmu.Lock()
	if r.enabled {
		r.qmu.Unlock()
		return
	}
	r.enabled = true
	r.qmu.Unlock()

	tk := r.newTicker(r.interval)
	go func() {
		for range tk.Chan() {
			r.enqueue(r.tick)
		}
	}()
}

// Register adds a weakly-held subscriber to the registry. Fire-and-forget:
// it enqueues the registration onto the registry's serial loop and returns
// immediately.
//
// If a live slot with the same CountdownID already exists the registration
// is dropped and reported through the errors package; the first
// registration keeps receiving ticks. A slot whose referent has been
// reclaimed does not block re-registration under the same identifier.
//
// Register is a function rather than a method because it must take a
// concrete pointer to form the weak reference; an interface value would
// keep the subscriber alive.
func Register[T any, P interface {
	*T
	Subscriber
}](r *Registry, s P) {
	if s == nil {
		return
	}
	id := s.CountdownID()
	ref := weak.Make((*T)(s))
	r.enqueue(func() {
		r.insert(slot{
			id: id,
			resolve: func() Subscriber {
				if p := ref.Value(); p != nil {
					return P(p)
				}
				return nil
			},
		})
	})
}

// Cancel removes the subscriber's slot, matching by CountdownID only.
// Canceling a subscriber that was never registered, or canceling twice,
// is a silent no-op. Safe to call from any goroutine.
func (r *Registry) Cancel(s Subscriber) {
	if s == nil {
		return
	}
	r.CancelID(s.CountdownID())
}

// CancelID removes all slots with the given identifier.
func (r *Registry) CancelID(id string) {
	r.enqueue(func() {
		r.remove(id)
	})
}

// PauseAll invokes OnPause on every live subscriber. The registry never
// calls the lifecycle hooks on its own; PauseAll, ResumeAll and
// DestroyAll exist for external lifecycle orchestration, typically via
// the lifecycle package.
func (r *Registry) PauseAll() {
	r.broadcast("countdown.PauseAll", func(s Subscriber) { s.OnPause() })
}

// ResumeAll invokes OnResume on every live subscriber.
func (r *Registry) ResumeAll() {
	r.broadcast("countdown.ResumeAll", func(s Subscriber) { s.OnResume() })
}

// DestroyAll invokes OnDestroy on every live subscriber. It does not
// remove any slots; a subscriber that wants out should Cancel itself
// from its OnDestroy.
func (r *Registry) DestroyAll() {
	r.broadcast("countdown.DestroyAll", func(s Subscriber) { s.OnDestroy() })
}

// Sync blocks until every operation enqueued before it has been applied.
// Useful in tests and during orderly shutdown sequencing.
func (r *Registry) Sync() {
	done := make(chan struct{})
	r.enqueue(func() {
		close(done)
	})
	<-done
}

// enqueue appends an operation to the serial loop, starting the loop
// goroutine on first use.
func (r *Registry) enqueue(fn func()) {
	r.qmu.Lock()
	if !r.running {
		r.running = true
		go r.loop()
	}
	r.queue = append(r.queue, fn)
	r.qcond.Signal()
	r.qmu.Unlock()
}

// loop drains the operation queue in FIFO order. Operations enqueued
// from inside a running operation (e.g. a Cancel issued from a
// subscriber's OnCountdown) are applied after the current one completes.
func (r *Registry) loop() {
	for {
		r.qmu.Lock()
		for len(r.queue) == 0 {
			r.qcond.Wait()
		}
		fn := r.queue[0]
		r.queue = r.queue[1:]
		r.qmu.Unlock()
		fn()
	}
}

// tick advances the counter and fans out to every live subscriber whose
// cadence divides the new counter value. Fan-out runs over a snapshot of
// the slot list, so mutations requested during dispatch take effect for
// the next tick, never the current one.
func (r *Registry) tick() {
	r.mu.Lock()
	r.ticks++
	n := r.ticks
	snapshot := make([]slot, len(r.slots))
	copy(snapshot, r.slots)
	r.mu.Unlock()

	stale := false
	for _, sl := range snapshot {
		sub := sl.resolve()
		if sub == nil {
			stale = true
			continue
		}
		every := sub.CountdownInterval()
		if every < 1 {
			every = 1
		}
		if n%uint64(every) == 0 {
			r.invoke("countdown.tick", func(s Subscriber) { s.OnCountdown() }, sub)
		}
	}
	if stale {
		r.compact()
	}
}

// invoke calls hook(sub), containing a panic so one failing subscriber
// cannot stop fan-out to the rest.
func (r *Registry) invoke(op string, hook func(Subscriber), sub Subscriber) {
	defer errors.Recover(op)
	hook(sub)
}

// insert adds a slot unless a live slot with the same identifier exists.
// As a structural operation it also purges slots whose referents are gone.
func (r *Registry) insert(sl slot) {
	r.mu.Lock()
	live := r.slots[:0]
	dup := false
	for _, s := range r.slots {
		if s.resolve() == nil {
			continue
		}
		if s.id == sl.id {
			dup = true
		}
		live = append(live, s)
	}
	r.slots = live
	if !dup {
		r.slots = append(r.slots, sl)
	}
	r.mu.Unlock()

	if dup {
		errors.Report(&errors.AppError{
			Op:   "countdown.Register",
			Kind: errors.KindCountdown,
			ID:   sl.id,
			Err:  ErrDuplicateID,
		})
	}
}

// remove drops every slot with the given identifier.
func (r *Registry) remove(id string) {
	r.mu.Lock()
	live := r.slots[:0]
	for _, s := range r.slots {
		if s.id == id {
			continue
		}
		live = append(live, s)
	}
	r.slots = live
	r.mu.Unlock()
}

// compact drops slots whose referents have been reclaimed.
func (r *Registry) compact() {
	r.mu.Lock()
	live := r.slots[:0]
	for _, s := range r.slots {
		if s.resolve() == nil {
			continue
		}
		live = append(live, s)
	}
	r.slots = live
	r.mu.Unlock()
}

// broadcast enqueues a hook fan-out over the current live subscribers.
func (r *Registry) broadcast(op string, hook func(Subscriber)) {
	r.enqueue(func() {
		for _, sub := range r.liveSubscribers() {
			r.invoke(op, hook, sub)
		}
	})
}

// liveSubscribers resolves every slot and returns the live referents in
// insertion order.
func (r *Registry) liveSubscribers() []Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := make([]Subscriber, 0, len(r.slots))
	for _, s := range r.slots {
		if sub := s.resolve(); sub != nil {
			subs = append(subs, sub)
		}
	}
	return subs
}
