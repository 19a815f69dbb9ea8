// Package countdown provides a shared one-second ticker that fans out to any
// number of subscribers, each at its own cadence.
//
// # Core Components
//
// The countdown system consists of a few parts:
//
//   - [Registry]: owns the single underlying timer and the subscriber list.
//     All registries multiplex every subscriber onto one timer; a subscriber
//     never gets a timer of its own.
//
//   - [Subscriber]: the capability interface a participant implements. Embed
//     [SubscriberBase] to pick up no-op defaults for everything except
//     identity.
//
//   - [Register] / [Registry.Cancel]: fire-and-forget subscription management,
//     safe to call from any goroutine.
//
// # Basic Usage
//
// Implement Subscriber on a pointer type, register it, and enable the
// registry once at startup:
//
//	type badgeRefresher struct {
//	    countdown.SubscriberBase
//	}
//
//	func (b *badgeRefresher) CountdownID() string { return countdown.ID("home", b) }
//	func (b *badgeRefresher) CountdownInterval() int { return 5 } // every 5 ticks
//	func (b *badgeRefresher) OnCountdown() { refreshBadge() }
//
//	reg := countdown.Default()
//	reg.Enable()
//	countdown.Register(reg, &badgeRefresher{})
//
// The registry holds subscribers weakly: a subscriber that becomes
// unreachable simply stops receiving ticks, with or without an explicit
// Cancel. Cancel is still the polite way to leave.
//
// # Cadence
//
// A subscriber fires when the registry's tick counter is an exact multiple
// of its CountdownInterval. Cadence is therefore aligned to tick boundaries:
// an interval of 3 fires on ticks 3, 6, 9, and so on, regardless of when
// the subscriber registered.
package countdown

import (
	"fmt"
	"runtime"
	"strings"
)

// Subscriber is the capability contract for countdown participants.
//
// OnCountdown is the only method the registry's tick loop ever calls.
// OnPause, OnResume and OnDestroy exist for external lifecycle
// orchestration (see [Registry.PauseAll] and friends, and the lifecycle
// package's BindRegistry); the tick loop never invokes them.
type Subscriber interface {
	// CountdownInterval returns the subscriber's cadence as a positive
	// multiple of the base interval. Values below 1 are treated as 1
	// ("every tick").
	CountdownInterval() int

	// CountdownID returns a stable identity for deduplication and
	// cancellation. By convention it combines a source token with the
	// subscriber's dynamic type name; see [ID].
	CountdownID() string

	// OnCountdown is invoked on each tick where the cadence condition
	// is met.
	OnCountdown()

	// OnPause is invoked when the host application is paused.
	OnPause()

	// OnResume is invoked when the host application resumes.
	OnResume()

	// OnDestroy is invoked when the host tears the subscriber down.
	OnDestroy()
}

// SubscriberBase provides no-op defaults for the Subscriber interface.
// Embed it in your subscriber to implement only the methods you need.
//
// SubscriberBase deliberately does not implement CountdownID: identity
// must be declared explicitly per subscriber type.
//
// Example:
//
//	type sessionKeepalive struct {
//	    countdown.SubscriberBase
//	}
//
//	func (s *sessionKeepalive) CountdownID() string { return countdown.ID("auth", s) }
//	func (s *sessionKeepalive) OnCountdown() { ping() }
type SubscriberBase struct{}

// CountdownInterval returns the default cadence of 1 (every tick).
func (SubscriberBase) CountdownInterval() int { return 1 }

// OnCountdown is a no-op default implementation.
func (SubscriberBase) OnCountdown() {}

// OnPause is a no-op default implementation.
func (SubscriberBase) OnPause() {}

// OnResume is a no-op default implementation.
func (SubscriberBase) OnResume() {}

// OnDestroy is a no-op default implementation.
func (SubscriberBase) OnDestroy() {}

// ID builds the conventional subscriber identifier from a caller-supplied
// source token and the dynamic type name of s. The leading pointer marker
// is stripped so *homeScreen and homeScreen produce the same name.
func ID(token string, s any) string {
	return token + "." + strings.TrimPrefix(fmt.Sprintf("%T", s), "*")
}

// CallerID is like [ID] but derives the source token from the caller's
// file and line. The token is stable as long as the call site does not
// move, which makes CallerID suitable only for identifiers computed from
// a single fixed location (typically inside CountdownID itself).
func CallerID(s any) string {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return ID("unknown", s)
	}
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}
	return ID(fmt.Sprintf("%s:%d", file, line), s)
}
