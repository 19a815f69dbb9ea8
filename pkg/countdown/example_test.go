package countdown_test

import (
	"fmt"

	"github.com/go-drift/appbase/pkg/countdown"
)

type sessionKeepalive struct {
	countdown.SubscriberBase
	pings int
}

func (s *sessionKeepalive) CountdownID() string { return countdown.ID("auth", s) }

// Ping every 30 ticks (30 seconds at the default interval).
func (s *sessionKeepalive) CountdownInterval() int { return 30 }

func (s *sessionKeepalive) OnCountdown() { s.pings++ }

// This example shows how to register a subscriber with the shared registry.
func ExampleRegister() {
	reg := countdown.New(0) // 0 selects the one-second default interval
	reg.Enable()

	keepalive := &sessionKeepalive{}
	countdown.Register(reg, keepalive)

	// Later, stop receiving ticks.
	reg.Cancel(keepalive)
}

// This example shows the conventional identifier format.
func ExampleID() {
	keepalive := &sessionKeepalive{}
	fmt.Println(countdown.ID("auth", keepalive))
	// Output: auth.countdown_test.sessionKeepalive
}
