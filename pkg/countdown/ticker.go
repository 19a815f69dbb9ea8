package countdown

import "time"

// ticker abstracts the periodic time source so tests can drive ticks
// deterministically.
type ticker interface {
	Chan() <-chan time.Time
}

// realTicker wraps a [time.Ticker] to satisfy the ticker interface.
type realTicker struct {
	*time.Ticker
}

func (t realTicker) Chan() <-chan time.Time {
	return t.C
}

func newRealTicker(d time.Duration) ticker {
	return realTicker{
		Ticker: time.NewTicker(d),
	}
}
