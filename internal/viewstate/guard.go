package viewstate

import (
	"sync/atomic"

	"github.com/jonathan/resume-assistant/internal/outcome"
)

// NetworkErrorMessage is shown for every network-level failure.
const NetworkErrorMessage = "네트워크 연결을 확인해주세요."

// Status is the loading and error part shared by every screen state.
type Status struct {
	Loading bool
	Error   string
}

// guard admits one in-flight remote call per holder. Intents invoked while a call is
// running return without calling out.
type guard struct {
	busy atomic.Bool
}

func (g *guard) acquire() bool { return g.busy.CompareAndSwap(false, true) }

func (g *guard) release() { g.busy.Store(false) }

// execute runs call under g, flipping the loading flag around it and recording the
// error text of a failed outcome. apply runs inside the final state update on success.
// ran is false when another call was already in flight.
func execute[S, T any](g *guard, store *Store[S], status func(*S) *Status, call func() outcome.Outcome[T], apply func(*S, T)) (o outcome.Outcome[T], ran bool) {
	if !g.acquire() {
		return o, false
	}
	defer g.release()

	store.Update(func(s *S) {
		st := status(s)
		st.Loading = true
		st.Error = ""
	})

	o = call()

	store.Update(func(s *S) {
		st := status(s)
		st.Loading = false
		st.Error = errorText(o)
		if v, ok := o.Value(); ok && apply != nil {
			apply(s, v)
		}
	})
	return o, true
}

// errorText is the message to display for o, empty on success.
func errorText[T any](o outcome.Outcome[T]) string {
	return outcome.Match(o,
		func(T) string { return "" },
		func(message string, _ *int) string { return message },
		func() string { return NetworkErrorMessage },
	)
}

// fail records a locally detected error without calling out.
func fail[S any](store *Store[S], status func(*S) *Status, message string) {
	store.Update(func(s *S) {
		status(s).Error = message
	})
}
