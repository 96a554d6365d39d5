package session

import "github.com/typerush/typerush/internal/store"

// clockTickMsg fires once a second to drive the session clock. The
// generation ties each tick to the run that scheduled it so ticks left
// in flight by an earlier run are dropped instead of doubling the
// clock rate.
type clockTickMsg struct {
	gen uint64
}

// resultSavedMsg reports the outcome of persisting a finished session.
// Result carries the record built for the save so the summary shows
// exactly what was written.
type resultSavedMsg struct {
	Result store.Result
	Err    error
}
