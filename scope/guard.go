package scope

// Mode selects when a Guard fires.
type Mode int

const (
	// Exit fires on every exit.
	Exit Mode = iota
	// Success fires only when no error or panic is propagating.
	Success
	// Failure fires only when an error or panic is propagating.
	Failure
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Exit:
		return "exit"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Guard runs a closure once when its scope exits.
type Guard struct {
	fn        func()
	errp      *error
	mode      Mode
	dismissed bool
	done      bool
}

// Always returns a guard that fires on every exit.
func Always(fn func()) *Guard {
	return &Guard{fn: fn, mode: Exit}
}

// OnSuccess returns a guard that fires when *errp is nil at exit and no panic
// is propagating. errp is normally the address of a named error result; a nil
// errp means only panics count as failure.
func OnSuccess(errp *error, fn func()) *Guard {
	return &Guard{fn: fn, errp: errp, mode: Success}
}

// OnFailure returns a guard that fires when *errp is non-nil at exit or a
// panic is propagating.
func OnFailure(errp *error, fn func()) *Guard {
	return &Guard{fn: fn, errp: errp, mode: Failure}
}

// Mode returns the guard's firing mode.
func (g *Guard) Mode() Mode { return g.mode }

// Dismiss disarms the guard.
func (g *Guard) Dismiss() { g.dismissed = true }

// Run must be invoked with defer. It evaluates the exit condition, runs the
// closure at most once, and re-panics if a panic was in flight.
func (g *Guard) Run() {
	r := recover()
	g.fire(r != nil)
	if r != nil {
		panic(r)
	}
}

func (g *Guard) fire(panicking bool) {
	if g.done || g.dismissed || g.fn == nil {
		return
	}
	failed := panicking || (g.errp != nil && *g.errp != nil)
	switch g.mode {
	case Success:
		if failed {
			return
		}
	case Failure:
		if !failed {
			return
		}
	}
	g.done = true
	g.fn()
}
