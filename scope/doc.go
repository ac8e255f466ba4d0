// Package scope provides scope-exit guards and a scope timer.
//
// A Guard wraps a closure that runs when the enclosing function returns.
// Arm it with defer:
//
//	func apply(tx *Tx) (err error) {
//		g := scope.OnFailure(&err, tx.Rollback)
//		defer g.Run()
//		...
//	}
//
// Three variants exist: Always, OnSuccess (no error and no panic is
// propagating) and OnFailure (a non-nil error or a panic is propagating).
// A panic passing through Run is re-raised after the guard's closure runs.
package scope
