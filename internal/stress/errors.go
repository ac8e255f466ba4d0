// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for stress workloads.

package stress

import "errors"

var (
	// ErrLostUpdate indicates the guarded counter ended below workers*iterations.
	ErrLostUpdate = errors.New("lost update under lock")

	// ErrRingInvariant indicates the guarded ring disagrees with the push accounting.
	ErrRingInvariant = errors.New("ring invariant violated")
)
