// Package api
// Author: momentics
//
// Introspection contract used by the stress tooling to report primitive state.

package api

// Debug exposes named state probes.
type Debug interface {
	// DumpState evaluates every probe and returns name -> value.
	DumpState() map[string]any

	// RegisterProbe registers or replaces a probe.
	RegisterProbe(name string, fn func() any)

	// Probes lists registered probe names in sorted order.
	Probes() []string
}
