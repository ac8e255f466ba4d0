// File: internal/stress/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contention workloads that exercise spinlock.SpinLock and ring.Ring
// together. Each round verifies its own invariant (no lost updates, wrap
// accounting) and reports into control.MetricsRegistry.
package stress
