// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, metrics, and debug introspection for the JUL stress tooling.
//
// Provides concurrent-safe state handling primitives including:
//   - Typed YAML configuration with snapshot reads and reload listeners
//   - Prometheus-backed counters for lock and ring workloads
//   - Named debug probes, including platform and CPU feature probes
//
// The primitives in ring and spinlock do not depend on this package.
package control
