// Command julstress runs contention workloads against the spin lock and the
// ring buffer and reports whether every round kept its invariants.
//
// Usage:
//
//	julstress run                         # defaults: 2 workers x 100000 increments
//	julstress run --config stress.yaml    # load settings from YAML
//	julstress run --workers 8 --json      # override and emit a JSON report
//	julstress probes                      # dump platform and CPU probes
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
