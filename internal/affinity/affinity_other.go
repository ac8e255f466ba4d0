//go:build !linux
// +build !linux

// File: internal/affinity/affinity_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

// AllowedCPUs is not available off Linux.
func AllowedCPUs() ([]int, error) {
	return nil, ErrNotSupported
}

func platformPin(int) (func(), error) {
	return nil, ErrNotSupported
}
