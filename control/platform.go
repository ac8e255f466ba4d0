// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Portable CPU and scheduler probes.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// RegisterPlatformProbes registers CPU, scheduler, and CPU feature probes,
// then the OS-specific ones.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.gomaxprocs", func() any {
		return runtime.GOMAXPROCS(0)
	})
	dp.RegisterProbe("platform.arch", func() any {
		return runtime.GOARCH
	})
	dp.RegisterProbe("platform.os", func() any {
		return runtime.GOOS
	})
	dp.RegisterProbe("cpu.cache_line_pad", func() any {
		return int(unsafe.Sizeof(cpu.CacheLinePad{}))
	})
	dp.RegisterProbe("cpu.features", func() any {
		return cpuFeatures()
	})
	registerOSProbes(dp)
}

func cpuFeatures() map[string]bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return map[string]bool{
			"sse2":   cpu.X86.HasSSE2,
			"sse42":  cpu.X86.HasSSE42,
			"avx2":   cpu.X86.HasAVX2,
			"popcnt": cpu.X86.HasPOPCNT,
		}
	case "arm64":
		return map[string]bool{
			"atomics": cpu.ARM64.HasATOMICS,
			"crc32":   cpu.ARM64.HasCRC32,
		}
	default:
		return map[string]bool{}
	}
}
