package xfloat

import (
	"os"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Capabilities describes the hardware features the default kernel was
// selected for.
type Capabilities struct {
	// FMA is true if the CPU has a fused multiply-add that math.FMA compiles
	// down to, and it has not been disabled with XFLOAT_NO_FMA.
	FMA bool
}

// NoFMAEnv reports whether the XFLOAT_NO_FMA environment variable asks for
// the split-based product kernel even on FMA hardware.
func NoFMAEnv() bool {
	return os.Getenv("XFLOAT_NO_FMA") != ""
}

// DetectCapabilities inspects the running CPU. It does not consult
// XFLOAT_NO_FMA; CPUCapabilities does.
func DetectCapabilities() Capabilities {
	var caps Capabilities
	switch runtime.GOARCH {
	case "amd64":
		caps.FMA = cpu.X86.HasFMA
	case "arm64":
		// FMADD is part of the ARMv8-A base ISA; ASIMD is checked in case
		// x/sys/cpu could not read the feature registers.
		caps.FMA = cpu.ARM64.HasASIMD
	case "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		caps.FMA = true
	}
	return caps
}

var (
	defaultCaps     = initCapabilities()
	defaultKernel64 = NewKernel64(Float64Ops{UseFMA: defaultCaps.FMA})
)

func initCapabilities() Capabilities {
	caps := DetectCapabilities()
	if NoFMAEnv() {
		caps.FMA = false
	}
	return caps
}

// CPUCapabilities returns the capabilities the package-level DD arithmetic
// is using. The value is fixed at init.
func CPUCapabilities() Capabilities {
	return defaultCaps
}
