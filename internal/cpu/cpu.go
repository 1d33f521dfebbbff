// Package cpu probes the vector instruction sets that decide which manual
// kernel implementation the benchmark runs.
//
// Detection runs once on the first call to DetectFeatures and is cached.
// Tests and the -generic flag can override the probe with SetForcedFeatures.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel names the instruction set an implementation requires.
// Levels are not ordered across architectures.
type SIMDLevel int

const (
	// SIMDNone needs nothing beyond scalar floating point.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline.
	SIMDSSE2

	// SIMDAVX covers VEX-encoded 128/256-bit float operations.
	SIMDAVX

	// SIMDAVX2 adds 256-bit integer operations.
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64
	HasSSE2 bool
	HasAVX  bool
	HasAVX2 bool
	HasFMA  bool

	// arm64
	HasNEON bool

	// ForceGeneric disables every vector implementation.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// String lists the detected extensions, e.g. "amd64 [SSE2 AVX AVX2 FMA]".
func (f Features) String() string {
	var ext []string
	for _, e := range []struct {
		ok   bool
		name string
	}{
		{f.HasSSE2, "SSE2"},
		{f.HasAVX, "AVX"},
		{f.HasAVX2, "AVX2"},
		{f.HasFMA, "FMA"},
		{f.HasNEON, "NEON"},
	} {
		if e.ok {
			ext = append(ext, e.name)
		}
	}
	s := f.Architecture + " [" + strings.Join(ext, " ") + "]"
	if f.ForceGeneric {
		s += " (generic forced)"
	}
	return s
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the current CPU, or the forced
// features if SetForcedFeatures is in effect. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasAVX reports whether the CPU supports AVX.
func HasAVX() bool {
	return DetectFeatures().HasAVX
}

// HasNEON reports whether the CPU supports ARM Advanced SIMD.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides hardware detection until ResetDetection.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ForceGeneric keeps the detected features but disables vector
// implementations.
func ForceGeneric() {
	f := DetectFeatures()
	f.ForceGeneric = true
	SetForcedFeatures(f)
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
