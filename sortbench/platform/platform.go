// Package platform describes the machine a benchmark runs on, so timings can
// be read alongside the vector extensions and core count that produced them.
package platform

import (
	"fmt"
	"runtime"
)

// Level represents the widest SIMD instruction set the CPU reports.
type Level int

const (
	// LevelScalar indicates no SIMD extension was detected.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit SIMD).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 instructions (512-bit SIMD).
	LevelAVX512

	// LevelNEON indicates ARM NEON instructions (128-bit SIMD).
	LevelNEON

	// LevelSVE indicates ARM SVE instructions (scalable vector).
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in detect_*.go files.
var currentLevel Level

// currentWidth is the SIMD register width in bytes for currentLevel.
// Set by init() in detect_*.go files.
var currentWidth int

// CurrentLevel returns the detected SIMD level.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// Info summarizes the running environment. Level and Width describe the
// host CPU; the benchmarked sorts are scalar and do not use them.
type Info struct {
	GOOS   string
	GOARCH string
	CPUs   int
	Level  Level
	Width  int
}

// Detect returns the Info for the current process.
func Detect() Info {
	return Info{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		CPUs:   runtime.NumCPU(),
		Level:  currentLevel,
		Width:  currentWidth,
	}
}

// String formats the Info as "linux/amd64 avx2, 8 CPUs".
func (i Info) String() string {
	return fmt.Sprintf("%s/%s %s, %d CPUs", i.GOOS, i.GOARCH, i.Level, i.CPUs)
}
