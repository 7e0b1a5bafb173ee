package md2docx

import "runtime"

// Worker sizing constants for batch conversion.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize bounds the number of documents held in memory at once
	// when the size is picked automatically.
	MaxPoolSize = 8
)

// ResolvePoolSize determines how many conversions to run in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// A Converter is safe for concurrent use, so every worker can share one.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	return min(max(runtime.GOMAXPROCS(0), MinPoolSize), MaxPoolSize)
}
