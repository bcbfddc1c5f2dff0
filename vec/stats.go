package vec

import "github.com/kolkov/socow/internal/vec/stats"

// Stats is a process-wide snapshot of storage activity across all vectors.
type Stats = stats.Snapshot

// ReadStats returns the current storage counters.
//
// Example:
//
//	before := vec.ReadStats()
//	runWorkload()
//	after := vec.ReadStats()
//	fmt.Println("forks:", after.Forks-before.Forks)
func ReadStats() Stats {
	return stats.Read()
}

// ResetStats zeroes the storage counters.
func ResetStats() {
	stats.Reset()
}
