// Package stats keeps process-wide storage counters for vectors.
//
// Vectors themselves are not safe for concurrent use, but independent vectors
// may live on different goroutines, so the counters are atomic. Each counter
// costs one atomic add on a path that already allocates or copies elements,
// which keeps it off the inline fast path entirely.
package stats

import "sync/atomic"

var counters struct {
	blocksAllocated atomic.Uint64
	blocksFreed     atomic.Uint64
	forks           atomic.Uint64
	promotions      atomic.Uint64
	demotions       atomic.Uint64
	growths         atomic.Uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	// BlocksAllocated counts shared blocks created.
	BlocksAllocated uint64

	// BlocksFreed counts shared blocks whose last reference was released.
	BlocksFreed uint64

	// Forks counts copy-on-write forks of a block held by more than one vector.
	Forks uint64

	// Promotions counts Inline to Shared transitions.
	Promotions uint64

	// Demotions counts Shared to Inline transitions.
	Demotions uint64

	// Growths counts reallocations caused by running out of capacity.
	Growths uint64
}

// LiveBlocks returns the number of blocks allocated but not yet freed.
func (s Snapshot) LiveBlocks() uint64 {
	return s.BlocksAllocated - s.BlocksFreed
}

// RecordBlockAlloc counts a new shared block.
func RecordBlockAlloc() { counters.blocksAllocated.Add(1) }

// RecordBlockFree counts a destroyed shared block.
func RecordBlockFree() { counters.blocksFreed.Add(1) }

// RecordFork counts a copy-on-write fork.
func RecordFork() { counters.forks.Add(1) }

// RecordPromotion counts an Inline to Shared transition.
func RecordPromotion() { counters.promotions.Add(1) }

// RecordDemotion counts a Shared to Inline transition.
func RecordDemotion() { counters.demotions.Add(1) }

// RecordGrowth counts a capacity growth.
func RecordGrowth() { counters.growths.Add(1) }

// Read returns the current counter values.
//
// The fields are loaded one by one, so a snapshot taken while other
// goroutines allocate may be slightly skewed between fields.
func Read() Snapshot {
	return Snapshot{
		BlocksAllocated: counters.blocksAllocated.Load(),
		BlocksFreed:     counters.blocksFreed.Load(),
		Forks:           counters.forks.Load(),
		Promotions:      counters.promotions.Load(),
		Demotions:       counters.demotions.Load(),
		Growths:         counters.growths.Load(),
	}
}

// Reset zeroes all counters. Intended for tests and benchmark runs.
func Reset() {
	counters.blocksAllocated.Store(0)
	counters.blocksFreed.Store(0)
	counters.forks.Store(0)
	counters.promotions.Store(0)
	counters.demotions.Store(0)
	counters.growths.Store(0)
}
