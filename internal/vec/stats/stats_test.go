package stats

import (
	"sync"
	"testing"
)

// TestRecordAndRead tests that every recorder bumps exactly its own counter.
func TestRecordAndRead(t *testing.T) {
	Reset()

	RecordBlockAlloc()
	RecordBlockAlloc()
	RecordBlockFree()
	RecordFork()
	RecordPromotion()
	RecordDemotion()
	RecordGrowth()
	RecordGrowth()
	RecordGrowth()

	s := Read()
	if s.BlocksAllocated != 2 {
		t.Errorf("BlocksAllocated = %d, want 2", s.BlocksAllocated)
	}
	if s.BlocksFreed != 1 {
		t.Errorf("BlocksFreed = %d, want 1", s.BlocksFreed)
	}
	if s.Forks != 1 {
		t.Errorf("Forks = %d, want 1", s.Forks)
	}
	if s.Promotions != 1 {
		t.Errorf("Promotions = %d, want 1", s.Promotions)
	}
	if s.Demotions != 1 {
		t.Errorf("Demotions = %d, want 1", s.Demotions)
	}
	if s.Growths != 3 {
		t.Errorf("Growths = %d, want 3", s.Growths)
	}
	if s.LiveBlocks() != 1 {
		t.Errorf("LiveBlocks() = %d, want 1", s.LiveBlocks())
	}
}

// TestReset tests that Reset zeroes every counter.
func TestReset(t *testing.T) {
	RecordBlockAlloc()
	RecordFork()
	Reset()

	if s := Read(); s != (Snapshot{}) {
		t.Errorf("Read() after Reset = %+v, want zero", s)
	}
}

// TestConcurrentRecord tests that counters do not lose updates across goroutines.
func TestConcurrentRecord(t *testing.T) {
	const (
		numGoroutines = 50
		numIterations = 1000
	)
	Reset()

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < numIterations; i++ {
				RecordBlockAlloc()
				RecordBlockFree()
			}
		}()
	}
	wg.Wait()

	s := Read()
	if want := uint64(numGoroutines * numIterations); s.BlocksAllocated != want {
		t.Errorf("BlocksAllocated = %d, want %d", s.BlocksAllocated, want)
	}
	if s.LiveBlocks() != 0 {
		t.Errorf("LiveBlocks() = %d, want 0", s.LiveBlocks())
	}
}
