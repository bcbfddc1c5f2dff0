// Package metrics exports the process-wide vector counters to Prometheus.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewCollector("socow"))
//
// The collector reads vec.ReadStats on every scrape, so registering it adds
// no cost to vector operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kolkov/socow/vec"
)

const subsystem = "vector"

// Collector is a prometheus.Collector over vec.ReadStats.
type Collector struct {
	blocksAllocated *prometheus.Desc
	blocksFreed     *prometheus.Desc
	liveBlocks      *prometheus.Desc
	forks           *prometheus.Desc
	promotions      *prometheus.Desc
	demotions       *prometheus.Desc
	growths         *prometheus.Desc
}

// NewCollector returns a Collector whose metric names start with namespace.
// An empty namespace is allowed.
func NewCollector(namespace string) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, name), help, nil, nil)
	}
	return &Collector{
		blocksAllocated: desc("blocks_allocated_total", "Heap blocks allocated."),
		blocksFreed:     desc("blocks_freed_total", "Heap blocks whose last reference was released."),
		liveBlocks:      desc("live_blocks", "Heap blocks currently referenced by at least one vector."),
		forks:           desc("forks_total", "Shared blocks copied so that a vector could write."),
		promotions:      desc("promotions_total", "Moves from inline storage to a heap block."),
		demotions:       desc("demotions_total", "Moves from a heap block back to inline storage."),
		growths:         desc("growths_total", "Capacity increases triggered by appends."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.blocksAllocated
	ch <- c.blocksFreed
	ch <- c.liveBlocks
	ch <- c.forks
	ch <- c.promotions
	ch <- c.demotions
	ch <- c.growths
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := vec.ReadStats()
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	counter(c.blocksAllocated, s.BlocksAllocated)
	counter(c.blocksFreed, s.BlocksFreed)
	counter(c.forks, s.Forks)
	counter(c.promotions, s.Promotions)
	counter(c.demotions, s.Demotions)
	counter(c.growths, s.Growths)
	ch <- prometheus.MustNewConstMetric(c.liveBlocks, prometheus.GaugeValue, float64(s.LiveBlocks()))
}
