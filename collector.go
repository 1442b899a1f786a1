package arena

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports arena snapshots as Prometheus metrics.
//
// Arenas are not goroutine-safe, so the collector never reads them directly:
// the owning goroutine pushes snapshots with Update or UpdateMulti, and
// scrapes read the last pushed values. Collector itself is safe for
// concurrent use.
type Collector struct {
	mu        sync.Mutex
	snapshots map[string]Metrics

	slots         *prometheus.Desc
	chunks        *prometheus.Desc
	chunkCapacity *prometheus.Desc
	utilization   *prometheus.Desc
	allocs        *prometheus.Desc
	promotions    *prometheus.Desc
	freezes       *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector whose metric names are prefixed with
// namespace.
func NewCollector(namespace string) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", name),
			help,
			[]string{"arena"},
			nil,
		)
	}
	return &Collector{
		snapshots: make(map[string]Metrics),

		slots:         desc("slots", "The number of values stored in the arena."),
		chunks:        desc("chunks", "The number of chunks held by the arena."),
		chunkCapacity: desc("chunk_capacity", "The number of slots per chunk."),
		utilization:   desc("utilization_ratio", "The ratio of used slots to allocated slots."),
		allocs:        desc("allocations_total", "The number of slots allocated."),
		promotions:    desc("promotions_total", "The number of copy-on-write promotions."),
		freezes:       desc("freezes_total", "The number of exclusive handles frozen."),
	}
}

// Update records the latest snapshot for the arena labelled name.
func (c *Collector) Update(name string, m Metrics) {
	c.mu.Lock()
	c.snapshots[name] = m
	c.mu.Unlock()
}

// UpdateMulti records a snapshot for every sub-arena of m.
func (c *Collector) UpdateMulti(m *Multi) {
	snapshots := m.Metrics()
	c.mu.Lock()
	for name, s := range snapshots {
		c.snapshots[name] = s
	}
	c.mu.Unlock()
}

// Remove drops the snapshot for the arena labelled name.
func (c *Collector) Remove(name string) {
	c.mu.Lock()
	delete(c.snapshots, name)
	c.mu.Unlock()
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.slots
	ch <- c.chunks
	ch <- c.chunkCapacity
	ch <- c.utilization
	ch <- c.allocs
	ch <- c.promotions
	ch <- c.freezes
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	names := make([]string, 0, len(c.snapshots))
	for name := range c.snapshots {
		names = append(names, name)
	}
	sort.Strings(names)
	snapshots := make([]Metrics, len(names))
	for i, name := range names {
		snapshots[i] = c.snapshots[name]
	}
	c.mu.Unlock()

	for i, name := range names {
		s := snapshots[i]
		ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(s.Len), name)
		ch <- prometheus.MustNewConstMetric(c.chunks, prometheus.GaugeValue, float64(s.NumChunks), name)
		ch <- prometheus.MustNewConstMetric(c.chunkCapacity, prometheus.GaugeValue, float64(s.ChunkCapacity), name)
		ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, s.Utilization, name)
		ch <- prometheus.MustNewConstMetric(c.allocs, prometheus.CounterValue, float64(s.Allocs), name)
		ch <- prometheus.MustNewConstMetric(c.promotions, prometheus.CounterValue, float64(s.Promotions), name)
		ch <- prometheus.MustNewConstMetric(c.freezes, prometheus.CounterValue, float64(s.Freezes), name)
	}
}
