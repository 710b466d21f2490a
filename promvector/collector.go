// Package promvector exports vector statistics as Prometheus metrics.
package promvector

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/vector"
)

// Source is anything that reports vector metrics, typically a *vector.Vector[T].
type Source interface {
	Metrics() vector.Metrics
}

var _ prometheus.Collector = &Collector{}

// Collector reports the metrics of every registered source, labelled by name.
//
// Gathering reads the sources without synchronising with their owners:
// gather only while no registered vector is being mutated.
type Collector struct {
	mtx     sync.RWMutex
	sources map[string]Source

	size          *prometheus.Desc
	capacity      *prometheus.Desc
	utilization   *prometheus.Desc
	reallocations *prometheus.Desc
}

// NewCollector returns an empty collector. Metric names are prefixed with namespace.
func NewCollector(namespace string) *Collector {
	labels := []string{"vector"}
	return &Collector{
		sources: map[string]Source{},
		size: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vector", "size"),
			"Number of valid elements in the vector.",
			labels, nil,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vector", "capacity"),
			"Number of allocated element slots.",
			labels, nil,
		),
		utilization: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vector", "utilization_ratio"),
			"Ratio of valid elements to allocated slots.",
			labels, nil,
		),
		reallocations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vector", "reallocations_total"),
			"Number of buffer replacements caused by growth.",
			labels, nil,
		),
	}
}

// Register adds src under name. Names must be unique.
func (c *Collector) Register(name string, src Source) error {
	if name == "" {
		return errors.New("empty vector name")
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if _, ok := c.sources[name]; ok {
		return errors.Errorf("vector %q already registered", name)
	}
	c.sources[name] = src
	return nil
}

// Unregister removes the source registered under name and reports whether it existed.
func (c *Collector) Unregister(name string) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	_, ok := c.sources[name]
	delete(c.sources, name)
	return ok
}

// Names returns the registered names in sorted order.
func (c *Collector) Names() []string {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.size
	descs <- c.capacity
	descs <- c.utilization
	descs <- c.reallocations
}

func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	for name, src := range c.sources {
		m := src.Metrics()
		metrics <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(m.Size), name)
		metrics <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity), name)
		metrics <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization, name)
		metrics <- prometheus.MustNewConstMetric(c.reallocations, prometheus.CounterValue, float64(m.Reallocations), name)
	}
}
