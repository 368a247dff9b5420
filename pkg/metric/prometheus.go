package metric

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type (
	prometheusCollectors struct {
		mu         sync.Mutex
		registerer prometheus.Registerer
		counters   map[string]*prometheus.CounterVec
		histograms map[string]*prometheus.HistogramVec
	}

	prometheusMetrics struct {
		collectors *prometheusCollectors
		labels     Labels
	}
)

// NewPrometheus creates collectors lazily on first use of a key.
// A key keeps the label names it was first used with, calls with other label sets are dropped.
func NewPrometheus(registerer prometheus.Registerer) Metrics {
	return prometheusMetrics{
		collectors: &prometheusCollectors{
			registerer: registerer,
			counters:   make(map[string]*prometheus.CounterVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
		labels: Labels{},
	}
}

func (m prometheusMetrics) With(labels Labels) Metrics {
	if len(labels) == 0 {
		return m
	}

	m.labels = m.labels.merge(labels)
	return m
}

func (m prometheusMetrics) Increment(key string) {
	vec, err := m.collectors.counter(key, labelNames(m.labels))
	if err != nil {
		return
	}

	counter, err := vec.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	counter.Inc()
}

func (m prometheusMetrics) Duration(key string, duration time.Duration) {
	vec, err := m.collectors.histogram(key, labelNames(m.labels))
	if err != nil {
		return
	}

	observer, err := vec.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	observer.Observe(duration.Seconds())
}

func (c *prometheusCollectors) counter(key string, labels []string) (*prometheus.CounterVec, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if vec, ok := c.counters[key]; ok {
		return vec, nil
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: key, Help: key}, labels)
	if err := c.registerer.Register(vec); err != nil {
		return nil, fmt.Errorf("register counter %s: %w", key, err)
	}

	c.counters[key] = vec
	return vec, nil
}

func (c *prometheusCollectors) histogram(key string, labels []string) (*prometheus.HistogramVec, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if vec, ok := c.histograms[key]; ok {
		return vec, nil
	}

	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    key,
		Help:    key,
		Buckets: prometheus.DefBuckets,
	}, labels)
	if err := c.registerer.Register(vec); err != nil {
		return nil, fmt.Errorf("register histogram %s: %w", key, err)
	}

	c.histograms[key] = vec
	return vec, nil
}

func labelNames(labels Labels) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
