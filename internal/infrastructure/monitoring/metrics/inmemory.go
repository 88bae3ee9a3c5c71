package metrics

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// InMemoryCollector records metric values in plain maps so tests and
// diagnostics can read them back without scraping.  Safe for concurrent use.
type InMemoryCollector struct {
	mu         sync.Mutex
	counters   map[string]float64
	gauges     map[string]float64
	histograms map[string][]float64
}

// NewInMemoryCollector creates an empty InMemoryCollector.
func NewInMemoryCollector() *InMemoryCollector {
	return &InMemoryCollector{
		counters:   make(map[string]float64),
		gauges:     make(map[string]float64),
		histograms: make(map[string][]float64),
	}
}

func seriesKey(name string, lvs []string) string {
	if len(lvs) == 0 {
		return name
	}
	return name + "{" + strings.Join(lvs, ",") + "}"
}

func (c *InMemoryCollector) RegisterCounter(name, help string, labels ...string) CounterVec {
	return &memCounterVec{c: c, name: name}
}

func (c *InMemoryCollector) RegisterGauge(name, help string, labels ...string) GaugeVec {
	return &memGaugeVec{c: c, name: name}
}

func (c *InMemoryCollector) RegisterHistogram(name, help string, buckets []float64, labels ...string) HistogramVec {
	return &memHistogramVec{c: c, name: name}
}

// Handler serves the current counter and gauge values as JSON.
func (c *InMemoryCollector) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		c.mu.Lock()
		snapshot := map[string]map[string]float64{
			"counters": {},
			"gauges":   {},
		}
		for k, v := range c.counters {
			snapshot["counters"][k] = v
		}
		for k, v := range c.gauges {
			snapshot["gauges"][k] = v
		}
		c.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snapshot)
	})
}

// CounterValue returns the accumulated value of a counter series.
func (c *InMemoryCollector) CounterValue(name string, lvs ...string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counters[seriesKey(name, lvs)]
}

// GaugeValue returns the current value of a gauge series.
func (c *InMemoryCollector) GaugeValue(name string, lvs ...string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gauges[seriesKey(name, lvs)]
}

// HistogramObservations returns a copy of the recorded observations of a
// histogram series, in recording order.
func (c *InMemoryCollector) HistogramObservations(name string, lvs ...string) []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	obs := c.histograms[seriesKey(name, lvs)]
	out := make([]float64, len(obs))
	copy(out, obs)
	return out
}

// Series lists every recorded series key, sorted, for debugging.
func (c *InMemoryCollector) Series() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.counters)+len(c.gauges)+len(c.histograms))
	for k := range c.counters {
		keys = append(keys, k)
	}
	for k := range c.gauges {
		keys = append(keys, k)
	}
	for k := range c.histograms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type memCounterVec struct {
	c    *InMemoryCollector
	name string
}

func (v *memCounterVec) WithLabelValues(lvs ...string) Counter {
	return &memCounter{c: v.c, key: seriesKey(v.name, lvs)}
}

type memCounter struct {
	c   *InMemoryCollector
	key string
}

func (m *memCounter) Inc() { m.Add(1) }

func (m *memCounter) Add(delta float64) {
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	m.c.counters[m.key] += delta
}

type memGaugeVec struct {
	c    *InMemoryCollector
	name string
}

func (v *memGaugeVec) WithLabelValues(lvs ...string) Gauge {
	return &memGauge{c: v.c, key: seriesKey(v.name, lvs)}
}

type memGauge struct {
	c   *InMemoryCollector
	key string
}

func (m *memGauge) Set(value float64) {
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	m.c.gauges[m.key] = value
}

func (m *memGauge) Inc() {
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	m.c.gauges[m.key]++
}

func (m *memGauge) Dec() {
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	m.c.gauges[m.key]--
}

type memHistogramVec struct {
	c    *InMemoryCollector
	name string
}

func (v *memHistogramVec) WithLabelValues(lvs ...string) Histogram {
	return &memHistogram{c: v.c, key: seriesKey(v.name, lvs)}
}

type memHistogram struct {
	c   *InMemoryCollector
	key string
}

func (m *memHistogram) Observe(value float64) {
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	m.c.histograms[m.key] = append(m.c.histograms[m.key], value)
}
