package helper

import (
	"context"
	"sync"
	"time"
)

// DurationRecord represents a recorded duration metric call.
type DurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// CounterRecord represents a recorded counter-increment call.
type CounterRecord struct {
	Metric string
	Labels map[string]string
}

// ValueRecord represents a recorded value metric call.
type ValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// MetricsCollectorSpy captures metrics calls for testing. It implements the
// leanshape.ContextualMetricsCollector interface, so it observes both the
// plain and the context-aware recording paths of a Normalizer.
type MetricsCollectorSpy struct {
	durationRecords []DurationRecord
	counterRecords  []CounterRecord
	valueRecords    []ValueRecord
	mu              sync.Mutex
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{
		durationRecords: make([]DurationRecord, 0),
		counterRecords:  make([]CounterRecord, 0),
		valueRecords:    make([]ValueRecord, 0),
	}
}

// RecordDuration implements the MetricsCollector interface.
func (c *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.durationRecords = append(c.durationRecords, DurationRecord{
		Metric:   metric,
		Duration: duration,
		Labels:   copyLabels(labels),
	})
}

// IncrementCounter implements the MetricsCollector interface.
func (c *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counterRecords = append(c.counterRecords, CounterRecord{
		Metric: metric,
		Labels: copyLabels(labels),
	})
}

// RecordValue implements the MetricsCollector interface.
func (c *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valueRecords = append(c.valueRecords, ValueRecord{
		Metric: metric,
		Value:  value,
		Labels: copyLabels(labels),
	})
}

// RecordDurationContext implements the ContextualMetricsCollector interface.
func (c *MetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	c.RecordDuration(metric, duration, labels)
}

// IncrementCounterContext implements the ContextualMetricsCollector interface.
func (c *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	c.IncrementCounter(metric, labels)
}

// RecordValueContext implements the ContextualMetricsCollector interface.
func (c *MetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	c.RecordValue(metric, value, labels)
}

// GetDurationRecords returns a copy of all captured duration records.
func (c *MetricsCollectorSpy) GetDurationRecords() []DurationRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]DurationRecord, len(c.durationRecords))
	copy(records, c.durationRecords)

	return records
}

// GetCounterRecords returns a copy of all captured counter records.
func (c *MetricsCollectorSpy) GetCounterRecords() []CounterRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]CounterRecord, len(c.counterRecords))
	copy(records, c.counterRecords)

	return records
}

// GetValueRecords returns a copy of all captured value records.
func (c *MetricsCollectorSpy) GetValueRecords() []ValueRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]ValueRecord, len(c.valueRecords))
	copy(records, c.valueRecords)

	return records
}

// Reset clears all captured records.
func (c *MetricsCollectorSpy) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.durationRecords = c.durationRecords[:0]
	c.counterRecords = c.counterRecords[:0]
	c.valueRecords = c.valueRecords[:0]
}

// HasDurationRecord checks for a duration record with the given metric name and label value.
func (c *MetricsCollectorSpy) HasDurationRecord(metric, labelKey, labelValue string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, record := range c.durationRecords {
		if record.Metric == metric && record.Labels[labelKey] == labelValue {
			return true
		}
	}

	return false
}

// HasCounterRecord checks for a counter record with the given metric name and label value.
func (c *MetricsCollectorSpy) HasCounterRecord(metric, labelKey, labelValue string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, record := range c.counterRecords {
		if record.Metric == metric && record.Labels[labelKey] == labelValue {
			return true
		}
	}

	return false
}

func copyLabels(labels map[string]string) map[string]string {
	labelsCopy := make(map[string]string, len(labels))
	for k, v := range labels {
		labelsCopy[k] = v
	}

	return labelsCopy
}
