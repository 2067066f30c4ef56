package mongoengine

import (
	"github.com/mgrotheer/mongo-leanshape-go/leanshape"
)

// Option defines a functional option for configuring a Normalizer.
type Option func(*Normalizer) error

// WithIDFieldName sets the name of the primary identifier field.
// The default is "_id".
func WithIDFieldName(fieldName string) Option {
	return func(n *Normalizer) error {
		if fieldName == "" {
			return leanshape.ErrEmptyIDFieldName
		}

		n.idFieldName = fieldName

		return nil
	}
}

// WithVersionFieldName sets the name of the internal version counter field.
// The default is "__v".
func WithVersionFieldName(fieldName string) Option {
	return func(n *Normalizer) error {
		if fieldName == "" {
			return leanshape.ErrEmptyVersionFieldName
		}

		n.versionFieldName = fieldName

		return nil
	}
}

// WithLogger sets the logger for the Normalizer.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: skipped passes and per-pass continuation signaling (development use)
// Info level: record counts and durations of completed passes (production-safe)
// Error level: failures that cause the originating query to fail.
func WithLogger(logger leanshape.Logger) Option {
	return func(n *Normalizer) error {
		n.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Normalizer.
// The collector will receive pass durations, shaped record counts, and error counters.
func WithMetrics(collector leanshape.MetricsCollector) Option {
	return func(n *Normalizer) error {
		n.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Normalizer.
// The collector will receive one span per shaping pass, including record counts
// and error classification.
func WithTracing(collector leanshape.TracingCollector) Option {
	return func(n *Normalizer) error {
		n.tracingCollector = collector
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Normalizer.
// The contextual logger will receive log messages with context information
// including automatic trace/span correlation when tracing is enabled.
func WithContextualLogger(logger leanshape.ContextualLogger) Option {
	return func(n *Normalizer) error {
		n.contextualLogger = logger
		return nil
	}
}
