package mongoengine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mgrotheer/mongo-leanshape-go/leanshape"
)

// logSkipped logs a skipped pass at debug level on whichever loggers are configured.
func (n *Normalizer) logSkipped(ctx context.Context, reason string) {
	if n.logger != nil {
		n.logger.Debug(logMsgProcessSkipped, logAttrReason, reason)
	}

	if n.contextualLogger != nil {
		n.contextualLogger.DebugContext(ctx, logMsgProcessSkipped, logAttrReason, reason)
	}
}

// logOperation logs operational information at info level on whichever loggers are configured.
func (n *Normalizer) logOperation(ctx context.Context, message string, args ...any) {
	if n.logger != nil {
		n.logger.Info(message, args...)
	}

	if n.contextualLogger != nil {
		n.contextualLogger.InfoContext(ctx, message, args...)
	}
}

// logDebug logs debug information on whichever loggers are configured.
func (n *Normalizer) logDebug(ctx context.Context, message string, args ...any) {
	if n.logger != nil {
		n.logger.Debug(message, args...)
	}

	if n.contextualLogger != nil {
		n.contextualLogger.DebugContext(ctx, message, args...)
	}
}

// logError logs error information on whichever loggers are configured.
func (n *Normalizer) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if n.logger != nil {
		n.logger.Error(message, allArgs...)
	}

	if n.contextualLogger != nil {
		n.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (n *Normalizer) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// recordDurationMetricsContext records duration metrics with context if the collector supports it.
func (n *Normalizer) recordDurationMetricsContext(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	status string,
) {
	if n.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operationProcess,
		"status":          status,
	}

	if contextualCollector, ok := n.metricsCollector.(leanshape.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
	} else {
		n.metricsCollector.RecordDuration(metricName, duration, labels)
	}
}

// recordValueMetricsContext records value metrics with context if the collector supports it.
func (n *Normalizer) recordValueMetricsContext(
	ctx context.Context,
	metricName string,
	value float64,
	status string,
) {
	if n.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operationProcess,
		"status":          status,
	}

	if contextualCollector, ok := n.metricsCollector.(leanshape.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricName, value, labels)
	} else {
		n.metricsCollector.RecordValue(metricName, value, labels)
	}
}

// recordErrorMetricsContext records error counters with context if the collector supports it.
func (n *Normalizer) recordErrorMetricsContext(ctx context.Context, errorType string) {
	if n.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operationProcess,
		"status":          statusError,
		spanAttrErrorType: errorType,
	}

	if contextualCollector, ok := n.metricsCollector.(leanshape.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricProcessErrors, labels)
	} else {
		n.metricsCollector.IncrementCounter(metricProcessErrors, labels)
	}
}

// === Tracing Observer ===

// processTracingObserver encapsulates tracing span lifecycle management for shaping passes.
type processTracingObserver struct {
	n    *Normalizer
	span leanshape.SpanContext
}

// startProcessTracing creates a tracing observer for one shaping pass.
// Without a configured tracing collector the observer is inert.
func (n *Normalizer) startProcessTracing(ctx context.Context) (*processTracingObserver, context.Context) {
	observer := &processTracingObserver{n: n}

	if n.tracingCollector != nil {
		spanAttrs := map[string]string{
			spanAttrOperation: operationProcess,
		}

		newCtx, span := n.tracingCollector.StartSpan(ctx, spanNameProcess, spanAttrs)
		observer.span = span

		return observer, newCtx
	}

	return observer, ctx
}

// finishSuccess completes the pass span with record count and duration.
func (pto *processTracingObserver) finishSuccess(recordCount int, duration time.Duration) {
	if pto.span == nil {
		return
	}

	pto.span.SetStatus(statusSuccess)
	pto.span.AddAttribute(spanAttrRecordCount, fmt.Sprintf("%d", recordCount))
	pto.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", pto.n.toMilliseconds(duration)))

	pto.n.tracingCollector.FinishSpan(pto.span, statusSuccess, map[string]string{
		spanAttrRecordCount: fmt.Sprintf("%d", recordCount),
	})
}

// finishError completes the pass span with error details.
func (pto *processTracingObserver) finishError(errorType string, duration time.Duration) {
	if pto.span == nil {
		return
	}

	pto.span.SetStatus(statusError)
	pto.span.AddAttribute(spanAttrErrorType, errorType)

	if duration > 0 {
		pto.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", pto.n.toMilliseconds(duration)))
	}

	pto.n.tracingCollector.FinishSpan(pto.span, statusError, map[string]string{spanAttrErrorType: errorType})
}

// === Metrics Observer ===

// processMetricsObserver encapsulates metrics collection for shaping passes.
type processMetricsObserver struct {
	n   *Normalizer
	ctx context.Context
}

// startProcessMetrics creates a metrics observer for one shaping pass.
func (n *Normalizer) startProcessMetrics(ctx context.Context) *processMetricsObserver {
	return &processMetricsObserver{
		n:   n,
		ctx: ctx,
	}
}

// recordSuccess records all metrics for a successful shaping pass.
func (pmo *processMetricsObserver) recordSuccess(recordCount int, duration time.Duration) {
	pmo.n.recordDurationMetricsContext(pmo.ctx, metricProcessDuration, duration, statusSuccess)
	pmo.n.recordValueMetricsContext(pmo.ctx, metricRecordsShaped, float64(recordCount), statusSuccess)
}

// recordError records all metrics for a failed shaping pass.
func (pmo *processMetricsObserver) recordError(errorType string, duration time.Duration) {
	pmo.n.recordDurationMetricsContext(pmo.ctx, metricProcessDuration, duration, statusError)
	pmo.n.recordErrorMetricsContext(pmo.ctx, errorType)
}
