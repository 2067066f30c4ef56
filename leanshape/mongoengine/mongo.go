package mongoengine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mgrotheer/mongo-leanshape-go/leanshape"
	"github.com/mgrotheer/mongo-leanshape-go/leanshape/mongoengine/internal/adapters"
)

const (
	defaultIDFieldName      = "_id"
	defaultVersionFieldName = "__v"

	logMsgProcessCompleted   = "lean result shaping completed"
	logMsgProcessSkipped     = "lean result shaping skipped"
	logMsgProcessFailed      = "lean result shaping failed"
	logMsgContinuationCalled = "post-query continuation signaled"
	logMsgQueryFailed        = "lean find query failed"
	logMsgDecodeFailed       = "decoding lean find result failed"

	logAttrError        = "error"
	logAttrReason       = "reason"
	logAttrRecordCount  = "record_count"
	logAttrPathCount    = "path_count"
	logAttrDurationMS   = "duration_ms"
	logAttrInvocationID = "invocation_id"
	logAttrStatus       = "status"
	logAttrCollection   = "collection"

	reasonNotLean      = "lean mode not requested"
	reasonAbsentResult = "absent result"

	metricProcessDuration = "leanshape_process_duration_seconds"
	metricRecordsShaped   = "leanshape_records_shaped"
	metricProcessErrors   = "leanshape_process_errors"

	spanNameProcess     = "leanshape.process"
	spanAttrOperation   = "operation"
	spanAttrErrorType   = "error_type"
	spanAttrRecordCount = "record_count"
	spanAttrDurationMS  = "duration_ms"

	operationProcess = "process"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeUnsupportedShape = "unsupported_result_shape"
	errorTypeRecoveredPanic   = "recovered_panic"
)

// Normalizer applies the per-query lean shaping options to completed read-query
// results. It is stateless per invocation and safe for concurrent use as long
// as each invocation operates on its own result graph, which the driver
// guarantees by producing a fresh graph per query.
type Normalizer struct {
	idFieldName      string
	versionFieldName string
	logger           leanshape.Logger
	metricsCollector leanshape.MetricsCollector
	tracingCollector leanshape.TracingCollector
	contextualLogger leanshape.ContextualLogger
}

// NewNormalizer creates a new Normalizer with optional configuration.
func NewNormalizer(options ...Option) (*Normalizer, error) {
	normalizer := &Normalizer{
		idFieldName:      defaultIDFieldName,
		versionFieldName: defaultVersionFieldName,
	}

	for _, option := range options {
		if err := option(normalizer); err != nil {
			return nil, err
		}
	}

	return normalizer, nil
}

// Process runs one result-shaping pass over a completed read-query result,
// mutating it in place according to the supplied per-query options.
//
// The result may be a singular decoded document (bson.M, map[string]any, or
// *bson.D), a slice of documents (bson.A, []any, []bson.M, []map[string]any,
// or []bson.D), or nil. A singular result stays singular; a slice keeps its
// length and order. Disabled options and absent results leave the result
// untouched and return nil.
//
// Returns leanshape.ErrUnsupportedResultShape for result types whose mutations
// could not reach the caller, and a leanshape.ErrPostProcessingFailed wrapping
// for unexpected failures during shaping. Partial mutations up to a failure
// point are kept; failures are deterministic and must not be retried.
func (n *Normalizer) Process(ctx context.Context, result any, opts leanshape.Options) error {
	if !opts.Lean() {
		n.logSkipped(ctx, reasonNotLean)
		return nil
	}

	if isAbsent(result) {
		n.logSkipped(ctx, reasonAbsentResult)
		return nil
	}

	tracing, ctx := n.startProcessTracing(ctx)
	metrics := n.startProcessMetrics(ctx)

	start := time.Now()
	recordCount, shapeErr := n.shapeResult(result, opts)
	duration := time.Since(start)

	if shapeErr != nil {
		errorType := classifyError(shapeErr)
		tracing.finishError(errorType, duration)
		metrics.recordError(errorType, duration)
		n.logError(ctx, logMsgProcessFailed, shapeErr)

		return shapeErr
	}

	tracing.finishSuccess(recordCount, duration)
	metrics.recordSuccess(recordCount, duration)
	n.logOperation(ctx, logMsgProcessCompleted,
		logAttrRecordCount, recordCount,
		logAttrPathCount, len(opts.StringifyKeys()),
		logAttrDurationMS, n.toMilliseconds(duration))

	return nil
}

// shapeResult normalizes the result into a sequence of records, shapes each
// record, and reports how many records were shaped. A panic during shaping is
// recovered here and converted into a single wrapped error; mutations applied
// before the failure remain in place.
func (n *Normalizer) shapeResult(result any, opts leanshape.Options) (recordCount int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(leanshape.ErrPostProcessingFailed, fmt.Errorf("recovered: %v", r))
		}
	}()

	if sequence, isSequence := adapters.AsSequence(result); isSequence {
		for i := 0; i < sequence.Len(); i++ {
			element := sequence.Index(i)
			if isAbsent(element) {
				continue
			}

			record, isDocument := adapters.AsDocument(element)
			if !isDocument {
				return i, errors.Join(
					leanshape.ErrUnsupportedResultShape,
					fmt.Errorf("sequence element %d has type %T", i, element))
			}

			n.shapeRecord(record, opts)
			sequence.SetIndex(i, record.Unwrap())
		}

		return sequence.Len(), nil
	}

	record, isDocument := adapters.AsDocument(result)
	if !isDocument || !record.InPlace() {
		return 0, errors.Join(
			leanshape.ErrUnsupportedResultShape,
			fmt.Errorf("singular result has type %T", result))
	}

	n.shapeRecord(record, opts)

	return 1, nil
}

// shapeRecord applies the configured rewrites to one record. Nested paths are
// independent of each other but must all run before the identifier steps.
func (n *Normalizer) shapeRecord(record adapters.Document, opts leanshape.Options) {
	for _, path := range opts.StringifyKeys() {
		rewriteDocument(record, path.Segments())
	}

	if !opts.ShowVersion() {
		n.removeVersionField(record)
	}

	n.rewriteIdentifierField(record, opts)
}

// removeVersionField strips the version field if and only if it holds an
// integer value. Absent or non-integer version fields are left alone.
func (n *Normalizer) removeVersionField(record adapters.Document) {
	value, exists := record.Lookup(n.versionFieldName)
	if exists && isIntegerValue(value) {
		record.Remove(n.versionFieldName)
	}
}

// rewriteIdentifierField stringifies the primary identifier and/or moves it to
// the rename destination. With both active the destination holds the string
// form; rename never runs onto the identifier field's own name.
func (n *Normalizer) rewriteIdentifierField(record adapters.Document, opts leanshape.Options) {
	rename := opts.Rename()
	if !opts.StringifyID() && rename == "" {
		return
	}

	if opts.StringifyID() {
		if value, exists := record.Lookup(n.idFieldName); exists {
			if identifier, isIdentifier := value.(primitive.ObjectID); isIdentifier {
				record.Store(n.idFieldName, identifier.Hex())
			}
		}
	}

	if rename == "" || rename == n.idFieldName {
		return
	}

	if value, exists := record.Lookup(n.idFieldName); exists {
		record.Store(rename, value)
		record.Remove(n.idFieldName)
	}
}

// isAbsent reports whether a query result counts as absent (find-one miss or
// nil container). Empty slices are not absent; they shape to zero records.
func isAbsent(result any) bool {
	switch v := result.(type) {
	case nil:
		return true
	case bson.M:
		return v == nil
	case map[string]any:
		return v == nil
	case *bson.D:
		return v == nil
	default:
		return false
	}
}

// isIntegerValue reports whether a decoded BSON value is one of the integer
// kinds the driver produces.
func isIntegerValue(value any) bool {
	switch value.(type) {
	case int, int32, int64:
		return true
	default:
		return false
	}
}

// classifyError maps a shaping error to the error type used in metrics and spans.
func classifyError(err error) string {
	if errors.Is(err, leanshape.ErrUnsupportedResultShape) {
		return errorTypeUnsupportedShape
	}

	return errorTypeRecoveredPanic
}
