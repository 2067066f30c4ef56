package mongoengine

import (
	"context"

	"github.com/google/uuid"

	"github.com/mgrotheer/mongo-leanshape-go/leanshape"
)

// PostQuery is the continuation form of Process, intended to be registered as
// a post-query hook in a driver pipeline: the query engine invokes it on the
// same logical turn as query completion, and it calls next exactly once before
// returning control - with nil on success, or with the error that failed the
// pass. A nil next degrades to Process with the outcome dropped.
//
// Each invocation carries a fresh correlation id in its debug log record so
// that hook invocations can be told apart in aggregated logs.
func (n *Normalizer) PostQuery(ctx context.Context, result any, opts leanshape.Options, next leanshape.Continuation) {
	invocationID := uuid.NewString()

	err := n.Process(ctx, result, opts)

	status := statusSuccess
	if err != nil {
		status = statusError
	}

	n.logDebug(ctx, logMsgContinuationCalled,
		logAttrInvocationID, invocationID,
		logAttrStatus, status)

	if next != nil {
		next(err)
	}
}
