package mongoengine

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mgrotheer/mongo-leanshape-go/leanshape"
)

// Collection pairs a driver collection handle with a Normalizer, offering lean
// find operations that run the shaping pass on the decoded result before it is
// returned. It is the integration surface for callers that do not register the
// Normalizer as a hook themselves.
type Collection struct {
	coll       *mongo.Collection
	normalizer *Normalizer
}

// NewCollection creates a lean-find wrapper around a driver collection.
// A nil normalizer falls back to a default-configured one.
func NewCollection(coll *mongo.Collection, normalizer *Normalizer) (*Collection, error) {
	if coll == nil {
		return nil, leanshape.ErrNilCollection
	}

	if normalizer == nil {
		defaultNormalizer, err := NewNormalizer()
		if err != nil {
			return nil, err
		}

		normalizer = defaultNormalizer
	}

	return &Collection{
		coll:       coll,
		normalizer: normalizer,
	}, nil
}

// FindLean executes a find query, decodes every matching document into a plain
// bson.M, and runs the shaping pass over the decoded slice. The returned slice
// is never nil: a query matching nothing yields an empty slice.
func (c *Collection) FindLean(
	ctx context.Context,
	filter any,
	leanOpts leanshape.Options,
	findOpts ...*options.FindOptions,
) ([]bson.M, error) {

	if filter == nil {
		filter = bson.D{}
	}

	cursor, findErr := c.coll.Find(ctx, filter, findOpts...)
	if findErr != nil {
		c.normalizer.logError(ctx, logMsgQueryFailed, findErr, logAttrCollection, c.coll.Name())
		return nil, errors.Join(leanshape.ErrQueryingDocumentsFailed, findErr)
	}

	var results []bson.M
	if decodeErr := cursor.All(ctx, &results); decodeErr != nil {
		c.normalizer.logError(ctx, logMsgDecodeFailed, decodeErr, logAttrCollection, c.coll.Name())
		return nil, errors.Join(leanshape.ErrDecodingDocumentFailed, decodeErr)
	}

	if results == nil {
		results = []bson.M{}
	}

	if processErr := c.normalizer.Process(ctx, results, leanOpts); processErr != nil {
		return nil, processErr
	}

	return results, nil
}

// FindOneLean executes a find-one query, decodes the matching document into a
// plain bson.M, and runs the shaping pass over it. A query matching nothing
// returns (nil, nil): absence is not an error and nothing is shaped.
func (c *Collection) FindOneLean(
	ctx context.Context,
	filter any,
	leanOpts leanshape.Options,
	findOpts ...*options.FindOneOptions,
) (bson.M, error) {

	if filter == nil {
		filter = bson.D{}
	}

	var result bson.M

	decodeErr := c.coll.FindOne(ctx, filter, findOpts...).Decode(&result)
	if errors.Is(decodeErr, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if decodeErr != nil {
		c.normalizer.logError(ctx, logMsgQueryFailed, decodeErr, logAttrCollection, c.coll.Name())
		return nil, errors.Join(leanshape.ErrQueryingDocumentsFailed, decodeErr)
	}

	if processErr := c.normalizer.Process(ctx, result, leanOpts); processErr != nil {
		return nil, processErr
	}

	return result, nil
}
