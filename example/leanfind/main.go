// Command leanfind demonstrates lean result shaping against a live MongoDB
// instance: it inserts a handful of documents, reads them back with FindLean,
// and prints the shaped results.
//
// Run it with a local server:
//
//	MONGODB_URI=mongodb://localhost:27017 go run ./example/leanfind
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mgrotheer/mongo-leanshape-go/leanshape"
	"github.com/mgrotheer/mongo-leanshape-go/leanshape/mongoengine"
)

const defaultURI = "mongodb://localhost:27017"

func main() {
	if err := run(); err != nil {
		slog.Error("leanfind demo failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = defaultURI
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	coll := client.Database("leanshape_demo").Collection("articles")
	if err = seedArticles(ctx, coll); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	normalizer, err := mongoengine.NewNormalizer(mongoengine.WithLogger(logger))
	if err != nil {
		return err
	}

	leanColl, err := mongoengine.NewCollection(coll, normalizer)
	if err != nil {
		return err
	}

	opts := leanshape.BuildLeanOptions().
		StringifyingKeys("contributors._id").
		Finalize()

	articles, err := leanColl.FindLean(ctx, bson.D{}, opts)
	if err != nil {
		return err
	}

	for _, article := range articles {
		fmt.Printf("%v\n", article)
	}

	return nil
}

func seedArticles(ctx context.Context, coll *mongo.Collection) error {
	if err := coll.Drop(ctx); err != nil {
		return err
	}

	articles := []any{
		bson.M{
			"_id":   primitive.NewObjectID(),
			"__v":   int32(0),
			"title": "release notes",
			"contributors": bson.A{
				bson.M{"_id": primitive.NewObjectID(), "name": "first"},
				bson.M{"_id": primitive.NewObjectID(), "name": "second"},
			},
		},
		bson.M{
			"_id":          primitive.NewObjectID(),
			"__v":          int32(3),
			"title":        "roadmap",
			"contributors": bson.A{},
		},
	}

	_, err := coll.InsertMany(ctx, articles)

	return err
}
