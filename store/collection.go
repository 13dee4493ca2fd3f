package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/junioryono/beca/fault"
)

// ErrNilCollection is returned by operations on a Collection that was built
// without a driver collection.
var ErrNilCollection = errors.New("store: collection is not initialized")

// Collection is a typed view over a MongoDB collection holding documents of
// type T. It is stateless and safe for concurrent use.
type Collection[T any] struct {
	coll *mongo.Collection
}

// NewCollection wraps coll.
func NewCollection[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

// Mongo exposes the underlying driver collection.
func (c *Collection[T]) Mongo() *mongo.Collection {
	if c == nil {
		return nil
	}
	return c.coll
}

// Name returns the collection name, or "" when uninitialized.
func (c *Collection[T]) Name() string {
	if c == nil || c.coll == nil {
		return ""
	}
	return c.coll.Name()
}

// Find returns every document. The result is never nil.
func (c *Collection[T]) Find(ctx context.Context) ([]T, error) {
	if c == nil || c.coll == nil {
		return nil, fault.Tag(fault.Database, ErrNilCollection)
	}

	cursor, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fault.Tag(fault.Database, err)
	}

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fault.Tag(fault.Database, err)
	}
	if docs == nil {
		docs = make([]T, 0)
	}
	return docs, nil
}

// FindByID returns the document with the given id, or nil when none matches.
func (c *Collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if c == nil || c.coll == nil {
		return nil, fault.Tag(fault.Database, ErrNilCollection)
	}

	var doc T
	err := c.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fault.Tag(fault.Database, err)
	}
	return &doc, nil
}

// Insert stores doc as is.
func (c *Collection[T]) Insert(ctx context.Context, doc T) error {
	if c == nil || c.coll == nil {
		return fault.Tag(fault.Database, ErrNilCollection)
	}
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return fault.Tag(fault.Database, err)
	}
	return nil
}

// DeleteAll removes every document and returns how many were deleted.
func (c *Collection[T]) DeleteAll(ctx context.Context) (int64, error) {
	if c == nil || c.coll == nil {
		return 0, fault.Tag(fault.Database, ErrNilCollection)
	}
	res, err := c.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fault.Tag(fault.Database, err)
	}
	return res.DeletedCount, nil
}
