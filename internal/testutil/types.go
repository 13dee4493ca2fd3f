package testutil

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common test errors
var (
	ErrTest         = errors.New("test error")
	ErrIntentional  = errors.New("intentional error")
	ErrDuplicateKey = errors.New("duplicate key")
)

// MemoryCollection is an in-memory collection preserving insertion order.
// It is safe for concurrent use.
type MemoryCollection[T any] struct {
	mu   sync.RWMutex
	docs []T
	ids  map[primitive.ObjectID]int
	id   func(T) primitive.ObjectID
}

// NewMemoryCollection creates an empty collection. id extracts the identifier
// of a document.
func NewMemoryCollection[T any](id func(T) primitive.ObjectID, seed ...T) *MemoryCollection[T] {
	c := &MemoryCollection[T]{
		ids: make(map[primitive.ObjectID]int),
		id:  id,
	}
	for _, doc := range seed {
		c.put(doc)
	}
	return c
}

func (c *MemoryCollection[T]) put(doc T) {
	c.ids[c.id(doc)] = len(c.docs)
	c.docs = append(c.docs, doc)
}

func (c *MemoryCollection[T]) Find(context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.docs))
	copy(out, c.docs)
	return out, nil
}

func (c *MemoryCollection[T]) FindByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.ids[id]
	if !ok {
		return nil, nil
	}
	doc := c.docs[idx]
	return &doc, nil
}

func (c *MemoryCollection[T]) Insert(_ context.Context, doc T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.ids[c.id(doc)]; exists {
		return ErrDuplicateKey
	}
	c.put(doc)
	return nil
}

// Len returns the number of stored documents.
func (c *MemoryCollection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// FailingCollection fails every call with Err.
type FailingCollection[T any] struct {
	Err error
}

func (c FailingCollection[T]) Find(context.Context) ([]T, error) {
	return nil, c.err()
}

func (c FailingCollection[T]) FindByID(context.Context, primitive.ObjectID) (*T, error) {
	return nil, c.err()
}

func (c FailingCollection[T]) Insert(context.Context, T) error {
	return c.err()
}

func (c FailingCollection[T]) err() error {
	if c.Err == nil {
		return ErrIntentional
	}
	return c.Err
}

// PanickingCollection panics on every call, like a handle of the wrong shape.
type PanickingCollection[T any] struct{}

func (PanickingCollection[T]) Find(context.Context) ([]T, error) {
	panic("find is not a function")
}

func (PanickingCollection[T]) FindByID(context.Context, primitive.ObjectID) (*T, error) {
	panic("findOne is not a function")
}

func (PanickingCollection[T]) Insert(context.Context, T) error {
	panic("insertOne is not a function")
}
