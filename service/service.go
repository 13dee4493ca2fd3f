// Package service implements the entity services of beca.
//
// Every entity shares one implementation parameterized over its record type.
// Failures never leave a service unclassified: persistence problems, malformed
// identifiers and misbehaving collections are reported as fault.Database, and
// missing input as the entity's format kind.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junioryono/beca/fault"
	"github.com/junioryono/beca/record"
	"github.com/junioryono/beca/store"
)

// ErrNoCollection is reported when a service was built without a collection.
var ErrNoCollection = errors.New("service: no backing collection")

// Collection is the persistence surface a service needs.
// *store.Collection satisfies it.
type Collection[T any] interface {
	Find(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	Insert(ctx context.Context, doc T) error
}

var _ Collection[record.Source] = (*store.Collection[record.Source])(nil)

// Reader gives read access to the records of one entity.
type Reader[T any] interface {
	// GetAll returns every record. The slice is empty, never nil, when
	// there are none.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the record with the given id. An empty id or an id
	// matching nothing yields nil without error.
	GetByID(ctx context.Context, id string) (*T, error)
}

// Store adds writes to Reader.
type Store[T any] interface {
	Reader[T]

	// Insert stores rec under a newly generated id and returns the stored
	// copy. A nil rec is a format failure.
	Insert(ctx context.Context, rec *T) (*T, error)
}

type entityService[T record.Record[T]] struct {
	entity string
	format fault.Kind
	coll   Collection[T]
}

func newEntityService[T record.Record[T]](entity string, format fault.Kind, coll Collection[T]) *entityService[T] {
	return &entityService[T]{entity: entity, format: format, coll: coll}
}

func (s *entityService[T]) GetAll(ctx context.Context) (docs []T, err error) {
	defer s.recoverInto(&err)

	if s.coll == nil {
		return nil, fault.Tag(fault.Database, ErrNoCollection)
	}

	docs, err = s.coll.Find(ctx)
	if err != nil {
		return nil, fault.Tag(fault.Database, err)
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func (s *entityService[T]) GetByID(ctx context.Context, id string) (doc *T, err error) {
	defer s.recoverInto(&err)

	if id == "" {
		return nil, nil
	}

	oid, err := store.ID(id)
	if err != nil {
		return nil, fault.Tag(fault.Database, err)
	}

	if s.coll == nil {
		return nil, fault.Tag(fault.Database, ErrNoCollection)
	}

	doc, err = s.coll.FindByID(ctx, oid)
	if err != nil {
		return nil, fault.Tag(fault.Database, err)
	}
	return doc, nil
}

func (s *entityService[T]) Insert(ctx context.Context, rec *T) (doc *T, err error) {
	defer s.recoverInto(&err)

	if rec == nil {
		return nil, fault.Newf(s.format, "%s is required", s.entity)
	}

	if s.coll == nil {
		return nil, fault.Tag(fault.Database, ErrNoCollection)
	}

	stored := (*rec).WithID(primitive.NewObjectID())
	if err := s.coll.Insert(ctx, stored); err != nil {
		return nil, fault.Tag(fault.Database, err)
	}
	return &stored, nil
}

// recoverInto turns a panic raised by the collection into a database failure.
func (s *entityService[T]) recoverInto(err *error) {
	if rec := recover(); rec != nil {
		*err = fault.Tag(fault.Database, fmt.Errorf("%s collection panicked: %v", s.entity, rec))
	}
}
