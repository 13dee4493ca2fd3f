// Package store builds the persistence resources used by beca: the MongoDB
// connection, the database handle and typed collections.
//
// Connection and handle factories return raw driver errors; they run while
// the dependency graph is assembled, before any classification applies.
// Operations on built resources return errors tagged fault.Database.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/junioryono/beca/fault"
)

var (
	// ErrEmptyURI is returned by Connect when no connection string is given.
	ErrEmptyURI = errors.New("store: connection uri cannot be empty")

	// ErrNilClient is returned when a nil client is passed to a factory.
	ErrNilClient = errors.New("store: client cannot be nil")

	// ErrEmptyDatabaseName is returned by Database for an empty name.
	ErrEmptyDatabaseName = errors.New("store: database name cannot be empty")
)

// Connect creates a client for uri. It does not run any command against the
// server; use Ping to check reachability. The caller owns the client and must
// Disconnect it.
func Connect(ctx context.Context, uri string, opts ...*options.ClientOptions) (*mongo.Client, error) {
	if uri == "" {
		return nil, ErrEmptyURI
	}

	clientOpts := append([]*options.ClientOptions{options.Client().ApplyURI(uri)}, opts...)
	return mongo.Connect(ctx, clientOpts...)
}

// Database returns the handle for the named database.
func Database(client *mongo.Client, name string) (*mongo.Database, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if name == "" {
		return nil, ErrEmptyDatabaseName
	}
	return client.Database(name), nil
}

// Ping checks the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return fault.Tag(fault.Database, ErrNilClient)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fault.Tag(fault.Database, err)
	}
	return nil
}
