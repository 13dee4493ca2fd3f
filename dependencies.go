package beca

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/dig"
	"go.uber.org/zap"
)

// Selector projects the built resources onto the requested names.
// Unrecognized names are dropped; no names yield an empty result.
type Selector func(names ...string) Resources

// Dependencies is one built resource graph. Every resource is constructed
// exactly once, when CreateDependencies runs; selections hand out the same
// instances for the lifetime of the value.
//
// Dependencies is safe for concurrent use.
type Dependencies struct {
	id        string
	cfg       Config
	container *dig.Container
	resources map[ResourceName]any
	order     []ResourceName
	closed    atomic.Bool
}

// CreateDependencies builds every resource in dependency order: connection,
// database handle, the collections, then the services. The mapper depends on
// nothing. No query is sent to the database.
//
// When a resource cannot be built the original error is returned as is and
// nothing is kept. The connection is never closed by the container; call
// Close, or disconnect the DBClient resource, when done.
//
//	deps, err := beca.CreateDependencies(ctx, beca.Config{DBName: "relay"})
//	if err != nil {
//	    return err
//	}
//	defer deps.Close(ctx)
//
//	r := deps.Select(beca.TargetsService)
//	targets, err := r.TargetsService().GetAll(ctx)
func CreateDependencies(ctx context.Context, cfg Config, opts ...Option) (*Dependencies, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(options)
		}
	}
	if options.connector == nil {
		return nil, ErrNilConnector
	}

	cfg = cfg.WithDefaults()
	id := uuid.NewString()
	logger := options.logger.Named("beca").With(zap.String("dependencies", id))
	start := time.Now()

	b := newBuilder(logger)
	modules := []moduleOption{
		connectionModule(ctx, cfg, options),
		collectionsModule(cfg),
		servicesModule(),
		mapperModule(),
	}
	for _, module := range modules {
		if err := module(b); err != nil {
			return nil, err
		}
	}

	var built map[ResourceName]any
	err := b.container.Invoke(func(g graph) {
		built = g.resources()
	})
	if err != nil {
		// Nothing is handed out, so a connection built before the failure
		// would leak.
		if b.client != nil {
			_ = b.client.Disconnect(context.WithoutCancel(ctx))
		}
		logger.Debug("dependencies failed", zap.Error(err))
		return nil, dig.RootCause(err)
	}

	for _, name := range ResourceNames() {
		if _, ok := built[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotBuilt, name)
		}
	}

	logger.Info("dependencies built",
		zap.String("db", cfg.DBName),
		zap.Int("resources", len(built)),
		zap.Stringers("order", b.built),
		zap.Duration("took", time.Since(start)),
	)

	return &Dependencies{
		id:        id,
		cfg:       cfg,
		container: b.container,
		resources: built,
		order:     slices.Clone(b.built),
	}, nil
}

// ID returns the unique ID of this container invocation.
func (d *Dependencies) ID() string {
	return d.id
}

// Config returns the configuration the resources were built with, defaults
// applied.
func (d *Dependencies) Config() Config {
	return d.cfg
}

// Select returns the requested resources. Names outside the recognized set
// are dropped. Calling Select with no names returns an empty Resources.
func (d *Dependencies) Select(names ...ResourceName) Resources {
	out := make(Resources, len(names))
	for _, name := range names {
		if inst, ok := d.resources[name]; ok {
			out[name] = inst
		}
	}
	return out
}

// SelectNames is Select for wire names such as "dbClient". Unrecognized
// names are silently dropped.
func (d *Dependencies) SelectNames(names ...string) Resources {
	resolved := make([]ResourceName, 0, len(names))
	for _, name := range names {
		if n, ok := ParseResourceName(name); ok {
			resolved = append(resolved, n)
		}
	}
	return d.Select(resolved...)
}

// Selector returns SelectNames as a function value.
func (d *Dependencies) Selector() Selector {
	return d.SelectNames
}

// Visualize writes the resource graph in DOT format.
func (d *Dependencies) Visualize(w io.Writer) error {
	return dig.Visualize(d.container, w)
}

// Close disconnects the database connection. The container never calls it
// on its own. A connection the caller already disconnected is not an error.
// Calling Close more than once returns ErrClosed.
func (d *Dependencies) Close(ctx context.Context) error {
	if !d.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	client, _ := d.resources[DBClient].(*mongo.Client)
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return DisposalError{Resource: DBClient, Cause: err}
	}
	return nil
}
