package beca

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/junioryono/beca/mapper"
	"github.com/junioryono/beca/record"
	"github.com/junioryono/beca/service"
	"github.com/junioryono/beca/store"
)

// builder registers resource factories into a dig container and records the
// order in which they are built.
type builder struct {
	container *dig.Container
	logger    *zap.Logger
	built     []ResourceName

	// client is set once the connection exists.
	client *mongo.Client
}

func newBuilder(logger *zap.Logger) *builder {
	return &builder{
		container: dig.New(dig.DeferAcyclicVerification()),
		logger:    logger,
	}
}

func (b *builder) provide(name ResourceName, constructor any) error {
	return b.container.Provide(constructor,
		dig.WithProviderCallback(func(ci dig.CallbackInfo) {
			if ci.Error != nil {
				b.logger.Debug("resource failed",
					zap.Stringer("resource", name),
					zap.String("constructor", ci.Name),
					zap.Error(ci.Error))
				return
			}
			b.built = append(b.built, name)
			b.logger.Debug("resource built", zap.Stringer("resource", name))
		}),
	)
}

// moduleOption represents a registration action within a module.
type moduleOption func(*builder) error

// newModule groups the providers of one layer of the resource graph.
func newModule(name string, options ...moduleOption) moduleOption {
	return func(b *builder) error {
		for _, option := range options {
			if option == nil {
				continue
			}

			if err := option(b); err != nil {
				return ModuleError{Module: name, Cause: err}
			}
		}

		return nil
	}
}

// provide registers the factory of one resource.
func provide(name ResourceName, constructor any) moduleOption {
	return func(b *builder) error {
		return b.provide(name, constructor)
	}
}

// connectionModule builds the connection and the database handle.
func connectionModule(ctx context.Context, cfg Config, opts *containerOptions) moduleOption {
	return newModule("connection",
		func(b *builder) error {
			return b.provide(DBClient, func() (*mongo.Client, error) {
				client, err := opts.connector(ctx, cfg.URL, opts.clientOptions...)
				if err != nil {
					return nil, err
				}
				b.client = client
				return client, nil
			})
		},
		provide(DB, func(client *mongo.Client) (*mongo.Database, error) {
			return store.Database(client, cfg.DBName)
		}),
	)
}

// collectionsModule builds one collection per entity. Collections only
// depend on the database handle.
func collectionsModule(cfg Config) moduleOption {
	return newModule("collections",
		provide(SourcesCollection, func(db *mongo.Database) *store.Collection[record.Source] {
			return store.NewCollection[record.Source](db.Collection(cfg.Sources))
		}),
		provide(MappingsCollection, func(db *mongo.Database) *store.Collection[record.Mapping] {
			return store.NewCollection[record.Mapping](db.Collection(cfg.Mappings))
		}),
		provide(TargetsCollection, func(db *mongo.Database) *store.Collection[record.Target] {
			return store.NewCollection[record.Target](db.Collection(cfg.Targets))
		}),
		provide(ResponsesCollection, func(db *mongo.Database) *store.Collection[record.Response] {
			return store.NewCollection[record.Response](db.Collection(cfg.Responses))
		}),
	)
}

// servicesModule builds one service per entity, each on its own collection.
func servicesModule() moduleOption {
	return newModule("services",
		provide(SourcesService, func(coll *store.Collection[record.Source]) service.Store[record.Source] {
			return service.NewSources(coll)
		}),
		provide(MappingsService, func(coll *store.Collection[record.Mapping]) service.Reader[record.Mapping] {
			return service.NewMappings(coll)
		}),
		provide(TargetsService, func(coll *store.Collection[record.Target]) service.Store[record.Target] {
			return service.NewTargets(coll)
		}),
		provide(ResponsesService, func(coll *store.Collection[record.Response]) service.Store[record.Response] {
			return service.NewResponses(coll)
		}),
	)
}

// mapperModule builds the stateless mapper.
func mapperModule() moduleOption {
	return newModule("mapper",
		provide(MapperService, mapper.New),
	)
}

// graph is the fully built resource set. Invoking a function that takes it
// forces dig to build every resource in dependency order.
type graph struct {
	dig.In

	Client              *mongo.Client
	DB                  *mongo.Database
	SourcesCollection   *store.Collection[record.Source]
	MappingsCollection  *store.Collection[record.Mapping]
	TargetsCollection   *store.Collection[record.Target]
	ResponsesCollection *store.Collection[record.Response]
	SourcesService      service.Store[record.Source]
	MappingsService     service.Reader[record.Mapping]
	TargetsService      service.Store[record.Target]
	ResponsesService    service.Store[record.Response]
	Mapper              mapper.Func
}

func (g graph) resources() map[ResourceName]any {
	return map[ResourceName]any{
		DBClient:            g.Client,
		DB:                  g.DB,
		SourcesCollection:   g.SourcesCollection,
		MappingsCollection:  g.MappingsCollection,
		TargetsCollection:   g.TargetsCollection,
		ResponsesCollection: g.ResponsesCollection,
		SourcesService:      g.SourcesService,
		MappingsService:     g.MappingsService,
		TargetsService:      g.TargetsService,
		ResponsesService:    g.ResponsesService,
		MapperService:       g.Mapper,
	}
}
