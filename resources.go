package beca

import (
	"slices"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/junioryono/beca/mapper"
	"github.com/junioryono/beca/record"
	"github.com/junioryono/beca/service"
	"github.com/junioryono/beca/store"
)

// Resources is a projection of the built graph. Accessors return the zero
// value for resources that were not selected.
type Resources map[ResourceName]any

// Get returns the resource stored under name as T.
//
//	targets, ok := beca.Get[service.Store[record.Target]](r, beca.TargetsService)
func Get[T any](r Resources, name ResourceName) (T, bool) {
	v, ok := r[name].(T)
	return v, ok
}

// Has reports whether name was selected.
func (r Resources) Has(name ResourceName) bool {
	_, ok := r[name]
	return ok
}

// Names returns the selected names in build order.
func (r Resources) Names() []ResourceName {
	names := make([]ResourceName, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DBClient returns the connection.
func (r Resources) DBClient() *mongo.Client {
	v, _ := Get[*mongo.Client](r, DBClient)
	return v
}

// DB returns the database handle.
func (r Resources) DB() *mongo.Database {
	v, _ := Get[*mongo.Database](r, DB)
	return v
}

// SourcesCollection returns the sources collection.
func (r Resources) SourcesCollection() *store.Collection[record.Source] {
	v, _ := Get[*store.Collection[record.Source]](r, SourcesCollection)
	return v
}

// MappingsCollection returns the mappings collection.
func (r Resources) MappingsCollection() *store.Collection[record.Mapping] {
	v, _ := Get[*store.Collection[record.Mapping]](r, MappingsCollection)
	return v
}

// TargetsCollection returns the targets collection.
func (r Resources) TargetsCollection() *store.Collection[record.Target] {
	v, _ := Get[*store.Collection[record.Target]](r, TargetsCollection)
	return v
}

// ResponsesCollection returns the responses collection.
func (r Resources) ResponsesCollection() *store.Collection[record.Response] {
	v, _ := Get[*store.Collection[record.Response]](r, ResponsesCollection)
	return v
}

// SourcesService returns the sources service.
func (r Resources) SourcesService() service.Store[record.Source] {
	v, _ := Get[service.Store[record.Source]](r, SourcesService)
	return v
}

// MappingsService returns the mappings service.
func (r Resources) MappingsService() service.Reader[record.Mapping] {
	v, _ := Get[service.Reader[record.Mapping]](r, MappingsService)
	return v
}

// TargetsService returns the targets service.
func (r Resources) TargetsService() service.Store[record.Target] {
	v, _ := Get[service.Store[record.Target]](r, TargetsService)
	return v
}

// ResponsesService returns the responses service.
func (r Resources) ResponsesService() service.Store[record.Response] {
	v, _ := Get[service.Store[record.Response]](r, ResponsesService)
	return v
}

// Mapper returns the template mapper.
func (r Resources) Mapper() mapper.Func {
	v, _ := Get[mapper.Func](r, MapperService)
	return v
}
