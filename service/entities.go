package service

import (
	"github.com/junioryono/beca/fault"
	"github.com/junioryono/beca/record"
)

// NewSources builds the sources service.
func NewSources(coll Collection[record.Source]) Store[record.Source] {
	return newEntityService("source", fault.SourceFormat, coll)
}

// NewTargets builds the targets service.
func NewTargets(coll Collection[record.Target]) Store[record.Target] {
	return newEntityService("target", fault.TargetFormat, coll)
}

// NewResponses builds the responses service.
func NewResponses(coll Collection[record.Response]) Store[record.Response] {
	return newEntityService("response", fault.ResponseFormat, coll)
}

// NewMappings builds the mappings service. Mappings are read-only.
func NewMappings(coll Collection[record.Mapping]) Reader[record.Mapping] {
	return newEntityService("mapping", fault.MappingFormat, coll)
}
