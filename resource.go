package beca

import (
	"encoding/json"
	"fmt"
)

// ResourceName identifies one resource built by the container.
// The set is closed and listed in build order.
type ResourceName uint8

const (
	// DBClient is the MongoDB connection (*mongo.Client). The caller owns it
	// and must disconnect it.
	DBClient ResourceName = iota

	// DB is the database handle (*mongo.Database).
	DB

	// SourcesCollection is the sources collection (*store.Collection[record.Source]).
	SourcesCollection

	// MappingsCollection is the mappings collection (*store.Collection[record.Mapping]).
	MappingsCollection

	// TargetsCollection is the targets collection (*store.Collection[record.Target]).
	TargetsCollection

	// ResponsesCollection is the responses collection (*store.Collection[record.Response]).
	ResponsesCollection

	// SourcesService is the sources service (service.Store[record.Source]).
	SourcesService

	// MappingsService is the mappings service (service.Reader[record.Mapping]).
	MappingsService

	// TargetsService is the targets service (service.Store[record.Target]).
	TargetsService

	// ResponsesService is the responses service (service.Store[record.Response]).
	ResponsesService

	// MapperService is the template mapper (mapper.Func). It depends on nothing.
	MapperService

	resourceCount
)

var resourceNames = [resourceCount]string{
	DBClient:            "dbClient",
	DB:                  "db",
	SourcesCollection:   "sourcesCollection",
	MappingsCollection:  "mappingsCollection",
	TargetsCollection:   "targetsCollection",
	ResponsesCollection: "responsesCollection",
	SourcesService:      "sourcesService",
	MappingsService:     "mappingsService",
	TargetsService:      "targetsService",
	ResponsesService:    "responsesService",
	MapperService:       "mapperService",
}

// ResourceNames returns every recognized resource name in build order.
func ResourceNames() []ResourceName {
	names := make([]ResourceName, 0, resourceCount)
	for n := ResourceName(0); n < resourceCount; n++ {
		names = append(names, n)
	}
	return names
}

// ParseResourceName returns the resource with the given name, e.g. "dbClient".
func ParseResourceName(name string) (ResourceName, bool) {
	for n, s := range resourceNames {
		if s == name {
			return ResourceName(n), true
		}
	}
	return 0, false
}

// String returns the string representation of the ResourceName.
func (n ResourceName) String() string {
	if !n.IsValid() {
		return fmt.Sprintf("Unknown(%d)", int(n))
	}
	return resourceNames[n]
}

// IsValid checks if the resource name is recognized.
func (n ResourceName) IsValid() bool {
	return n < resourceCount
}

// MarshalText implements encoding.TextMarshaler.
func (n ResourceName) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return nil, UnknownResourceError{Name: n.String()}
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *ResourceName) UnmarshalText(text []byte) error {
	parsed, ok := ParseResourceName(string(text))
	if !ok {
		return UnknownResourceError{Name: string(text)}
	}
	*n = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n ResourceName) MarshalJSON() ([]byte, error) {
	text, err := n.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *ResourceName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}
