// Package record defines the documents stored by beca.
package record

import "go.mongodb.org/mongo-driver/bson/primitive"

// Record is implemented by every stored document. WithID returns a copy of
// the record carrying the given identifier.
type Record[T any] interface {
	WithID(id primitive.ObjectID) T
}

var (
	_ Record[Source]   = Source{}
	_ Record[Target]   = Target{}
	_ Record[Mapping]  = Mapping{}
	_ Record[Response] = Response{}
)

// Source describes an inbound payload producer.
type Source struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" yaml:"-"`
	Name        string             `bson:"name" json:"name" yaml:"name"`
	Description string             `bson:"description" json:"description" yaml:"description"`
	Template    string             `bson:"template" json:"template" yaml:"template"`
}

func (s Source) WithID(id primitive.ObjectID) Source {
	s.ID = id
	return s
}

// Target describes an outbound endpoint a mapped payload is delivered to.
type Target struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" yaml:"-"`
	Name        string             `bson:"name" json:"name" yaml:"name"`
	Description string             `bson:"description" json:"description" yaml:"description"`
	Method      string             `bson:"method,omitempty" json:"method,omitempty" yaml:"method"`
	Headers     string             `bson:"headers,omitempty" json:"headers,omitempty" yaml:"headers"`
	URL         string             `bson:"url,omitempty" json:"url,omitempty" yaml:"url"`
	Template    string             `bson:"template,omitempty" json:"template,omitempty" yaml:"template"`
}

func (t Target) WithID(id primitive.ObjectID) Target {
	t.ID = id
	return t
}

// Mapping holds the template that turns a source payload into a target body.
type Mapping struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" yaml:"-"`
	Name        string             `bson:"name" json:"name" yaml:"name"`
	Description string             `bson:"description" json:"description" yaml:"description"`
	Template    string             `bson:"template" json:"template" yaml:"template"`
}

func (m Mapping) WithID(id primitive.ObjectID) Mapping {
	m.ID = id
	return m
}

// Response describes the reply returned to a source.
type Response struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" yaml:"-"`
	Name        string             `bson:"name" json:"name" yaml:"name"`
	Description string             `bson:"description" json:"description" yaml:"description"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty" yaml:"status"`
	Headers     string             `bson:"headers,omitempty" json:"headers,omitempty" yaml:"headers"`
	Template    string             `bson:"template" json:"template" yaml:"template"`
}

func (r Response) WithID(id primitive.ObjectID) Response {
	r.ID = id
	return r
}
