package testutil

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junioryono/beca/record"
)

// Identifier extractors for MemoryCollection.
var (
	SourceID   = func(s record.Source) primitive.ObjectID { return s.ID }
	TargetID   = func(t record.Target) primitive.ObjectID { return t.ID }
	MappingID  = func(m record.Mapping) primitive.ObjectID { return m.ID }
	ResponseID = func(r record.Response) primitive.ObjectID { return r.ID }
)

// Sources returns two stored sources with fresh ids.
func Sources() []record.Source {
	return []record.Source{
		{ID: primitive.NewObjectID(), Name: "nameforsource1", Description: "", Template: ""},
		{ID: primitive.NewObjectID(), Name: "nameforsource2", Description: "", Template: ""},
	}
}

// Targets returns two stored targets with fresh ids.
func Targets() []record.Target {
	return []record.Target{
		{ID: primitive.NewObjectID(), Name: "nameforTargets1"},
		{ID: primitive.NewObjectID(), Name: "nameforTargets2"},
	}
}

// Mappings returns two stored mappings with fresh ids.
func Mappings() []record.Mapping {
	return []record.Mapping{
		{ID: primitive.NewObjectID(), Name: "nameformapping1", Template: `{"id": {{ $.id }}}`},
		{ID: primitive.NewObjectID(), Name: "nameformapping2"},
	}
}

// Responses returns two stored responses with fresh ids.
func Responses() []record.Response {
	return []record.Response{
		{ID: primitive.NewObjectID(), Name: "nameforresponse1"},
		{ID: primitive.NewObjectID(), Name: "nameforresponse2"},
	}
}

// NewTarget returns an unsaved target.
func NewTarget() *record.Target {
	return &record.Target{
		Name:        "CEP-Notifier-target",
		Description: "Transform CEP body in Notifier Body",
		Method:      "GET",
		Headers:     `{"content-type": "application/json", "appid": "3beca"}`,
		URL:         "http://",
	}
}

// NewResponse returns an unsaved response.
func NewResponse() *record.Response {
	return &record.Response{
		Name:        "CEP-Notifier-target",
		Description: "Transform CEP body in Notifier Body",
		Status:      "200",
		Headers:     `{"content-type": "text/html", "appid": "3beca"}`,
		Template:    "free text response",
	}
}

// NewSource returns an unsaved source.
func NewSource() *record.Source {
	return &record.Source{
		Name:        "CEP-source",
		Description: "Events coming from CEP",
		Template:    `{"id": 1}`,
	}
}
