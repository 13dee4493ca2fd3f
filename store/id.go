package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junioryono/beca/fault"
)

// ID converts s to an ObjectID. Both the 24 character hex form and a raw
// 12 byte string are accepted. Anything else is a fault.Database error, since
// the value can never reach the database.
func ID(s string) (primitive.ObjectID, error) {
	switch len(s) {
	case 24:
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return primitive.NilObjectID, fault.Tag(fault.Database, err)
		}
		return id, nil
	case 12:
		var id primitive.ObjectID
		copy(id[:], s)
		return id, nil
	default:
		return primitive.NilObjectID, fault.Newf(fault.Database, "invalid identifier %q", s)
	}
}
