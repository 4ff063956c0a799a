// Identifier codec.
//
// Beers are identified externally by an opaque hex string and internally by
// a bson.ObjectID. The two forms are kept as distinct types so a
// client-provided string can never be stored as an id by accident. This file
// is the only place a MalformedID error is produced.
package repo

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/welcz/beers-api/internal/domain"
)

// decodeID parses the external identifier into its internal form. Any string
// that does not parse yields a *domain.MalformedID carrying the input
// verbatim; storage is never consulted for such ids.
func decodeID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, &domain.MalformedID{ID: id}
	}
	return oid, nil
}

// encodeID renders the internal identifier in its external form. It is total:
// every ObjectID has a hex rendering, and decodeID(encodeID(x)) == x.
func encodeID(id bson.ObjectID) string {
	return id.Hex()
}
