// MongoDB-backed beer store.
//
// MongoBeerStore implements the five-operation storage port over a single
// collection. It follows the "thin repository" approach: no business logic,
// only document mapping and single-document collection operations.
//
// Error semantics:
//   - Identifier decode failures return *domain.MalformedID before storage
//     is reached.
//   - A missing document returns *domain.ResourceNotFound carrying the id
//     string exactly as the caller supplied it.
//   - Driver and connectivity failures are propagated untouched; they are
//     not part of the request-error sum and become 5xx at the HTTP boundary.
package repo

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/welcz/beers-api/internal/domain"
)

// storedBeer is the collection document shape. The internal ObjectID never
// leaves this package: domain values always carry the hex-encoded form.
type storedBeer struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Brand    string        `bson:"brand"`
	Name     string        `bson:"name"`
	Strength float64       `bson:"strength"`
}

// toBeer maps the document to its domain form, encoding the identifier.
func (d storedBeer) toBeer() domain.Beer {
	return domain.Beer{
		ID:       encodeID(d.ID),
		Brand:    d.Brand,
		Name:     d.Name,
		Strength: d.Strength,
	}
}

// storedFromPartial builds the document for a partial beer. A zero id is
// omitted on insert so the server assigns one.
func storedFromPartial(p domain.PartialBeer, id bson.ObjectID) storedBeer {
	return storedBeer{
		ID:       id,
		Brand:    p.Brand,
		Name:     p.Name,
		Strength: p.Strength,
	}
}

// filterByID matches the single document with the given identifier.
func filterByID(id bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// MongoBeerStore persists beers in a MongoDB collection. All operations are
// atomic at the single-document level; there are no multi-document
// transactions. Safe for concurrent use.
type MongoBeerStore struct {
	coll *mongo.Collection
}

// NewMongoBeerStore wraps the given collection.
func NewMongoBeerStore(coll *mongo.Collection) *MongoBeerStore {
	return &MongoBeerStore{coll: coll}
}

// Create inserts the partial beer under a fresh identifier and returns the
// full beer with its assigned id.
func (s *MongoBeerStore) Create(ctx context.Context, p domain.PartialBeer) (*domain.Beer, error) {
	res, err := s.coll.InsertOne(ctx, storedFromPartial(p, bson.ObjectID{}))
	if err != nil {
		return nil, err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("repo: unexpected inserted id type %T", res.InsertedID)
	}
	b := p.WithID(encodeID(oid))
	return &b, nil
}

// List streams every stored beer exactly once, in unspecified order. The
// sequence is lazy and non-restartable: documents are decoded as the cursor
// is consumed, and concurrent mutations may or may not be reflected. A
// non-nil error terminates the sequence.
func (s *MongoBeerStore) List(ctx context.Context) iter.Seq2[domain.Beer, error] {
	return func(yield func(domain.Beer, error) bool) {
		cur, err := s.coll.Find(ctx, bson.D{})
		if err != nil {
			yield(domain.Beer{}, err)
			return
		}
		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var doc storedBeer
			if err := cur.Decode(&doc); err != nil {
				yield(domain.Beer{}, err)
				return
			}
			if !yield(doc.toBeer(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(domain.Beer{}, err)
		}
	}
}

// Get looks up a beer by its external identifier.
func (s *MongoBeerStore) Get(ctx context.Context, id string) (*domain.Beer, error) {
	oid, err := decodeID(id)
	if err != nil {
		return nil, err
	}

	var doc storedBeer
	if err := s.coll.FindOne(ctx, filterByID(oid)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.ResourceNotFound{ID: id}
		}
		return nil, err
	}
	b := doc.toBeer()
	return &b, nil
}

// Replace overwrites the beer with the given identifier with the partial's
// fields. The stored id is the decoded one from the URL; the returned beer
// echoes the caller's id string. Replacement is total, there is no merge.
func (s *MongoBeerStore) Replace(ctx context.Context, id string, p domain.PartialBeer) (*domain.Beer, error) {
	oid, err := decodeID(id)
	if err != nil {
		return nil, err
	}

	res, err := s.coll.ReplaceOne(ctx, filterByID(oid), storedFromPartial(p, oid))
	if err != nil {
		return nil, err
	}
	if res.MatchedCount != 1 {
		return nil, &domain.ResourceNotFound{ID: id}
	}
	b := p.WithID(id)
	return &b, nil
}

// Delete removes the beer with the given identifier. Exactly one document
// must be deleted for the operation to succeed.
func (s *MongoBeerStore) Delete(ctx context.Context, id string) error {
	oid, err := decodeID(id)
	if err != nil {
		return err
	}

	res, err := s.coll.DeleteOne(ctx, filterByID(oid))
	if err != nil {
		return err
	}
	if res.DeletedCount != 1 {
		return &domain.ResourceNotFound{ID: id}
	}
	return nil
}
