// In-memory beer store.
//
// MemoryBeerStore satisfies the same five-operation contract as
// MongoBeerStore using a map guarded by a mutex. It shares the identifier
// codec with the Mongo store, so ids created here decode, re-encode and fail
// exactly like production ones. It backs the handler and service tests and
// doubles as a storage option for local development without a database.
package repo

import (
	"context"
	"iter"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/welcz/beers-api/internal/domain"
)

// MemoryBeerStore holds beer documents in process memory. Safe for
// concurrent use. Each operation touches exactly one entry, mirroring the
// single-document atomicity of the Mongo store.
type MemoryBeerStore struct {
	mu    sync.RWMutex
	beers map[bson.ObjectID]storedBeer
}

// NewMemoryBeerStore returns an empty store.
func NewMemoryBeerStore() *MemoryBeerStore {
	return &MemoryBeerStore{beers: make(map[bson.ObjectID]storedBeer)}
}

// Create assigns a fresh identifier and stores the beer.
func (s *MemoryBeerStore) Create(_ context.Context, p domain.PartialBeer) (*domain.Beer, error) {
	oid := bson.NewObjectID()
	doc := storedFromPartial(p, oid)

	s.mu.Lock()
	s.beers[oid] = doc
	s.mu.Unlock()

	b := p.WithID(encodeID(oid))
	return &b, nil
}

// List yields a snapshot of the stored beers in unspecified order. The
// snapshot is taken when iteration starts, so mutations during consumption
// are not reflected (the contract leaves this open).
func (s *MemoryBeerStore) List(_ context.Context) iter.Seq2[domain.Beer, error] {
	return func(yield func(domain.Beer, error) bool) {
		s.mu.RLock()
		docs := make([]storedBeer, 0, len(s.beers))
		for _, d := range s.beers {
			docs = append(docs, d)
		}
		s.mu.RUnlock()

		for _, d := range docs {
			if !yield(d.toBeer(), nil) {
				return
			}
		}
	}
}

// Get looks up a beer by its external identifier.
func (s *MemoryBeerStore) Get(_ context.Context, id string) (*domain.Beer, error) {
	oid, err := decodeID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	doc, ok := s.beers[oid]
	s.mu.RUnlock()
	if !ok {
		return nil, &domain.ResourceNotFound{ID: id}
	}
	b := doc.toBeer()
	return &b, nil
}

// Replace overwrites an existing beer, preserving its identifier.
func (s *MemoryBeerStore) Replace(_ context.Context, id string, p domain.PartialBeer) (*domain.Beer, error) {
	oid, err := decodeID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.beers[oid]; !ok {
		return nil, &domain.ResourceNotFound{ID: id}
	}
	s.beers[oid] = storedFromPartial(p, oid)

	b := p.WithID(id)
	return &b, nil
}

// Delete removes a beer by its external identifier.
func (s *MemoryBeerStore) Delete(_ context.Context, id string) error {
	oid, err := decodeID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.beers[oid]; !ok {
		return &domain.ResourceNotFound{ID: id}
	}
	delete(s.beers, oid)
	return nil
}
