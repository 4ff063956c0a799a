// Package services defines the application-level operations on the beer
// catalog. The service is deliberately thin: the API performs no field
// validation (empty strings and unusual strengths are stored as sent, for
// compatibility with existing clients), so its job is to own the storage
// port contract and keep the transport layer decoupled from persistence.
package services

import (
	"context"
	"iter"

	"github.com/welcz/beers-api/internal/domain"
)

// BeerStore is the storage port the catalog depends on: five operations over
// beer records with atomic single-document semantics.
//
// Error contract (shared by all keyed operations):
//   - an id that does not decode yields *domain.MalformedID without touching
//     storage;
//   - a well-formed id with no matching record yields
//     *domain.ResourceNotFound carrying the caller's id string verbatim;
//   - any other error is an infrastructure fault and is propagated as-is.
//
// Implementations must be safe for concurrent use and honor the context on
// every operation.
type BeerStore interface {
	// Create persists the partial beer under a fresh unique identifier and
	// returns the full beer with its assigned id.
	Create(ctx context.Context, p domain.PartialBeer) (*domain.Beer, error)

	// List streams every stored beer exactly once, in unspecified order.
	// The sequence is lazy and non-restartable.
	List(ctx context.Context) iter.Seq2[domain.Beer, error]

	// Get returns the beer with the given external identifier.
	Get(ctx context.Context, id string) (*domain.Beer, error)

	// Replace overwrites every field of the identified beer with the
	// partial's fields, preserving the identifier. No partial merge.
	Replace(ctx context.Context, id string, p domain.PartialBeer) (*domain.Beer, error)

	// Delete removes the identified beer; success means exactly one record
	// was deleted.
	Delete(ctx context.Context, id string) error
}

// BeerService exposes catalog operations to the transport layer.
type BeerService struct {
	// Store is the storage port used by this service.
	Store BeerStore
}

// NewBeerService constructs a BeerService bound to the given store.
func NewBeerService(store BeerStore) *BeerService {
	return &BeerService{Store: store}
}

// Create adds a new beer to the catalog.
func (s *BeerService) Create(ctx context.Context, p domain.PartialBeer) (*domain.Beer, error) {
	return s.Store.Create(ctx, p)
}

// List streams the whole catalog.
func (s *BeerService) List(ctx context.Context) iter.Seq2[domain.Beer, error] {
	return s.Store.List(ctx)
}

// Get fetches a single beer by id.
func (s *BeerService) Get(ctx context.Context, id string) (*domain.Beer, error) {
	return s.Store.Get(ctx, id)
}

// Replace overwrites a beer by id.
func (s *BeerService) Replace(ctx context.Context, id string, p domain.PartialBeer) (*domain.Beer, error) {
	return s.Store.Replace(ctx, id, p)
}

// Delete removes a beer by id.
func (s *BeerService) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}
