// Package domain defines the core data model of the beer catalog and the
// request-error taxonomy shared by the HTTP and persistence layers.
package domain

// Beer is a persisted catalog entry. The identifier is assigned by the
// storage layer on creation and is opaque to clients; on the wire it appears
// under the `_id` key as a hex string.
//
// Fields:
//   - ID: server-assigned opaque identifier, unique across the collection.
//   - Brand: brewery or product line (e.g. "Astra").
//   - Name: label name within the brand (e.g. "Urhell").
//   - Strength: alcohol by volume, e.g. 5.0.
type Beer struct {
	ID       string  `json:"_id"      example:"65b4f1dca7c047c3e81f9a10"`
	Brand    string  `json:"brand"    example:"Astra"`
	Name     string  `json:"name"     example:"Urhell"`
	Strength float64 `json:"strength" example:"5.0"`
}

// PartialBeer is a client-supplied beer without an identifier. It is the
// request body for create and replace operations.
type PartialBeer struct {
	Brand    string  `json:"brand"    example:"Astra"`
	Name     string  `json:"name"     example:"Urhell"`
	Strength float64 `json:"strength" example:"5.0"`
}

// WithID builds the full Beer carrying the given identifier. Replacement is
// total: every field of the result comes from the partial.
func (p PartialBeer) WithID(id string) Beer {
	return Beer{
		ID:       id,
		Brand:    p.Brand,
		Name:     p.Name,
		Strength: p.Strength,
	}
}
