// Request-error taxonomy.
//
// The three request errors form a closed sum: they are the only values
// implementing RequestError, they travel through the application as ordinary
// error values (never panics), and the HTTP layer switches over them
// exhaustively to pick a status code. Their JSON shape is part of the API
// contract and must stay stable: a fixed `message` plus the variant-specific
// fields.
package domain

import "encoding/json"

// Fixed human-readable messages. Clients inspect these verbatim.
const (
	msgMalformedID      = "The id is invalid"
	msgResourceNotFound = "Resource was not found"
	msgInvalidBody      = "Request body is invalid"
)

// RequestError is the closed sum of errors a request can produce through its
// own fault. Infrastructure failures (driver errors, serialization bugs) are
// deliberately not part of the sum and surface as plain errors.
type RequestError interface {
	error
	requestError()
}

// MalformedID reports that the supplied identifier does not parse. It carries
// the offending input verbatim.
type MalformedID struct {
	ID string
}

func (e *MalformedID) Error() string { return msgMalformedID + ": " + e.ID }
func (*MalformedID) requestError() {}

// MarshalJSON emits the stable wire shape {"message": ..., "id": ...}.
func (e *MalformedID) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}{msgMalformedID, e.ID})
}

// ResourceNotFound reports that no beer with the given identifier exists.
// The ID is the string exactly as the client sent it, not a canonical
// re-encoding.
type ResourceNotFound struct {
	ID string
}

func (e *ResourceNotFound) Error() string { return msgResourceNotFound + ": " + e.ID }
func (*ResourceNotFound) requestError() {}

func (e *ResourceNotFound) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}{msgResourceNotFound, e.ID})
}

// InvalidBody reports that the request body could not be parsed into a
// PartialBeer.
type InvalidBody struct{}

func (e *InvalidBody) Error() string { return msgInvalidBody }
func (*InvalidBody) requestError() {}

func (e *InvalidBody) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message string `json:"message"`
	}{msgInvalidBody})
}
