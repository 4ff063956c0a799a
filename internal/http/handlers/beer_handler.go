// Beer HTTP handlers.
//
// This file exposes the REST endpoints for the beer catalog:
//   - GET    /beers       (list, streamed)
//   - GET    /beers/{id}  (fetch one)
//   - POST   /beers       (create)
//   - PUT    /beers/{id}  (replace)
//   - DELETE /beers/{id}  (delete, idempotent for clients)
//
// Handlers are transport-thin: they decode input, call the beer service, and
// hand the result to the response shaper in response.go. Body decoding uses
// JSON content negotiation: a missing JSON content type or malformed JSON is
// an InvalidBody request error, never a panic.
package handlers

import (
	"context"
	"encoding/json"
	"iter"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/welcz/beers-api/internal/domain"
)

// BeerService defines the catalog operations consumed by the HTTP handlers.
//
// Implementations must be safe for concurrent use and must honor the
// provided context for cancellation.
type BeerService interface {
	// Create persists a new beer and returns it with its assigned id.
	Create(ctx context.Context, p domain.PartialBeer) (*domain.Beer, error)
	// List streams every beer in the catalog.
	List(ctx context.Context) iter.Seq2[domain.Beer, error]
	// Get fetches a beer by its external id.
	Get(ctx context.Context, id string) (*domain.Beer, error)
	// Replace overwrites a beer by id, keeping the id.
	Replace(ctx context.Context, id string, p domain.PartialBeer) (*domain.Beer, error)
	// Delete removes a beer by id.
	Delete(ctx context.Context, id string) error
}

// Handlers groups the HTTP endpoints of the beer catalog.
type Handlers struct {
	svc BeerService
}

// New constructs a Handlers instance bound to the given service.
func New(svc BeerService) *Handlers {
	return &Handlers{svc: svc}
}

// bindPartialBeer decodes the request body into a PartialBeer. It returns an
// *domain.InvalidBody when the content type is not JSON or the payload does
// not parse. Field contents are not validated; the API stores what it is
// sent.
func bindPartialBeer(c *gin.Context) (domain.PartialBeer, error) {
	var p domain.PartialBeer
	if c.ContentType() != "application/json" {
		return p, &domain.InvalidBody{}
	}
	if err := c.ShouldBindJSON(&p); err != nil {
		return p, &domain.InvalidBody{}
	}
	return p, nil
}

// ListBeers godoc
// @ID          listBeers
// @Summary     List all beers
// @Description Returns every beer in the catalog as a JSON array. An empty catalog yields [].
// @Tags        Beers
// @Produce     json
// @Success     200 {array} domain.Beer
// @Router      /beers [get]
func (h *Handlers) ListBeers(c *gin.Context) {
	next, stop := iter.Pull2(h.svc.List(c.Request.Context()))
	defer stop()

	// Pull the first element before committing the status so a storage
	// failure with nothing written is still a clean 500.
	b, err, ok := next()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Status(http.StatusOK)
	w := c.Writer
	_, _ = w.WriteString("[")
	for ok {
		buf, mErr := json.Marshal(b)
		if mErr != nil {
			_ = c.Error(mErr)
			return
		}
		_, _ = w.Write(buf)

		b, err, ok = next()
		if err != nil {
			// Mid-stream storage failure: the array is already partially
			// written, so the best we can do is truncate and log.
			_ = c.Error(err)
			return
		}
		if ok {
			_, _ = w.WriteString(",")
		}
	}
	_, _ = w.WriteString("]")
}

// GetBeer godoc
// @ID          getBeer
// @Summary     Fetch a beer by id
// @Description Returns the beer with the given id. A missing beer yields 204, not 404.
// @Tags        Beers
// @Produce     json
// @Param       id path string true "Beer id (24-char hex)" example(65b4f1dca7c047c3e81f9a10)
// @Success     200 {object} domain.Beer
// @Success     204 {string} string "No such beer"
// @Failure     400 {object} domain.MalformedID
// @Router      /beers/{id} [get]
func (h *Handlers) GetBeer(c *gin.Context) {
	beer, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	respond(c, http.StatusOK, beer, err)
}

// CreateBeer godoc
// @ID          createBeer
// @Summary     Create a beer
// @Description Persists the posted beer and returns it with its server-assigned id. The Location header points at the new resource.
// @Tags        Beers
// @Accept      json
// @Produce     json
// @Param       body body domain.PartialBeer true "Beer to create"
// @Success     201 {object} domain.Beer
// @Header      201 {string} Location "URL of the created beer"
// @Failure     400 {object} domain.InvalidBody
// @Router      /beers [post]
func (h *Handlers) CreateBeer(c *gin.Context) {
	p, err := bindPartialBeer(c)
	if err != nil {
		respondError(c, err)
		return
	}

	beer, err := h.svc.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	// Built from the request path so it stays correct under a base path.
	c.Header("Location", c.Request.URL.Path+"/"+beer.ID)
	respond(c, http.StatusCreated, beer, nil)
}

// ReplaceBeer godoc
// @ID          replaceBeer
// @Summary     Replace a beer
// @Description Overwrites every field of the beer with the given id. A missing beer yields 204, not 404.
// @Tags        Beers
// @Accept      json
// @Produce     json
// @Param       id   path string             true "Beer id (24-char hex)" example(65b4f1dca7c047c3e81f9a10)
// @Param       body body domain.PartialBeer true "Replacement fields"
// @Success     200 {object} domain.Beer
// @Success     204 {string} string "No such beer"
// @Failure     400 {object} domain.InvalidBody
// @Router      /beers/{id} [put]
func (h *Handlers) ReplaceBeer(c *gin.Context) {
	// The body is decoded before the id is looked at, so an invalid body
	// wins over a malformed id when both apply.
	p, err := bindPartialBeer(c)
	if err != nil {
		respondError(c, err)
		return
	}

	beer, err := h.svc.Replace(c.Request.Context(), c.Param("id"), p)
	respond(c, http.StatusOK, beer, err)
}

// DeleteBeer godoc
// @ID          deleteBeer
// @Summary     Delete a beer
// @Description Removes the beer with the given id. Deleting an absent beer also yields 204, so the operation is idempotent from the client's perspective.
// @Tags        Beers
// @Param       id path string true "Beer id (24-char hex)" example(65b4f1dca7c047c3e81f9a10)
// @Success     204 {string} string "Deleted (or already absent)"
// @Failure     400 {object} domain.MalformedID
// @Router      /beers/{id} [delete]
func (h *Handlers) DeleteBeer(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}
