// Package handlers provides the HTTP handler implementations for the beers
// API.
//
// This file defines the shared response shaper: the single place where a
// result (a domain value or a request error) is turned into an HTTP status
// and an optional body. Keeping the mapping here guarantees every endpoint
// agrees on the wire contract:
//
//	MalformedID, InvalidBody → 400 with the error JSON
//	ResourceNotFound         → 204 with an empty body
//	anything else            → 500 (infrastructure fault)
//
// The 204-for-missing mapping is intentional: this service does not reveal
// whether a resource exists on GET or PUT and never emits a 404 from the
// error sum. Request errors are logged at warn, infrastructure faults at
// error, both through the request-scoped logger.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/welcz/beers-api/internal/domain"
	"github.com/welcz/beers-api/internal/http/middleware"
)

// respond writes the outcome of a handler. On a nil error it serializes body
// with the given success status; otherwise it shapes the error per the table
// above. Headers must be set by the caller before calling respond.
func respond(c *gin.Context, status int, body any, err error) {
	if err == nil {
		c.JSON(status, body)
		return
	}
	respondError(c, err)
}

// respondError maps an error to its HTTP shape. The switch over the request
// error sum is exhaustive; the default case only fires for errors outside
// the sum, which are by definition infrastructure faults.
func respondError(c *gin.Context, err error) {
	var reqErr domain.RequestError
	if !errors.As(err, &reqErr) {
		serverError(c, err)
		return
	}

	middleware.LoggerFrom(c).Warn().Str("error", reqErr.Error()).Msg("request rejected")

	switch reqErr.(type) {
	case *domain.MalformedID, *domain.InvalidBody:
		c.AbortWithStatusJSON(http.StatusBadRequest, reqErr)
	case *domain.ResourceNotFound:
		c.AbortWithStatus(http.StatusNoContent)
	default:
		serverError(c, reqErr)
	}
}

// serverError reports an infrastructure fault. The body shape mirrors the
// request-error envelope but carries no detail; specifics stay in the logs.
func serverError(c *gin.Context, err error) {
	middleware.LoggerFrom(c).Error().Err(err).Msg("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"message": "Internal server error",
	})
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail writes a JSON error with the given status and message. It is used by
// the router for fallbacks (unknown route, wrong method) that live outside
// the beers contract.
func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}
