package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/apperrors"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/logger"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/mason"
)

// statusFromKind maps an error kind to its HTTP status code.
func statusFromKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidInput:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// respond writes a Mason document with the hypermedia content type.
func respond(c *gin.Context, status int, doc mason.Document) {
	c.Header("Content-Type", mason.ContentType)
	c.JSON(status, doc)
}

// abortWithError translates a service error into the @error envelope.
// Internal errors are logged with their cause; the client only sees the
// opaque message.
func abortWithError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindInternal {
		logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	respond(c, statusFromKind(kind), mason.NewError(apperrors.MessageOf(err)))
}

// bindJSON decodes the request body, reporting malformed JSON as invalid
// input rather than a generic failure.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		abortWithError(c, apperrors.Wrap(apperrors.KindInvalidInput, "request body is not valid JSON", err))
		return false
	}
	return true
}

// pathID parses a numeric path parameter. Non-numeric values cannot name
// any resource, so they report not found.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		abortWithError(c, apperrors.NotFound("resource '%s' not found", c.Param(name)))
		return 0, false
	}
	return uint(id), true
}
