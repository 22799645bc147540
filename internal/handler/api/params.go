package api

import (
	"net/http"

	"vidly/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses the :id segment. A malformed id cannot name any record, so it
// is answered with notFound like an unknown one.
func pathID(c *gin.Context, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, notFound, notFound.Error(), nil)
		return uuid.Nil, false
	}
	return id, true
}
