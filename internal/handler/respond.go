package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgo/atrium/apiserver/internal/apperr"
)

// fail renders a domain error with its mapped status. Internal errors
// get a generic body; the caller is responsible for logging detail.
func fail(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
