package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/designfolio/internal/action"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func parseOptionalUint(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// statusFor maps a mutation result onto an HTTP status.
func statusFor(res action.Result) int {
	if res.Success {
		return http.StatusOK
	}
	switch res.Kind {
	case action.KindValidation, action.KindStorage:
		return http.StatusBadRequest
	case action.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondResult(c *gin.Context, res action.Result) {
	c.JSON(statusFor(res), res)
}

func (a *API) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"message": message,
		"retry":   c.Request.URL.RequestURI(),
	})
}
