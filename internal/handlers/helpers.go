package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yrfilms/studio-backend/internal/httperr"
)

const jsonContentType = "application/json; charset=utf-8"

// marshalList builds the same counted envelope httpresp.List writes, as
// raw bytes suitable for caching.
func marshalList[T any](key string, items []T) ([]byte, error) {
	return json.Marshal(gin.H{
		"success": true,
		"count":   len(items),
		key:       items,
	})
}

func writeCached(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, jsonContentType, body)
}

// parseIDParam rejects non-numeric ids with the same 404 an unknown id
// would get, so malformed ids never reach the database.
func parseIDParam(c *gin.Context, notFoundMsg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, notFoundMsg)
		return 0, false
	}
	return uint(id), true
}

func writeUploadError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "file_too_large"):
		httperr.BadRequest(c, "File too large. Maximum size is 10MB.")
	case httperr.IsBusiness(err, "invalid_file_type"):
		httperr.BadRequest(c, "Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed.")
	default:
		httperr.Internal(c, "Error uploading image")
	}
}
