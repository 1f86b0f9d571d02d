package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func write(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func OK(c *gin.Context, payload gin.H) {
	write(c, http.StatusOK, payload)
}

func Created(c *gin.Context, payload gin.H) {
	write(c, http.StatusCreated, payload)
}

// List responds with a counted collection under the given key,
// e.g. {"success": true, "count": 2, "projects": [...]}.
func List[T any](c *gin.Context, key string, items []T) {
	write(c, http.StatusOK, gin.H{
		"count": len(items),
		key:     items,
	})
}
