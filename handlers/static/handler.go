package static

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed poster-placeholder.svg
var posterPlaceholder []byte

// RegisterHandler serves the assets the api refers to, currently just the
// poster fallback image.
func RegisterHandler(r *gin.Engine) {
	r.GET("/static/poster-placeholder.svg", func(c *gin.Context) {
		c.Data(http.StatusOK, "image/svg+xml", posterPlaceholder)
	})
}
