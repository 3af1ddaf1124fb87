package trailer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibeflow-io/web-api/services/trailer"
)

type Handler struct {
}

func RegisterHandler(r *gin.Engine) {
	h := &Handler{}
	r.GET("/trailer/resolve", h.resolve)
}

// resolve maps an arbitrary video url to a canonical embed url. An
// unrecognized url is not an error, just no trailer.
func (s *Handler) resolve(c *gin.Context) {
	embed, ok := trailer.Resolve(c.Query("url"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true, "embed_url": embed})
}
