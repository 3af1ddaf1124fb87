package index

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
}

func RegisterHandler(r *gin.Engine) {
	h := &Handler{}
	r.GET("/", h.index)
}

func (s *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "vibeflow",
		"description": "Your personal AI guide to what to watch, read, and play next.",
	})
}
