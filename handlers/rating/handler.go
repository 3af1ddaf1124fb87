package rating

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibeflow-io/web-api/services/rating"
)

type Handler struct {
	rt *rating.Store
}

func RegisterHandler(r *gin.Engine, rt *rating.Store) {
	h := &Handler{
		rt: rt,
	}
	r.GET("/ratings", h.index)
	r.POST("/ratings/rate", h.rate)
}

func (s *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ratings": s.rt.All(c.Request.Context())})
}

type rateArgs struct {
	Title string `form:"title" json:"title"`
	Stars int    `form:"stars" json:"stars"`
}

// rate stores the given stars. Re-submitting the currently stored value
// unsets the rating (0 is "no rating").
func (s *Handler) rate(c *gin.Context) {
	var args rateArgs
	if err := c.ShouldBind(&args); err != nil || args.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title required"})
		return
	}
	if args.Stars < 1 || args.Stars > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "stars must be between 1 and 5"})
		return
	}
	ctx := c.Request.Context()
	stars := args.Stars
	if s.rt.ForTitle(ctx, args.Title) == stars {
		stars = 0
	}
	s.rt.Save(ctx, args.Title, stars)
	c.JSON(http.StatusOK, gin.H{"title": args.Title, "stars": stars})
}
