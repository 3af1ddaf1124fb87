package watchlist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibeflow-io/web-api/services/rating"
	"github.com/vibeflow-io/web-api/services/recommend"
	"github.com/vibeflow-io/web-api/services/watchlist"
)

type Handler struct {
	wl *watchlist.Store
	rt *rating.Store
}

func RegisterHandler(r *gin.Engine, wl *watchlist.Store, rt *rating.Store) {
	h := &Handler{
		wl: wl,
		rt: rt,
	}
	r.GET("/watchlist", h.index)
	r.POST("/watchlist/add", h.add)
	r.POST("/watchlist/remove", h.remove)
	r.POST("/watchlist/toggle", h.toggle)
}

type entry struct {
	recommend.Recommendation
	UserRating int `json:"user_rating"`
}

// index returns the persisted records so the watchlist can be drawn
// without any live batch.
func (s *Handler) index(c *gin.Context) {
	ctx := c.Request.Context()
	items := s.wl.List(ctx)
	out := make([]*entry, 0, len(items))
	for _, it := range items {
		out = append(out, &entry{
			Recommendation: *it,
			UserRating:     s.rt.ForTitle(ctx, it.Title),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

func (s *Handler) add(c *gin.Context) {
	r, ok := bindRecommendation(c)
	if !ok {
		return
	}
	s.wl.Add(c.Request.Context(), r)
	c.JSON(http.StatusOK, gin.H{"in_watchlist": true})
}

func (s *Handler) remove(c *gin.Context) {
	var args struct {
		Title string `form:"title" json:"title"`
	}
	if err := c.ShouldBind(&args); err != nil || args.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title required"})
		return
	}
	s.wl.Remove(c.Request.Context(), args.Title)
	c.JSON(http.StatusOK, gin.H{"in_watchlist": false})
}

func (s *Handler) toggle(c *gin.Context) {
	r, ok := bindRecommendation(c)
	if !ok {
		return
	}
	added := s.wl.Toggle(c.Request.Context(), r)
	c.JSON(http.StatusOK, gin.H{"in_watchlist": added})
}

// bindRecommendation expects the full record: the store must be able to
// redraw the watchlist after the source batch is gone.
func bindRecommendation(c *gin.Context) (*recommend.Recommendation, bool) {
	var r recommend.Recommendation
	if err := c.ShouldBindJSON(&r); err != nil || r.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "recommendation with title required"})
		return nil, false
	}
	return &r, true
}
