package recommend

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibeflow-io/web-api/services/rating"
	"github.com/vibeflow-io/web-api/services/recommend"
	"github.com/vibeflow-io/web-api/services/session"
	"github.com/vibeflow-io/web-api/services/view"
	"github.com/vibeflow-io/web-api/services/watchlist"
)

type Client interface {
	GetRecommendations(ctx context.Context, prefs recommend.Preferences) ([]*recommend.Recommendation, error)
	GetSurprise(ctx context.Context) ([]*recommend.Recommendation, error)
}

type Handler struct {
	cl Client
	vm *view.Manager
	wl *watchlist.Store
	rt *rating.Store
}

func RegisterHandler(r *gin.Engine, cl Client, vm *view.Manager, wl *watchlist.Store, rt *rating.Store) {
	h := &Handler{
		cl: cl,
		vm: vm,
		wl: wl,
		rt: rt,
	}
	r.POST("/recommendations", h.request)
	r.GET("/recommendations", h.current)
	r.POST("/recommendations/filter", h.filter)
	r.POST("/recommendations/search", h.search)
}

type requestArgs struct {
	Mood     string `form:"mood" json:"mood"`
	Genres   string `form:"genres" json:"genres"`
	LikeThis string `form:"like_this" json:"like_this"`
	Surprise bool   `form:"surprise" json:"surprise"`
}

func (s *Handler) request(c *gin.Context) {
	var args requestArgs
	if err := c.ShouldBind(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	prefs := recommend.Preferences{
		Mood:     args.Mood,
		Genres:   args.Genres,
		LikeThis: args.LikeThis,
	}
	if !args.Surprise && prefs.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "tell us a mood, some genres or a title you liked"})
		return
	}

	st := s.state(c)
	if st.Loading() {
		c.JSON(http.StatusConflict, gin.H{"message": "a request is already in flight"})
		return
	}

	seq := st.Begin()

	ctx := c.Request.Context()
	var batch []*recommend.Recommendation
	var err error
	if args.Surprise {
		batch, err = s.cl.GetSurprise(ctx)
	} else {
		batch, err = s.cl.GetRecommendations(ctx, prefs)
	}
	if err != nil {
		st.Fail(seq, recommend.GenericErrorMessage)
	} else {
		st.Complete(seq, batch)
	}

	c.JSON(http.StatusOK, st.Snapshot(ctx, s.wl, s.rt))
}

func (s *Handler) current(c *gin.Context) {
	st := s.state(c)
	c.JSON(http.StatusOK, st.Snapshot(c.Request.Context(), s.wl, s.rt))
}

func (s *Handler) filter(c *gin.Context) {
	var args struct {
		Type string `form:"type" json:"type"`
	}
	if err := c.ShouldBind(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	st := s.state(c)
	st.SetFilter(args.Type)
	c.JSON(http.StatusOK, st.Snapshot(c.Request.Context(), s.wl, s.rt))
}

func (s *Handler) search(c *gin.Context) {
	var args struct {
		Query string `form:"query" json:"query"`
	}
	if err := c.ShouldBind(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	st := s.state(c)
	st.SetSearch(args.Query)
	c.JSON(http.StatusOK, st.Snapshot(c.Request.Context(), s.wl, s.rt))
}

func (s *Handler) state(c *gin.Context) *view.State {
	return s.vm.Get(session.GetID(c))
}
