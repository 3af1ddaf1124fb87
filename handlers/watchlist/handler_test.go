package watchlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vibeflow-io/web-api/services/kv"
	"github.com/vibeflow-io/web-api/services/rating"
	"github.com/vibeflow-io/web-api/services/watchlist"
)

func newTestRouter() (*gin.Engine, *watchlist.Store, *rating.Store) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := kv.NewMemory()
	wl := watchlist.New(store)
	rt := rating.New(store)
	RegisterHandler(r, wl, rt)
	return r, wl, rt
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const inception = `{"title": "Inception", "type": "Movie", "year": 2010, "genres": ["Sci-Fi"], "rating": 8.8}`

func TestToggle_AddsAndRemoves(t *testing.T) {
	r, wl, _ := newTestRouter()
	ctx := context.Background()

	w := postJSON(r, "/watchlist/toggle", inception)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !wl.Has(ctx, "Inception") {
		t.Fatal("first toggle did not add")
	}

	postJSON(r, "/watchlist/toggle", inception)
	if wl.Has(ctx, "Inception") {
		t.Fatal("second toggle did not remove")
	}
}

func TestIndex_ReturnsFullRecordsWithRatings(t *testing.T) {
	r, _, rt := newTestRouter()

	postJSON(r, "/watchlist/add", inception)
	rt.Save(context.Background(), "Inception", 4)

	req := httptest.NewRequest("GET", "/watchlist", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body struct {
		Items []struct {
			Title      string `json:"title"`
			Year       int    `json:"year"`
			UserRating int    `json:"user_rating"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(body.Items))
	}
	it := body.Items[0]
	if it.Title != "Inception" || it.Year != 2010 || it.UserRating != 4 {
		t.Errorf("item = %+v", it)
	}
}

func TestAdd_RequiresTitle(t *testing.T) {
	r, _, _ := newTestRouter()

	if w := postJSON(r, "/watchlist/add", `{"type": "Movie"}`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRemove_ByTitle(t *testing.T) {
	r, wl, _ := newTestRouter()

	postJSON(r, "/watchlist/add", inception)
	w := postJSON(r, "/watchlist/remove", `{"title": "Inception"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if wl.Has(context.Background(), "Inception") {
		t.Error("entry survived remove")
	}
}
