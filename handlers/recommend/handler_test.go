package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vibeflow-io/web-api/services/kv"
	"github.com/vibeflow-io/web-api/services/rating"
	"github.com/vibeflow-io/web-api/services/recommend"
	"github.com/vibeflow-io/web-api/services/session"
	"github.com/vibeflow-io/web-api/services/view"
	"github.com/vibeflow-io/web-api/services/watchlist"
)

type mockClient struct {
	batch        []*recommend.Recommendation
	err          error
	surpriseHits int
	prefHits     int
	lastPrefs    recommend.Preferences
	block        chan struct{}
	started      chan struct{}
}

func (m *mockClient) GetRecommendations(_ context.Context, prefs recommend.Preferences) ([]*recommend.Recommendation, error) {
	m.prefHits++
	m.lastPrefs = prefs
	m.wait()
	return m.batch, m.err
}

func (m *mockClient) GetSurprise(context.Context) ([]*recommend.Recommendation, error) {
	m.surpriseHits++
	m.wait()
	return m.batch, m.err
}

func (m *mockClient) wait() {
	if m.started != nil {
		close(m.started)
		m.started = nil
	}
	if m.block != nil {
		<-m.block
	}
}

func newTestRouter(cl *mockClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	session.Register(r, "test-secret")
	store := kv.NewMemory()
	RegisterHandler(r, cl, view.NewManager(), watchlist.New(store), rating.New(store))
	return r
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequest_RejectsEmptyPreferences(t *testing.T) {
	r := newTestRouter(&mockClient{})

	w := postForm(r, "/recommendations", url.Values{"mood": {"  "}}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRequest_SuccessExposesBatch(t *testing.T) {
	cl := &mockClient{batch: []*recommend.Recommendation{
		{Title: "Inception", Type: recommend.TypeMovie},
		{Title: "Dune", Type: recommend.TypeBook},
	}}
	r := newTestRouter(cl)

	w := postForm(r, "/recommendations", url.Values{"mood": {"tense"}}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var snap view.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if snap.Status != view.StatusReady || snap.Total != 2 {
		t.Errorf("snapshot = %+v", snap)
	}
	if cl.prefHits != 1 || cl.lastPrefs.Mood != "tense" {
		t.Errorf("client called %d times with %+v", cl.prefHits, cl.lastPrefs)
	}
}

func TestRequest_SurpriseIgnoresPreferences(t *testing.T) {
	cl := &mockClient{batch: []*recommend.Recommendation{}}
	r := newTestRouter(cl)

	w := postForm(r, "/recommendations", url.Values{
		"surprise": {"true"},
		"mood":     {"typed earlier"},
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if cl.surpriseHits != 1 || cl.prefHits != 0 {
		t.Errorf("surprise=%d prefs=%d, want 1/0", cl.surpriseHits, cl.prefHits)
	}
}

func TestRequest_FailureNormalizedToOneMessage(t *testing.T) {
	cl := &mockClient{err: errors.New("http 503 from upstream")}
	r := newTestRouter(cl)

	w := postForm(r, "/recommendations", url.Values{"mood": {"calm"}}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var snap view.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if snap.Status != view.StatusFailed {
		t.Fatalf("status = %v, want failed", snap.Status)
	}
	if snap.Error != recommend.GenericErrorMessage {
		t.Errorf("error = %q, want generic message", snap.Error)
	}
	if snap.Total != 0 || len(snap.Items) != 0 {
		t.Error("failed request left items behind")
	}
}

func TestRequest_ConflictWhileLoading(t *testing.T) {
	cl := &mockClient{
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	r := newTestRouter(cl)

	// first hit just to obtain the session cookie
	probe := httptest.NewRequest("GET", "/recommendations", nil)
	pw := httptest.NewRecorder()
	r.ServeHTTP(pw, probe)
	cookies := pw.Result().Cookies()

	started := cl.started
	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- postForm(r, "/recommendations", url.Values{"mood": {"slow"}}, cookies)
	}()
	<-started

	w := postForm(r, "/recommendations", url.Values{"mood": {"eager"}}, cookies)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409 while loading", w.Code)
	}

	close(cl.block)
	first := <-done
	if first.Code != http.StatusOK {
		t.Errorf("first request status = %d, want 200", first.Code)
	}
}
