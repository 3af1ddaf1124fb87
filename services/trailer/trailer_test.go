package trailer

import "testing"

func TestResolve_ShortLinkAndWatchLinkAgree(t *testing.T) {
	short, ok := Resolve("https://youtu.be/dQw4w9WgXcQ")
	if !ok {
		t.Fatal("short link not resolved")
	}
	watch, ok := Resolve("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if !ok {
		t.Fatal("watch link not resolved")
	}
	if short != watch {
		t.Errorf("short %q != watch %q", short, watch)
	}
	want := "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1"
	if short != want {
		t.Errorf("embed url = %q, want %q", short, want)
	}
}

func TestResolve_EmbedPath(t *testing.T) {
	got, ok := Resolve("https://www.youtube.com/embed/dQw4w9WgXcQ")
	if !ok {
		t.Fatal("embed link not resolved")
	}
	if got != "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1" {
		t.Errorf("unexpected embed url %q", got)
	}
}

func TestResolve_WatchLinkWithExtraParams(t *testing.T) {
	got, ok := Resolve("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s")
	if !ok {
		t.Fatal("watch link with params not resolved")
	}
	if got != "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1" {
		t.Errorf("unexpected embed url %q", got)
	}
}

func TestResolve_FallbackRegexp(t *testing.T) {
	got, ok := Resolve("watch this youtube.com/watch?v=dQw4w9WgXcQ now")
	if !ok {
		t.Fatal("fallback did not resolve")
	}
	if got != "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1" {
		t.Errorf("unexpected embed url %q", got)
	}
}

func TestResolve_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"https://vimeo.com/123456",
		"not a url",
		"https://example.com/watch?v=dQw4w9WgXcQ",
	} {
		if got, ok := Resolve(in); ok {
			t.Errorf("Resolve(%q) = %q, want no trailer", in, got)
		}
	}
}
