package trailer

import (
	"net/url"
	"regexp"
	"strings"
)

var idFallbackRE = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// Resolve extracts a canonical autoplay embed URL from an arbitrary
// YouTube link. Recognized shapes: youtu.be short links, youtube.com
// /embed/ paths and watch?v= query params, plus a regexp fallback for
// anything else. Unrecognized input yields ok=false, never an error.
func Resolve(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	videoID := ""
	u, err := url.Parse(raw)
	if err == nil && u.Host != "" {
		host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
		switch {
		case host == "youtu.be":
			videoID = strings.TrimPrefix(u.Path, "/")
			if i := strings.Index(videoID, "/"); i >= 0 {
				videoID = videoID[:i]
			}
		case strings.HasSuffix(host, "youtube.com"):
			if i := strings.Index(u.Path, "/embed/"); i >= 0 {
				videoID = u.Path[i+len("/embed/"):]
				if j := strings.Index(videoID, "/"); j >= 0 {
					videoID = videoID[:j]
				}
			} else {
				videoID = u.Query().Get("v")
			}
		}
	}

	if videoID == "" {
		m := idFallbackRE.FindStringSubmatch(raw)
		if m == nil {
			return "", false
		}
		videoID = m[1]
	}

	videoID, _, _ = strings.Cut(videoID, "&")
	if videoID == "" {
		return "", false
	}

	return "https://www.youtube.com/embed/" + videoID + "?autoplay=1", true
}
