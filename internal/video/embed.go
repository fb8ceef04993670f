// Package video rewrites raw YouTube URLs (watch pages, short links,
// shorts) into embeddable player URLs.
package video

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultID is the video played when a URL cannot be parsed. A broken
// URL degrades to a playable default rather than a broken embed.
const DefaultID = "VLjt-VX8CQI"

// embedParams enable autoplay and inline playback and suppress the
// related-video panel and most branding.
const embedParams = "autoplay=1&rel=0&modestbranding=1&playsinline=1"

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractID pulls the 11-character video identifier out of a raw URL.
// Supported forms: watch?v=ID, youtu.be/ID, /shorts/ID and /embed/ID.
// Anything unparseable yields DefaultID.
func ExtractID(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return DefaultID
	}

	if id := u.Query().Get("v"); idPattern.MatchString(id) {
		return id
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 {
		return DefaultID
	}

	// youtu.be/<id> keeps the id as the first path segment; shorts and
	// embed URLs keep it as the segment after the marker.
	if strings.HasSuffix(u.Host, "youtu.be") && idPattern.MatchString(segments[0]) {
		return segments[0]
	}
	for i, seg := range segments {
		if (seg == "shorts" || seg == "embed") && i+1 < len(segments) && idPattern.MatchString(segments[i+1]) {
			return segments[i+1]
		}
	}

	return DefaultID
}

// EmbedURL rewrites a raw video URL into the embeddable player form.
func EmbedURL(raw string) string {
	return "https://www.youtube.com/embed/" + ExtractID(raw) + "?" + embedParams
}
