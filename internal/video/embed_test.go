package video

import (
	"strings"
	"testing"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.youtube.com/watch?v=VLjt-VX8CQI", "VLjt-VX8CQI"},
		{"https://youtu.be/ScMzIvxBSi4", "ScMzIvxBSi4"},
		{"https://www.youtube.com/shorts/tVdmQ34_w0c", "tVdmQ34_w0c"},
		{"https://www.youtube.com/embed/z4sK6t3yA4I?autoplay=1&rel=0&modestbranding=1", "z4sK6t3yA4I"},
		{"https://www.youtube.com/watch?v=VLjt-VX8CQI&t=42s", "VLjt-VX8CQI"},
		{"not-a-url", DefaultID},
		{"", DefaultID},
		{"https://www.youtube.com/watch?v=too-short", DefaultID},
		{"https://example.com/video/whatever", DefaultID},
	}
	for _, tt := range tests {
		if got := ExtractID(tt.raw); got != tt.want {
			t.Errorf("ExtractID(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestEmbedURL(t *testing.T) {
	got := EmbedURL("https://youtu.be/ScMzIvxBSi4")
	if !strings.HasPrefix(got, "https://www.youtube.com/embed/ScMzIvxBSi4?") {
		t.Errorf("unexpected embed URL: %q", got)
	}
	for _, param := range []string{"autoplay=1", "rel=0", "modestbranding=1", "playsinline=1"} {
		if !strings.Contains(got, param) {
			t.Errorf("embed URL missing %s: %q", param, got)
		}
	}
}

func TestEmbedURLFallback(t *testing.T) {
	got := EmbedURL("not-a-url")
	if !strings.Contains(got, DefaultID) {
		t.Errorf("unparseable URL should embed the default id, got %q", got)
	}
}
