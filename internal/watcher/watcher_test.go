package watcher

import "testing"

func TestIsRequestFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"url file", "inbox/talk.url", true},
		{"txt file", "inbox/talk.txt", true},
		{"uppercase extension", "inbox/TALK.URL", true},
		{"video file", "inbox/talk.mp4", false},
		{"no extension", "inbox/talk", false},
		{"partial download", "inbox/talk.url.part", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRequestFile(tt.path); got != tt.want {
				t.Errorf("isRequestFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
