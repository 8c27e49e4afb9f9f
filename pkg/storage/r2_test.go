package storage

import "testing"

func TestKeyFromURL(t *testing.T) {
	s := &R2Storage{publicURL: "https://img.example.com"}

	tests := []struct {
		name    string
		fileURL string
		want    string
		wantErr bool
	}{
		{"object under prefix", "https://img.example.com/items/avocado-toast-abc123.webp", "items/avocado-toast-abc123.webp", false},
		{"nested key", "https://img.example.com/items/2026/toast.jpg", "items/2026/toast.jpg", false},
		{"foreign domain", "https://evil.example.net/items/toast.webp", "", true},
		{"bare prefix", "https://img.example.com", "", true},
		{"prefix with trailing slash only", "https://img.example.com/", "", true},
		{"empty url", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := s.KeyFromURL(tt.fileURL)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("KeyFromURL(%q) = %q, want error", tt.fileURL, key)
				}
				return
			}
			if err != nil {
				t.Fatalf("KeyFromURL(%q): %v", tt.fileURL, err)
			}
			if key != tt.want {
				t.Fatalf("KeyFromURL(%q) = %q, want %q", tt.fileURL, key, tt.want)
			}
		})
	}
}
