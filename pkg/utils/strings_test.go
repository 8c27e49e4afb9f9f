package utils_test

import (
	"testing"

	"sunnyside-backend/pkg/utils"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Huevos Rancheros!", "huevos-rancheros"},
		{"Lox & Bagel  Plate", "lox-bagel-plate"},
		{"--Already-Sluggy--", "already-sluggy"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := utils.GenerateSlug(tt.in); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
