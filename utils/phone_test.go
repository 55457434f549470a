package utils

import "testing"

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"already normalized", "+919876543210", "+919876543210"},
		{"spaces stripped", "+91 98765 43210", "+919876543210"},
		{"hyphens stripped", "98765-43210", "+919876543210"},
		{"prefix prepended", "9876543210", "+919876543210"},
		{"foreign prefix kept", "+14155552671", "+14155552671"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhoneNumber(tt.phone, "+91"); got != tt.want {
				t.Errorf("NormalizePhoneNumber(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestSlugWithSuffix(t *testing.T) {
	if got := SlugWithSuffix("sing-a-song", 0); got != "sing-a-song" {
		t.Errorf("suffix 0 should keep the base, got %q", got)
	}
	if got := SlugWithSuffix("sing-a-song", 2); got != "sing-a-song-2" {
		t.Errorf("suffix 2 = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	if got := Slugify("Sing a Song in Public!"); got != "sing-a-song-in-public" {
		t.Errorf("Slugify = %q", got)
	}
}
