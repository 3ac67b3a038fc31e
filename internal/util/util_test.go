package util

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int
	}{
		{"empty", 0},
		{"short", 4},
		{"image suffix", 20},
		{"long", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RandomString(tt.length)
			if len(got) != tt.length {
				t.Fatalf("RandomString(%d) length = %d", tt.length, len(got))
			}
			for _, r := range got {
				if !strings.ContainsRune(randomAlphabet, r) {
					t.Fatalf("RandomString produced unexpected character %q", r)
				}
			}
		})
	}
}

func TestRandomString_Distinct(t *testing.T) {
	t.Parallel()

	a := RandomString(20)
	b := RandomString(20)
	if a == b {
		t.Fatal("two random strings were identical")
	}
}
