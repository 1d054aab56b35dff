package seed

import "testing"

func TestDeriveDeterministic(t *testing.T) {
	a := Derive(42, "level", "3")
	b := Derive(42, "level", "3")
	if a != b {
		t.Errorf("Derive not deterministic: %d != %d", a, b)
	}
}

func TestDeriveSensitivity(t *testing.T) {
	base := Derive(42, "level", "3")

	tests := []struct {
		name string
		got  int64
	}{
		{"different base", Derive(43, "level", "3")},
		{"different label", Derive(42, "level", "4")},
		{"swapped label order", Derive(42, "3", "level")},
		{"shifted label boundary", Derive(42, "leve", "l3")},
		{"no labels", Derive(42)},
	}
	for _, tt := range tests {
		if tt.got == base {
			t.Errorf("%s: derived seed collides with base derivation", tt.name)
		}
	}
}
