package style

import "testing"

func TestGenerateHexColor(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{0, 0, 0, "#000000"},
		{255, 255, 0, "#FFFF00"},
		{128, 10, 171, "#800AAB"},
	}
	for _, tt := range tests {
		if got := GenerateHexColor(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("GenerateHexColor(%d, %d, %d) = %q, want %q", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}
