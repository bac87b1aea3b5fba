package schedule

import "testing"

func TestParseOccupant(t *testing.T) {
	tests := []struct {
		code      string
		prefix    string
		hasPrefix bool
		base      string
	}{
		{"e-tania", "e", true, "tania"},
		{"GK-Tania", "gk", true, "tania"},
		{"tania", "", false, "tania"},
		{"  Khalida  ", "", false, "khalida"},
		{"sp-m", "sp", true, "m"},
		{"a-b-c", "a", true, "b-c"},
		{"e - tania", "e", true, "tania"},
		{"-tania", "", true, "tania"},
		{"", "", false, ""},
	}

	for _, tt := range tests {
		got := ParseOccupant(tt.code)
		if got.Prefix != tt.prefix || got.HasPrefix != tt.hasPrefix || got.Base != tt.base {
			t.Errorf("ParseOccupant(%q) = {%q %v %q}, expected {%q %v %q}",
				tt.code, got.Prefix, got.HasPrefix, got.Base, tt.prefix, tt.hasPrefix, tt.base)
		}
	}
}
