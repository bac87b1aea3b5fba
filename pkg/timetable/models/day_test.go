package models

import "testing"

func TestDayUnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    Day
		wantErr bool
	}{
		{"Monday", Monday, false},
		{"friday", Friday, false},
		{"SATURDAY", Saturday, false},
		{"Sunday", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		var d Day
		err := d.UnmarshalText([]byte(tt.input))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && d != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, expected %v", tt.input, d, tt.want)
		}
	}
}

func TestLayoutOffset(t *testing.T) {
	layout := DefaultLayout(5)

	tests := []struct {
		day    Day
		period int
		want   int
		ok     bool
	}{
		{Monday, 1, 0, true},
		{Tuesday, 1, 8, true},
		{Friday, 5, 36, true},
		{Friday, 6, 0, false},
		{Saturday, 8, 44, true},
		{Monday, 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := layout.Offset(tt.day, tt.period)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Offset(%v, %d) = (%d, %v), expected (%d, %v)", tt.day, tt.period, got, ok, tt.want, tt.ok)
		}
	}
}
