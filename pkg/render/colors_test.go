package render

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#102030", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{in: "10203040", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: "#fff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseHexColor(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("Nord")
	if err != nil || th != ThemeNord {
		t.Fatalf("ParseTheme(Nord) = %v, %v", th, err)
	}
	if _, err := ParseTheme("sepia"); err == nil {
		t.Fatal("unknown theme should fail")
	}
	if Theme(99).Background() != ThemeClassic.Background() {
		t.Fatal("unknown theme should fall back to classic")
	}
}
