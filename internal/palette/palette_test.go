package palette

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestDefault(t *testing.T) {
	p := Default()
	if len(p) != 8 {
		t.Fatalf("len(Default()) = %d, want 8", len(p))
	}
	for i, c := range p {
		if c.A != 1 {
			t.Fatalf("color %d alpha = %v", i, c.A)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ff0000", want: Color{1, 0, 0, 1}},
		{in: "#00ff0080", want: Color{0, 1, 0, 128.0 / 255}},
		{in: "#fff", want: Color{1, 1, 1, 1}},
		{in: "White", want: Color{1, 1, 1, 1}},
		{in: "black", want: Color{0, 0, 0, 1}},
		{in: "#12", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "notacolor", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) err = %v", tt.in, err)
			}
			if tt.wantErr {
				return
			}
			if math32.Abs(got.R-tt.want.R) > 1e-3 || math32.Abs(got.G-tt.want.G) > 1e-3 ||
				math32.Abs(got.B-tt.want.B) > 1e-3 || math32.Abs(got.A-tt.want.A) > 1e-3 {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRainbow(t *testing.T) {
	for _, tt := range []float32{0, 0.25, 0.5, 0.9, 3.7} {
		c := Rainbow(tt)
		for _, ch := range []float32{c.R, c.G, c.B} {
			if ch < 0 || ch > 1 {
				t.Fatalf("Rainbow(%v) channel %v out of range", tt, ch)
			}
		}
		if c.A != 1 {
			t.Fatalf("Rainbow(%v) alpha = %v", tt, c.A)
		}
	}
	if c := Rainbow(0); math32.Abs(c.R-0.5) > 1e-5 {
		t.Fatalf("Rainbow(0).R = %v, want 0.5", c.R)
	}
}

func TestRGBA8Clamps(t *testing.T) {
	c := Color{R: 1.5, G: -1, B: 0.5, A: 1}.RGBA8()
	if c.R != 255 || c.G != 0 || c.B != 128 || c.A != 255 {
		t.Fatalf("RGBA8 = %+v", c)
	}
}
