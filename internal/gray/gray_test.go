package gray

import (
	"image"
	"image/color"
	"testing"
)

func TestLuma(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"white", 255, 255, 255, 255},
		{"black", 0, 0, 0, 0},
		{"red", 255, 0, 0, 54},
		{"green", 0, 255, 0, 182},
		{"blue", 0, 0, 255, 18},
		{"mid gray", 128, 128, 128, 128},
		{"mixed", 200, 100, 50, 117},
		{"dark", 10, 20, 30, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luma(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Luma(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestLumaFixedPointForGray(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := uint8(v)
		if got := Luma(c, c, c); got != c {
			t.Fatalf("Luma(%d, %d, %d) = %d, want %d", v, v, v, got, v)
		}
	}
}

func makeTestImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 32), B: uint8(x*7 + y*11), A: uint8(255 - x)})
		}
	}
	return img
}

func TestConvert(t *testing.T) {
	img := makeTestImage()
	orig := image.NewNRGBA(img.Rect)
	copy(orig.Pix, img.Pix)

	out := Convert(img)
	if out != img {
		t.Fatal("Convert should return the same buffer")
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			o := orig.NRGBAAt(x, y)
			c := img.NRGBAAt(x, y)
			want := Luma(o.R, o.G, o.B)
			if c.R != want || c.G != want || c.B != want {
				t.Fatalf("pixel (%d,%d) = %v, want luma %d", x, y, c, want)
			}
			if c.A != o.A {
				t.Fatalf("alpha changed at (%d,%d): %d -> %d", x, y, o.A, c.A)
			}
		}
	}
}

func TestConvertIdempotent(t *testing.T) {
	once := Convert(makeTestImage())
	twice := Convert(makeTestImage())
	Convert(twice)

	for i := range once.Pix {
		if once.Pix[i] != twice.Pix[i] {
			t.Fatalf("byte %d differs after second conversion: %d vs %d", i, once.Pix[i], twice.Pix[i])
		}
	}
}

func TestConvertSubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 255, 255
	}

	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)
	Convert(sub)

	if c := img.NRGBAAt(0, 0); c.R != 255 || c.G != 0 {
		t.Errorf("pixel outside sub-image changed: %v", c)
	}
	if c := img.NRGBAAt(1, 1); c.R != 54 || c.G != 54 || c.B != 54 {
		t.Errorf("pixel inside sub-image = %v, want gray 54", c)
	}
	if c := img.NRGBAAt(3, 3); c.R != 255 {
		t.Errorf("pixel past sub-image changed: %v", c)
	}
}

func TestConvertNil(t *testing.T) {
	if Convert(nil) != nil {
		t.Error("Convert(nil) should return nil")
	}
}

func TestIsGray(t *testing.T) {
	img := makeTestImage()
	if IsGray(img) {
		t.Error("colour test image should not be gray")
	}
	Convert(img)
	if !IsGray(img) {
		t.Error("converted image should be gray")
	}

	g := image.NewGray(image.Rect(0, 0, 2, 2))
	if !IsGray(g) {
		t.Error("image.Gray should be gray")
	}
}
