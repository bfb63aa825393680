package mandel

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantNil bool
	}{
		{name: "valid", width: 48, height: 32, wantNil: false},
		{name: "single pixel", width: 1, height: 1, wantNil: false},
		{name: "zero width", width: 0, height: 32, wantNil: true},
		{name: "zero height", width: 48, height: 0, wantNil: true},
		{name: "negative width", width: -1, height: 32, wantNil: true},
		{name: "negative height", width: 48, height: -1, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(tt.width, tt.height)
			if (pm == nil) != tt.wantNil {
				t.Fatalf("NewPixmap(%d, %d) = %v, wantNil %v", tt.width, tt.height, pm, tt.wantNil)
			}
			if pm == nil {
				return
			}
			if pm.Width() != tt.width || pm.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", pm.Width(), pm.Height(), tt.width, tt.height)
			}
			if len(pm.Data()) != tt.width*tt.height*4 {
				t.Errorf("data length = %d, want %d", len(pm.Data()), tt.width*tt.height*4)
			}
		})
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(16, 16)
	c := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}

	pm.SetPixel(5, 7, c)

	if got := pm.GetPixel(5, 7); got != c {
		t.Errorf("GetPixel(5, 7) = %v, want %v", got, c)
	}
	if got := pm.GetPixel(6, 7); got != (color.RGBA{}) {
		t.Errorf("neighbor pixel = %v, want zero", got)
	}

	// The raw buffer holds RGBA in order at offset (y*w + x) * 4.
	off := (7*16 + 5) * 4
	data := pm.Data()
	if data[off] != 0x12 || data[off+1] != 0x34 || data[off+2] != 0x56 || data[off+3] != 0xFF {
		t.Errorf("raw bytes at offset %d = % x, want 12 34 56 ff", off, data[off:off+4])
	}
}

func TestPixmap_BoundsChecks(t *testing.T) {
	pm := NewPixmap(8, 8)
	c := color.RGBA{R: 0xFF, A: 0xFF}

	// Out-of-range coordinates are ignored on write and zero on read.
	for _, p := range []ScreenPoint{Pt(-1, 0), Pt(0, -1), Pt(8, 0), Pt(0, 8), Pt(100, 100)} {
		pm.SetPixel(p.X, p.Y, c)
		if got := pm.GetPixel(p.X, p.Y); got != (color.RGBA{}) {
			t.Errorf("GetPixel%v = %v, want zero", p, got)
		}
	}
	for _, b := range pm.Data() {
		if b != 0 {
			t.Fatal("out-of-range SetPixel wrote into the buffer")
		}
	}
}

func TestPixmap_Clone(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.SetPixel(2, 3, color.RGBA{R: 0xAA, A: 0xFF})

	cl := pm.Clone()

	if cl.Width() != pm.Width() || cl.Height() != pm.Height() {
		t.Fatalf("clone size = %dx%d, want %dx%d", cl.Width(), cl.Height(), pm.Width(), pm.Height())
	}
	if got := cl.GetPixel(2, 3); got != pm.GetPixel(2, 3) {
		t.Errorf("clone pixel = %v, want %v", got, pm.GetPixel(2, 3))
	}

	// Writes to the clone must not leak back.
	cl.SetPixel(2, 3, color.RGBA{G: 0xBB, A: 0xFF})
	if got := pm.GetPixel(2, 3); got != (color.RGBA{R: 0xAA, A: 0xFF}) {
		t.Errorf("original pixel changed to %v after clone write", got)
	}
}

func TestPixmap_ToImage(t *testing.T) {
	pm := NewPixmap(8, 4)
	c := color.RGBA{R: 0x55, G: 0x66, B: 0x77, A: 0xFF}
	pm.SetPixel(5, 1, c)

	img := pm.ToImage()

	if got, want := img.Bounds(), image.Rect(0, 0, 8, 4); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
	if got := img.RGBAAt(5, 1); got != c {
		t.Errorf("RGBAAt(5, 1) = %v, want %v", got, c)
	}

	// The copy is deep: later pixmap writes must not show up.
	pm.SetPixel(5, 1, color.RGBA{A: 0xFF})
	if got := img.RGBAAt(5, 1); got != c {
		t.Errorf("image pixel changed to %v after pixmap write", got)
	}
}

func TestPixmap_ImageInterface(t *testing.T) {
	pm := NewPixmap(10, 6)
	pm.SetPixel(3, 2, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})

	var img image.Image = pm

	if got, want := img.Bounds(), image.Rect(0, 0, 10, 6); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if img.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not color.RGBAModel")
	}
	if got := img.At(3, 2); got != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Errorf("At(3, 2) = %v, want the pixel set through SetPixel", got)
	}
	if got := img.At(-1, -1); got != (color.RGBA{}) {
		t.Errorf("At(-1, -1) = %v, want zero", got)
	}
}
