package ggrenderer

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/fatsim/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 60, color.White)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	bounds := canvas.ToImage().Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 60 {
		t.Errorf("expected 100x60, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCanvas_DrawRect(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(20, 20, color.White)

	red := color.RGBA{R: 255, A: 255}
	canvas.DrawRect(5, 5, 10, 10, red)

	got := color.RGBAModel.Convert(canvas.ToImage().At(10, 10)).(color.RGBA)
	if got != red {
		t.Errorf("expected %v at centre, got %v", red, got)
	}
	corner := color.RGBAModel.Convert(canvas.ToImage().At(1, 1)).(color.RGBA)
	if corner != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected white corner, got %v", corner)
	}
}

func TestCanvas_DrawTextDoesNotPanic(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(80, 20, color.White)

	canvas.DrawText("EOF", 40, 10, ports.TextStyle{Color: color.Black, Align: ports.AlignCenter})
	canvas.DrawLine(0, 0, 79, 19, color.Black, 1)
	canvas.DrawRectStroke(0, 0, 80, 20, color.Black, 1)
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(30, 40, color.Black)

	data, err := r.EncodePNG(canvas.ToImage())
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.Bounds().Dx() != 30 || img.Bounds().Dy() != 40 {
		t.Errorf("expected 30x40, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
