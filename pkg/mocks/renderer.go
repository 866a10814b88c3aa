package mocks

import (
	"image"
	"image/color"

	"github.com/user/fatsim/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodePNGFunc    func(img image.Image) ([]byte, error)

	// LastCanvas is the most recent canvas returned by CreateCanvas.
	LastCanvas *Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	m.LastCanvas = &Canvas{Width: width, Height: height, Background: bg}
	return m.LastCanvas
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte("png"), nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Rect is a filled rectangle recorded by Canvas.
type Rect struct {
	X, Y, W, H int
	Color      color.Color
}

// Text is a text draw recorded by Canvas.
type Text struct {
	Text  string
	X, Y  int
	Style ports.TextStyle
}

// Canvas is a mock implementation of ports.Canvas that records draw calls.
type Canvas struct {
	Width      int
	Height     int
	Background color.Color

	Rects   []Rect
	Strokes int
	Lines   int
	Texts   []Text
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.Rects = append(m.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawRectStroke(x, y, w, h int, c color.Color, strokeWidth float64) {
	m.Strokes++
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.Texts = append(m.Texts, Text{Text: text, X: x, Y: y, Style: style})
}

func (m *Canvas) DrawLine(x1, y1, x2, y2 int, c color.Color, width float64) {
	m.Lines++
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
}

// HasText reports whether text was drawn (for test verification).
func (m *Canvas) HasText(text string) bool {
	for _, t := range m.Texts {
		if t.Text == text {
			return true
		}
	}
	return false
}

var _ ports.Canvas = (*Canvas)(nil)
