// Package clustermap draws the cluster table as a grid image: one cell per
// cluster, coloured by the file that owns it, with a legend of files.
package clustermap

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/user/fatsim/pkg/fat"
	"github.com/user/fatsim/pkg/ports"
)

// Style controls the cluster map appearance.
type Style struct {
	CellSize    int // Cell edge in pixels
	Columns     int // Cells per row
	Padding     int // Margin around the grid and legend
	Background  color.Color
	FreeColor   color.Color
	BorderColor color.Color
	TextColor   color.Color
	Palette     []color.Color // File colors, reused cyclically by slot
}

const (
	titleHeight  = 24
	legendHeight = 18
	swatchSize   = 12
)

// Rect is a rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H int
}

// Layout holds the computed canvas geometry.
type Layout struct {
	Width   int
	Height  int
	Cells   []Rect // Indexed by cluster
	Legend  []Rect // One row per file, in listing order
	TitleAt Rect
}

// ComputeLayout places clusters row-major in Columns columns, with the
// legend below the grid.
func ComputeLayout(clusters, files int, style Style) Layout {
	cols := style.Columns
	if cols <= 0 || cols > clusters {
		cols = clusters
	}
	if cols <= 0 {
		cols = 1
	}
	rows := (clusters + cols - 1) / cols

	l := Layout{
		Width:   2*style.Padding + cols*style.CellSize,
		TitleAt: Rect{X: style.Padding, Y: style.Padding, W: cols * style.CellSize, H: titleHeight},
	}

	gridTop := style.Padding + titleHeight
	for i := 0; i < clusters; i++ {
		l.Cells = append(l.Cells, Rect{
			X: style.Padding + (i%cols)*style.CellSize,
			Y: gridTop + (i/cols)*style.CellSize,
			W: style.CellSize,
			H: style.CellSize,
		})
	}

	legendTop := gridTop + rows*style.CellSize + style.Padding
	for i := 0; i < files; i++ {
		l.Legend = append(l.Legend, Rect{
			X: style.Padding,
			Y: legendTop + i*legendHeight,
			W: cols * style.CellSize,
			H: legendHeight,
		})
	}

	l.Height = legendTop + files*legendHeight + style.Padding
	return l
}

// Painter draws snapshots through a ports.Renderer.
type Painter struct {
	renderer ports.Renderer
	logger   ports.Logger
	style    Style
}

// New creates a Painter.
func New(renderer ports.Renderer, logger ports.Logger, style Style) *Painter {
	return &Painter{
		renderer: renderer,
		logger:   logger.WithComponent("clustermap"),
		style:    style,
	}
}

// Draw renders the snapshot to an image.
func (p *Painter) Draw(snap fat.Snapshot) (image.Image, error) {
	owners, err := snap.Owners()
	if err != nil {
		return nil, fmt.Errorf("resolve owners: %w", err)
	}

	files := snap.Files()
	layout := ComputeLayout(len(snap.Table), len(files), p.style)
	p.logger.Debug("Drawing %d clusters and %d files on %dx%d canvas", len(snap.Table), len(files), layout.Width, layout.Height)

	canvas := p.renderer.CreateCanvas(layout.Width, layout.Height, p.style.Background)
	text := ports.TextStyle{Color: p.style.TextColor, Align: ports.AlignLeft}
	centred := ports.TextStyle{Color: p.style.TextColor, Align: ports.AlignCenter}

	canvas.DrawText(
		fmt.Sprintf("FAT %d x %d B  free %d/%d", snap.Geometry.NumClusters, snap.Geometry.ClusterSize, snap.Stats.Free, snap.Stats.Total),
		layout.TitleAt.X, layout.TitleAt.Y+layout.TitleAt.H/2, text)
	ruleY := layout.TitleAt.Y + layout.TitleAt.H - 2
	canvas.DrawLine(layout.TitleAt.X, ruleY, layout.TitleAt.X+layout.TitleAt.W, ruleY, p.style.BorderColor, 1)

	for i, c := range snap.Table {
		r := layout.Cells[i]
		canvas.DrawRect(r.X+1, r.Y+1, r.W-2, r.H-2, p.cellColor(owners[i]))
		canvas.DrawRectStroke(r.X, r.Y, r.W, r.H, p.style.BorderColor, 1)
		canvas.DrawText(strconv.Itoa(i), r.X+r.W/2, r.Y+r.H/4, centred)
		if label := cellLabel(c); label != "" {
			canvas.DrawText(label, r.X+r.W/2, r.Y+r.H*2/3, centred)
		}
	}

	slotOrder := 0
	for slot, e := range snap.Slots {
		if !e.Active {
			continue
		}
		r := layout.Legend[slotOrder]
		slotOrder++

		canvas.DrawRect(r.X, r.Y+(r.H-swatchSize)/2, swatchSize, swatchSize, p.fileColor(slot))
		canvas.DrawText(fileLabel(e), r.X+swatchSize+8, r.Y+r.H/2, text)
	}

	return canvas.ToImage(), nil
}

// RenderPNG draws the snapshot and encodes it as PNG.
func (p *Painter) RenderPNG(snap fat.Snapshot) ([]byte, error) {
	img, err := p.Draw(snap)
	if err != nil {
		return nil, err
	}
	return p.renderer.EncodePNG(img)
}

func (p *Painter) cellColor(owner int) color.Color {
	if owner < 0 {
		return p.style.FreeColor
	}
	return p.fileColor(owner)
}

func (p *Painter) fileColor(slot int) color.Color {
	if len(p.style.Palette) == 0 {
		return p.style.TextColor
	}
	return p.style.Palette[slot%len(p.style.Palette)]
}

func cellLabel(c fat.Cluster) string {
	switch c.State {
	case fat.StateEndOfChain:
		return "EOF"
	case fat.StateNext:
		return "-> " + strconv.Itoa(c.Next)
	default:
		return ""
	}
}

func fileLabel(e fat.FileEntry) string {
	start := "-"
	if e.HasChain() {
		start = strconv.Itoa(e.StartCluster)
	}
	return fmt.Sprintf("%s  %d B  start %s", e.Name, e.Size, start)
}
