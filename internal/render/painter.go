//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointPainter is the ebiten backend: it rasterizes points on the CPU and
// uploads the frame into a single lattice-sized image.
type PointPainter struct {
	raster *Raster
	img    *ebiten.Image
}

// NewPointPainter returns a painter without a resolution.
func NewPointPainter() *PointPainter {
	return &PointPainter{raster: NewRaster()}
}

// SetResolution allocates the backing image.
func (p *PointPainter) SetResolution(width, height int) error {
	if err := p.raster.SetResolution(width, height); err != nil {
		return err
	}
	p.img = ebiten.NewImage(width, height)
	p.img.WritePixels(p.raster.Pixels())
	return nil
}

// DrawPoints rasterizes the frame and uploads it.
func (p *PointPainter) DrawPoints(points PointBuffer) {
	if p.img == nil {
		return
	}
	p.raster.DrawPoints(points)
	p.img.WritePixels(p.raster.Pixels())
}

// Blit draws the last uploaded frame onto dst scaled by scale.
func (p *PointPainter) Blit(dst *ebiten.Image, scale int) {
	if p.img == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *PointPainter) Size() (int, int) { return p.raster.Size() }
