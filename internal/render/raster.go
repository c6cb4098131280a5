package render

import "fmt"

// Raster is a CPU point backend that keeps the last frame in an RGBA buffer.
type Raster struct {
	w, h   int
	buf    []byte
	frames int
	drawn  int
}

// NewRaster returns a Raster without a resolution; SetResolution must be
// called before drawing.
func NewRaster() *Raster { return &Raster{} }

// SetResolution allocates the frame buffer.
func (r *Raster) SetResolution(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, width, height)
	}
	r.w, r.h = width, height
	r.buf = make([]byte, 4*width*height)
	fillRGBA(r.buf, ClearColor)
	return nil
}

// DrawPoints clears the frame and plots one pixel per point.
func (r *Raster) DrawPoints(points PointBuffer) {
	if r.buf == nil {
		return
	}
	fillRGBA(r.buf, ClearColor)
	r.drawn = plotPoints(r.buf, r.w, r.h, points, PointColor)
	r.frames++
}

// Pixels exposes the RGBA frame buffer.
func (r *Raster) Pixels() []byte { return r.buf }

// Size returns the frame dimensions.
func (r *Raster) Size() (int, int) { return r.w, r.h }

// Frames reports how many frames have been drawn.
func (r *Raster) Frames() int { return r.frames }

// LastDrawn reports how many points landed in the last frame.
func (r *Raster) LastDrawn() int { return r.drawn }
