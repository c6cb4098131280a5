package render

import (
	"errors"
	"image/color"
)

// ErrInvalidResolution is returned by backends asked for a non-positive
// resolution.
var ErrInvalidResolution = errors.New("render: resolution must be positive")

// Fixed presentation colors for the point cloud.
var (
	ClearColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	PointColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Point is a vertex in lattice space with the origin at the top-left corner.
type Point struct {
	X, Y float32
}

// PointBuffer is one frame worth of points.
type PointBuffer []Point

// Flatten appends the interleaved x,y stream of the buffer to dst.
func (b PointBuffer) Flatten(dst []float32) []float32 {
	for _, p := range b {
		dst = append(dst, p.X, p.Y)
	}
	return dst
}

// Backend is the rendering contract consumed by the lattice bridge. The
// backend clears the frame to ClearColor and draws every point as a single
// PointColor pixel.
type Backend interface {
	SetResolution(width, height int) error
	DrawPoints(points PointBuffer)
}
