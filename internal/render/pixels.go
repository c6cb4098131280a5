package render

import "image/color"

// fillRGBA paints every pixel of buf with c.
func fillRGBA(buf []byte, c color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// plotPoints paints the pixel containing each point. Points outside the w*h
// frame are dropped.
func plotPoints(buf []byte, w, h int, points PointBuffer, c color.RGBA) int {
	drawn := 0
	for _, p := range points {
		if p.X < 0 || p.Y < 0 {
			continue
		}
		x := int(p.X)
		y := int(p.Y)
		if x >= w || y >= h {
			continue
		}
		base := (y*w + x) * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
		drawn++
	}
	return drawn
}
