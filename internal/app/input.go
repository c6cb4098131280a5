//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerInput feeds mouse and touch drags into gestures. Presses that start
// at or beyond viewWidth belong to the HUD and are ignored.
type pointerInput struct {
	viewWidth int

	mouse    Gesture
	touch    Gesture
	touchID  ebiten.TouchID
	touchIDs []ebiten.TouchID
}

func newPointerInput(viewWidth int) *pointerInput {
	return &pointerInput{viewWidth: viewWidth}
}

// poll returns the window positions that should be stamped this frame.
func (p *pointerInput) poll(dst [][2]int) [][2]int {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && mx < p.viewWidth {
		if p.mouse.Press(mx, my) {
			dst = append(dst, [2]int{mx, my})
		}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if p.mouse.Move(mx, my) {
			dst = append(dst, [2]int{mx, my})
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.mouse.Release()
	}

	if !p.touch.Active() {
		p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
		for _, id := range p.touchIDs {
			tx, ty := ebiten.TouchPosition(id)
			if tx >= p.viewWidth {
				continue
			}
			p.touchID = id
			if p.touch.Press(tx, ty) {
				dst = append(dst, [2]int{tx, ty})
			}
			break
		}
		return dst
	}
	if inpututil.IsTouchJustReleased(p.touchID) {
		p.touch.Release()
		return dst
	}
	tx, ty := ebiten.TouchPosition(p.touchID)
	if p.touch.Move(tx, ty) {
		dst = append(dst, [2]int{tx, ty})
	}
	return dst
}

// cursor returns the mouse position and whether it is over the lattice view.
func (p *pointerInput) cursor() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	return mx, my, mx >= 0 && my >= 0 && mx < p.viewWidth
}
