package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"ising/internal/core"
)

// Target is the simulation surface the HUD reads from and writes to.
type Target interface {
	Name() string
	Size() core.Size
	core.ParameterProvider
}

const noValue = "--"

// controlRow is one HUD line: a control descriptor plus the value last read
// from the snapshot and its hit boxes.
type controlRow struct {
	control core.ParameterControl
	text    string
	number  float64
	on      bool
	ok      bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

func newControlRows(controls []core.ParameterControl) []controlRow {
	rows := make([]controlRow, len(controls))
	for i, c := range controls {
		rows[i] = controlRow{control: c, text: noValue}
	}
	return rows
}

// refresh reads the row's current value out of snap.
func (r *controlRow) refresh(snap core.ParameterSnapshot) {
	r.ok, r.text = false, noValue
	if r.control.Type == core.ParamTypeAction {
		r.ok, r.text = true, ""
		return
	}
	p, found := snap.Lookup(r.control.Key)
	if !found {
		return
	}
	switch r.control.Type {
	case core.ParamTypeInt:
		n, err := strconv.Atoi(p.Value)
		if err != nil {
			return
		}
		r.number, r.text = float64(n), strconv.Itoa(n)
	case core.ParamTypeFloat:
		f, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return
		}
		r.number, r.text = f, strconv.FormatFloat(f, 'f', 2, 64)
	case core.ParamTypeBool:
		b, err := strconv.ParseBool(p.Value)
		if err != nil {
			return
		}
		r.on, r.text = b, "off"
		if b {
			r.text = "on"
		}
	default:
		return
	}
	r.ok = true
}

// nudge returns the value one step away in direction, clamped to the control
// bounds, and whether it differs from the current value.
func (r *controlRow) nudge(direction int) (float64, bool) {
	if !r.ok || direction == 0 {
		return r.number, false
	}
	step := r.control.Step
	switch r.control.Type {
	case core.ParamTypeInt:
		if step = math.Round(step); step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return r.number, false
	}
	next := r.control.Clamp(r.number + float64(direction)*step)
	if r.control.Type == core.ParamTypeInt {
		next = math.Round(next)
	}
	return next, math.Abs(next-r.number) > 1e-9
}

// controlSink routes row presses to whichever setters the target implements.
type controlSink struct {
	ints    core.IntParameterSetter
	floats  core.FloatParameterSetter
	bools   core.BoolParameterSetter
	actions core.ActionInvoker
}

func newControlSink(target any) controlSink {
	var s controlSink
	s.ints, _ = target.(core.IntParameterSetter)
	s.floats, _ = target.(core.FloatParameterSetter)
	s.bools, _ = target.(core.BoolParameterSetter)
	s.actions, _ = target.(core.ActionInvoker)
	return s
}

// enabled reports whether pressing the row in direction would do anything.
// Toggles and actions ignore direction.
func (s controlSink) enabled(r *controlRow, direction int) bool {
	if !r.ok {
		return false
	}
	switch r.control.Type {
	case core.ParamTypeBool:
		return s.bools != nil
	case core.ParamTypeAction:
		return s.actions != nil
	case core.ParamTypeInt:
		if s.ints == nil {
			return false
		}
	case core.ParamTypeFloat:
		if s.floats == nil {
			return false
		}
	}
	_, changed := r.nudge(direction)
	return changed
}

// press applies the row's action and reports whether the target accepted it.
func (s controlSink) press(r *controlRow, direction int) bool {
	if !s.enabled(r, direction) {
		return false
	}
	key := r.control.Key
	switch r.control.Type {
	case core.ParamTypeBool:
		return s.bools.SetBoolParameter(key, !r.on)
	case core.ParamTypeAction:
		return s.actions.InvokeAction(key)
	}
	next, _ := r.nudge(direction)
	if r.control.Type == core.ParamTypeInt {
		return s.ints.SetIntParameter(key, int(next))
	}
	return s.floats.SetFloatParameter(key, next)
}

// layoutRows stacks rows below the title. Numeric rows get a -/+ pair on the
// right edge, toggles a single wide button, actions a full-width button.
func layoutRows(rows []controlRow, width int) {
	for i := range rows {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		right := width - panelPadding
		plus := image.Rect(right-buttonSize, y, right, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		switch rows[i].control.Type {
		case core.ParamTypeBool:
			plus.Min.X = right - toggleWidth
			minus = image.Rectangle{}
		case core.ParamTypeAction:
			plus.Min.X = panelPadding
			minus = image.Rectangle{}
		}
		rows[i].top, rows[i].minus, rows[i].plus = top, minus, plus
	}
}

// hit maps a panel-local point to the row it falls on and the direction of the
// button pressed. Toggles and actions report +1.
func hit(rows []controlRow, p image.Point) (int, int, bool) {
	for i := range rows {
		switch {
		case p.In(rows[i].plus):
			return i, 1, true
		case p.In(rows[i].minus):
			return i, -1, true
		}
	}
	return 0, 0, false
}

func panelTitle(target Target) string {
	if target == nil || target.Name() == "" {
		return "Controls"
	}
	name := target.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	toggleWidth    = 40
	headerBaseline = 18
	labelBaseline  = 24
	readoutSpacing = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
