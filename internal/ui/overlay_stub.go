//go:build !ebiten

package ui

import "ising/internal/ising"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*ising.Simulation, int) *Overlay { return &Overlay{} }

// SetCursor is a no-op in headless builds.
func (o *Overlay) SetCursor(int, int) {}

// HideCursor is a no-op in headless builds.
func (o *Overlay) HideCursor() {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
