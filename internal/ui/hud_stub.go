//go:build !ebiten

package ui

import "driftfield/internal/stage"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*stage.Stage) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
