// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with ui.Width() and ui.Height() as dimensions.
//
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreatePointerLayer creates a layer just below and right of the pointer,
// pulled back inside the screen when it would overflow
func CreatePointerLayer(content string, pointerX, pointerY, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := min(pointerX+GhostOffsetX, screenWidth-lipgloss.Width(content))
	y := min(pointerY+GhostOffsetY, screenHeight-lipgloss.Height(content))

	return lipgloss.NewLayer(content).X(max(x, 0)).Y(max(y, 0))
}

// DialogSize returns the content width and height available inside a
// dialog box on a screen of the given size
func DialogSize(screenWidth, screenHeight int) (int, int) {
	width := min(max(screenWidth/DialogWidthDivisor, DialogMinWidth), DialogMaxWidth)
	width = min(width, screenWidth)

	height := screenHeight * DialogMaxHeightNumerator / DialogMaxHeightDivisor

	return max(width-DialogChromeWidth, 1), max(height-DialogChromeHeight, 1)
}
