package layers

const (
	DialogMinWidth = 40
	DialogMaxWidth = 72

	DialogWidthDivisor = 2 // dialogs take half the screen

	DialogMaxHeightNumerator = 3 // 3/4 = 75% of screen height
	DialogMaxHeightDivisor   = 4

	DialogChromeWidth  = 6 // border(2) + padding(4)
	DialogChromeHeight = 4 // border(2) + padding(2)

	GhostOffsetX = 2 // dragged card preview sits right of and below the pointer
	GhostOffsetY = 1
)
