package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which cards stack vertically.
	LayoutCompactWidth = 100
)

// Card sizes.
const (
	InputCardWidth = 22
	StatCardWidth  = 22
	SliderWidth    = 18

	// HelpModalWidth is the width of the keyboard shortcut overlay.
	HelpModalWidth = 44
)

// inputCharLimit caps how many characters an input accepts.
const inputCharLimit = 10
