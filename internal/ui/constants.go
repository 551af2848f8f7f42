package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconError = "❌"
)

// Text fragments
const (
	NonePlaceholder = "None"
)

// Layout sizing
const (
	WindowWidth  float32 = 620
	WindowHeight float32 = 720

	LogMinHeight float32 = 180
)
