package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the export service and renders
// texture slots, run progress, and the conversion log. All UI strings are
// localized via Localization.
