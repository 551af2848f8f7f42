package model

// Package model defines domain data structures used across the app: texture
// slot and output-type enums, the immutable job configuration, export tasks,
// and status enums. Structures are designed for direct binding in the UI and
// explicit state transitions.
