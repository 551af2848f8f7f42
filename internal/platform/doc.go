package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, converter executable recognition, and opening the
// output folder in the system file manager.
