package export

// Package export implements the conversion pipeline: job validation, channel
// packing and resizing via internal/texture, intermediate PNG output, and
// invocation of the external PAA converter with its output streamed back to
// the UI log. Maps are processed one at a time in a fixed order; a failure on
// one map is logged and the run continues with the remaining maps.
