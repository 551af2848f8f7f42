package texture

// Package texture implements the image pipeline leaves: decoding the PBR
// source maps, packing channels into the engine's map conventions, square
// resampling, and deterministic PNG output.
