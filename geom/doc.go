// Package geom holds the planar geometry kernel used by the snapping engine.
//
// Everything here is pure: no I/O, no state, no allocation beyond return
// values. Coordinates are unitless; the same Point type carries grid, pixel
// or lon/lat values depending on the caller, and distances are always
// Euclidean in that plane.
package geom
