// Package formatter writes matched trajectories.
//
// This package is organized into:
// - text.go: the plain "x y" format, six decimals per coordinate
// - json.go: matches with their edge and distance plus a run summary
// - geojson.go: a FeatureCollection for map viewers
//
// The text format is the one other tools re-read as ground truth, so its
// precision must not change.
package formatter
