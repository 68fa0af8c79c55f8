// Package tracesnap wires the loaders, the snapping engine and the writers
// into a single matching run, and serves the same pipeline over HTTP.
package tracesnap
