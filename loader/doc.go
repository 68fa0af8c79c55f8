// Package loader reads the flat text inputs of a matching run.
//
// Network files hold one edge per line, "id ax ay bx by"; trace files hold
// one point per line, "x y". Fields may be separated by commas, whitespace
// or both. A line that does not start with enough parseable fields is
// dropped and counted in Stats; it never fails the read. Extra trailing
// fields are ignored.
package loader
