// Package gtfsrt turns GTFS-Realtime VehiclePositions feeds into traces.
//
// Each feed snapshot holds at most one position per vehicle, so traces are
// built by feeding successive snapshots into a TraceBuilder. Samples are
// keyed by vehicle (falling back to trip, then entity id), ordered by
// timestamp and de-duplicated when snapshots overlap.
//
// Positions become planar points with X = longitude and Y = latitude.
package gtfsrt
