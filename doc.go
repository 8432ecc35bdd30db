// Package mrtdirections serves travel directions for the Singapore MRT.
//
// The network model is built once from the station map at startup and shared
// read-only by every request. A query runs validation (existence, readiness,
// night closure), route finding and itinerary compilation synchronously over
// the in-memory model; no request touches shared mutable state.
package mrtdirections
