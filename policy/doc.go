// Package policy holds the pure time-of-day rules of the MRT network:
// whether a station is open at a given instant, and how long each hop
// between consecutive stations takes.
//
// The peak and night windows share the 06:00 boundary; classification
// checks peak first, so a weekday 06:00 departure is peak while a weekend
// 06:00 departure is night. Station night closure uses the narrower
// [22:00, 06:00) window.
package policy
