package policy

import (
	"time"

	"github.com/theoremus-urban-solutions/mrt-directions/network"
)

// nightClosingLines are the lines whose stations shut overnight. A station
// is only closed when every one of its line-memberships is in this set.
var nightClosingLines = map[string]struct{}{
	LineChangiGreen:     {},
	LineDownTown:        {},
	LineCircleExtension: {},
}

// IsReady reports whether a station is open for travel at t: every
// line-membership of the station must have an opening date on or before
// t's date. A single not-yet-opened membership blocks the whole station.
func IsReady(memberships []network.Station, t time.Time) bool {
	for _, st := range memberships {
		if opensAfter(st.OpeningDate, t) {
			return false
		}
	}
	return true
}

// opensAfter compares calendar dates only. Opening dates carry no zone
// while query times are local civil timestamps, so the two must never be
// compared as instants.
func opensAfter(opening, t time.Time) bool {
	oy, om, od := opening.Date()
	ty, tm, td := t.Date()
	if oy != ty {
		return oy > ty
	}
	if om != tm {
		return om > tm
	}
	return od > td
}

// IsClosedForNight reports whether a station is shut at t under the
// night-closure rule: the clock hour is in [22:00, 06:00) and all of the
// station's lines are night-closing. One membership on an ordinary line
// keeps the station open all night.
func IsClosedForNight(memberships []network.Station, t time.Time) bool {
	if len(memberships) == 0 {
		return false
	}
	if t.Hour() < 22 && t.Hour() >= 6 {
		return false
	}
	for _, st := range memberships {
		if _, ok := nightClosingLines[st.Line()]; !ok {
			return false
		}
	}
	return true
}
