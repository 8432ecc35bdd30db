package policy

import (
	"time"

	"github.com/theoremus-urban-solutions/mrt-directions/network"
)

// Line codes with special fare or closure treatment.
const (
	LineNorthSouth      = "NS"
	LineEastWest        = "EW"
	LineChangiGreen     = "CG"
	LineNorthEast       = "NE"
	LineCircle          = "CC"
	LineDownTown        = "DT"
	LineThomson         = "TE"
	LineCircleExtension = "CE"
)

// Window classifies a departure instant for travel-time purposes.
type Window int

const (
	WindowNormal Window = iota
	WindowPeak
	WindowNight
)

// WindowAt classifies t. Peak is checked before night, which resolves the
// overlapping 06:00 boundary: weekday 06:00 is peak, weekend 06:00 is night.
func WindowAt(t time.Time) Window {
	if isPeakHour(t) {
		return WindowPeak
	}
	if isNightHour(t) {
		return WindowNight
	}
	return WindowNormal
}

// Peak runs Monday to Friday, 06:00-09:59 and 18:00-21:59.
func isPeakHour(t time.Time) bool {
	wd := t.Weekday()
	if wd < time.Monday || wd > time.Friday {
		return false
	}
	h := t.Hour()
	return (h >= 6 && h <= 9) || (h >= 18 && h <= 21)
}

// Night runs from 22:00 through the 06:00 hour inclusive.
func isNightHour(t time.Time) bool {
	return t.Hour() >= 22 || t.Hour() <= 6
}

// TravelTime returns the minutes taken to travel between two consecutive
// stations of a route when departing at t. Interchange hops (same name,
// different line) pass through here like any other pair. The departure
// instant classifies the whole journey; elapsed time is not re-evaluated
// mid-route.
func TravelTime(src, dst network.Station, t time.Time) int {
	sl, dl := src.Line(), dst.Line()
	switch WindowAt(t) {
	case WindowPeak:
		if sl == dl {
			if sl == LineNorthSouth || sl == LineNorthEast {
				return 12
			}
			return 10
		}
		return 15
	case WindowNight:
		if sl == dl {
			if sl == LineThomson {
				return 8
			}
			return 10
		}
		return 10
	default:
		if sl == dl {
			if sl == LineDownTown || sl == LineThomson {
				return 8
			}
			return 10
		}
		return 10
	}
}

// Advisory returns the rider advisory for the departure window, or "" when
// neither peak nor night applies.
func Advisory(t time.Time) string {
	switch WindowAt(t) {
	case WindowPeak:
		return "You're travelling during peak time expect crowded trains and some delay"
	case WindowNight:
		return "You're travelling during night hours be alert and report to authorities in case of any trouble"
	}
	return ""
}
