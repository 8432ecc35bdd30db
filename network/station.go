package network

import "time"

// OpeningDateLayout is the opening-date format used in the station map,
// e.g. "7 November 1987". The day may or may not be zero-padded.
const OpeningDateLayout = "2 January 2006"

// Station is a single line-membership record of a physical station.
type Station struct {
	ID          string // line code + sequence number, e.g. NS1
	Name        string // lowercased
	OpeningDate time.Time
}

// Line returns the two-letter line code derived from the station id.
func (s Station) Line() string {
	if len(s.ID) < 2 {
		return ""
	}
	return s.ID[:2]
}

// LineDisplayName returns the rider-facing name of the station's line.
func (s Station) LineDisplayName() string {
	return LineDisplayName(s.Line())
}

// lineDisplayNames maps line codes to rider-facing line names.
var lineDisplayNames = map[string]string{
	"NS": "North South",
	"EW": "East West",
	"CG": "Changi Green",
	"NE": "North East",
	"CC": "Circle",
	"DT": "Down Town",
	"TE": "Thomson",
	"CE": "Circle Extension",
}

// LineDisplayName returns the rider-facing name for a line code. Unknown
// codes map to the empty string rather than an error.
func LineDisplayName(line string) string {
	return lineDisplayNames[line]
}
