package mrtdirections

import "time"

// QueryTimeLayout is the departure timestamp format accepted on the query
// boundary, dd-MM-yyyy HH:mm.
const QueryTimeLayout = "02-01-2006 15:04"

// ParseQueryTime parses a request timestamp as a local civil time.
func ParseQueryTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(QueryTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, &InvalidQueryError{Msg: "Datetime must be in format dd-MM-yyyy HH:mm"}
	}
	return t, nil
}
