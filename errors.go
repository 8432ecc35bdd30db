package mrtdirections

// Request-level errors carry a rider-facing message and map onto a 400 at
// the transport layer. Anything else surfaces as a generic failure.

// StationNotFoundError reports a name or id with no entry in the model.
// Subject is the rejected input, e.g. "Station name bugis" or "Station id NS1".
type StationNotFoundError struct{ Subject string }

func (e *StationNotFoundError) Error() string { return e.Subject + " does not exist" }

// StationNotReadyError reports a station whose opening date postdates the
// query time.
type StationNotReadyError struct{ Subject string }

func (e *StationNotReadyError) Error() string { return e.Subject + " is not ready yet" }

// StationClosedError reports a station shut under the night-closure rule.
type StationClosedError struct{ Subject string }

func (e *StationClosedError) Error() string { return e.Subject + " is closed now" }

// InvalidQueryError reports a malformed query (bad datetime, identical
// endpoints).
type InvalidQueryError struct{ Msg string }

func (e *InvalidQueryError) Error() string { return e.Msg }

// RouteNotFoundError reports that two existing stations could not be
// connected. The network is expected to be fully connected, so this is an
// internal inconsistency, not a user-input problem.
type RouteNotFoundError struct{ From, To string }

func (e *RouteNotFoundError) Error() string {
	return "no route found from " + e.From + " to " + e.To
}

// isRequestError reports whether err should be blamed on the caller.
func isRequestError(err error) bool {
	switch err.(type) {
	case *StationNotFoundError, *StationNotReadyError, *StationClosedError, *InvalidQueryError:
		return true
	}
	return false
}
