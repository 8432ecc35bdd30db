package network

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrEmptyStationMap is returned when the station map holds no records; the
// service cannot start without a network.
var ErrEmptyStationMap = errors.New("station map contains no stations")

// Record is one raw row of the station map, before date parsing.
type Record struct {
	ID          string
	Name        string
	OpeningDate string
}

// Model stores the station/line network in memory for fast lookups.
//
// stationsByName and stationsByLine preserve source ordering: the order of
// stations within a line is assumed to reflect the physical line sequence,
// and route finding depends on it.
type Model struct {
	stationsByName map[string][]Station          // name -> one record per line served
	stationsByLine map[string][]Station          // line code -> stations in line order
	interchanges   map[string]map[string]struct{} // line code -> directly connected lines
	idToName       map[string]string             // station id -> name
}

// NewModel builds the network model from the ordered station records.
// Construction is all-or-nothing: any unparseable record fails the build and
// no partial model is produced.
func NewModel(records []Record) (*Model, error) {
	if len(records) == 0 {
		return nil, ErrEmptyStationMap
	}
	m := &Model{
		stationsByName: map[string][]Station{},
		stationsByLine: map[string][]Station{},
		interchanges:   map[string]map[string]struct{}{},
		idToName:       map[string]string{},
	}
	for _, rec := range records {
		opened, err := time.Parse(OpeningDateLayout, strings.TrimSpace(rec.OpeningDate))
		if err != nil {
			return nil, fmt.Errorf("station %s: bad opening date %q: %w", rec.ID, rec.OpeningDate, err)
		}
		st := Station{
			ID:          strings.TrimSpace(rec.ID),
			Name:        strings.ToLower(strings.TrimSpace(rec.Name)),
			OpeningDate: opened,
		}
		if len(st.ID) < 3 {
			return nil, fmt.Errorf("station %q: id must be a line code plus sequence number", rec.ID)
		}
		// Membership is idempotent per station identity: a repeated
		// name+line row does not add a second membership.
		if m.hasMembership(st.Name, st.Line()) {
			continue
		}
		m.stationsByLine[st.Line()] = append(m.stationsByLine[st.Line()], st)
		m.stationsByName[st.Name] = append(m.stationsByName[st.Name], st)
		m.idToName[st.ID] = st.Name
	}
	m.buildInterchanges()
	return m, nil
}

func (m *Model) hasMembership(name, line string) bool {
	for _, st := range m.stationsByName[name] {
		if st.Line() == line {
			return true
		}
	}
	return false
}

// buildInterchanges records, for every pair of lines sharing at least one
// station name, a symmetric irreflexive connection. Reachability across
// three or more lines is the route finder's job, not precomputed here.
func (m *Model) buildInterchanges() {
	for _, members := range m.stationsByName {
		if len(members) < 2 {
			continue
		}
		for _, a := range members {
			for _, b := range members {
				if a.Line() == b.Line() {
					continue
				}
				if m.interchanges[a.Line()] == nil {
					m.interchanges[a.Line()] = map[string]struct{}{}
				}
				m.interchanges[a.Line()][b.Line()] = struct{}{}
			}
		}
	}
}

// StationsByName returns every line-membership record for a station name,
// in source order. The returned slice is shared and must not be modified.
func (m *Model) StationsByName(name string) []Station {
	return m.stationsByName[name]
}

// StationsOnLine returns the stations of a line in physical line order.
// The returned slice is shared and must not be modified.
func (m *Model) StationsOnLine(line string) []Station {
	return m.stationsByLine[line]
}

// StationOn returns the membership record of a named station on one line.
func (m *Model) StationOn(line, name string) (Station, bool) {
	for _, st := range m.stationsByName[name] {
		if st.Line() == line {
			return st, true
		}
	}
	return Station{}, false
}

// PositionOnLine returns the index of a named station along a line, or -1.
func (m *Model) PositionOnLine(line, name string) int {
	for i, st := range m.stationsByLine[line] {
		if st.Name == name {
			return i
		}
	}
	return -1
}

// HasStation reports whether any line serves the given station name.
func (m *Model) HasStation(name string) bool {
	return len(m.stationsByName[name]) > 0
}

// NameForID resolves a station id to its name.
func (m *Model) NameForID(id string) (string, bool) {
	name, ok := m.idToName[id]
	return name, ok
}

// InterchangeLines returns the lines directly connected to the given line
// through a shared station, sorted for determinism.
func (m *Model) InterchangeLines(line string) []string {
	set := m.interchanges[line]
	lines := make([]string, 0, len(set))
	for l := range set {
		lines = append(lines, l)
	}
	sort.Strings(lines)
	return lines
}

// Lines returns every line code in the model, sorted.
func (m *Model) Lines() []string {
	lines := make([]string, 0, len(m.stationsByLine))
	for l := range m.stationsByLine {
		lines = append(lines, l)
	}
	sort.Strings(lines)
	return lines
}

// NumStations returns the number of station records (line memberships).
func (m *Model) NumStations() int {
	return len(m.idToName)
}
