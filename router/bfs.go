package router

import (
	"errors"

	"github.com/theoremus-urban-solutions/mrt-directions/network"
)

// ErrNoRoute is returned when the destination cannot be reached from the
// source. The network is fully connected in practice, so for existing
// stations this signals an inconsistency rather than a user mistake.
var ErrNoRoute = errors.New("no route between stations")

// node pins a station name to one of the lines serving it.
type node struct {
	name string
	line string
}

// Find returns the stations to travel from fromName to toName, in order.
// The search starts from every line serving the source simultaneously and
// stops at the first line of the destination reached, so among equal-hop
// routes the result is deterministic under the model's enumeration order.
func Find(m *network.Model, fromName, toName string) ([]network.Station, error) {
	if fromName == toName {
		return nil, ErrNoRoute
	}
	starts := m.StationsByName(fromName)
	if len(starts) == 0 || !m.HasStation(toName) {
		return nil, ErrNoRoute
	}

	visited := map[node]bool{}
	parent := map[node]node{}
	queue := make([]node, 0, len(starts))
	for _, st := range starts {
		n := node{name: st.Name, line: st.Line()}
		visited[n] = true
		queue = append(queue, n)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.name == toName {
			return reconstruct(m, parent, cur)
		}
		for _, nb := range neighbors(m, cur) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = cur
			queue = append(queue, nb)
		}
	}
	return nil, ErrNoRoute
}

// neighbors enumerates same-line positional neighbours first, then the
// interchange hops onto the other lines serving the same name.
func neighbors(m *network.Model, cur node) []node {
	var out []node
	line := m.StationsOnLine(cur.line)
	if idx := m.PositionOnLine(cur.line, cur.name); idx >= 0 {
		if idx > 0 {
			out = append(out, node{name: line[idx-1].Name, line: cur.line})
		}
		if idx+1 < len(line) {
			out = append(out, node{name: line[idx+1].Name, line: cur.line})
		}
	}
	for _, st := range m.StationsByName(cur.name) {
		if st.Line() != cur.line {
			out = append(out, node{name: cur.name, line: st.Line()})
		}
	}
	return out
}

func reconstruct(m *network.Model, parent map[node]node, goal node) ([]network.Station, error) {
	var rev []node
	cur := goal
	for {
		rev = append(rev, cur)
		p, ok := parent[cur]
		if !ok {
			break
		}
		cur = p
	}
	route := make([]network.Station, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		st, ok := m.StationOn(rev[i].line, rev[i].name)
		if !ok {
			return nil, ErrNoRoute
		}
		route = append(route, st)
	}
	return route, nil
}
