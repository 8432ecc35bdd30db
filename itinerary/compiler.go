// Package itinerary compiles a station sequence and a departure time into
// the rider-facing travel plan: a summary block and step-by-step
// instructions. Compilation is a pure transformation with no side effects.
package itinerary

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/theoremus-urban-solutions/mrt-directions/network"
	"github.com/theoremus-urban-solutions/mrt-directions/policy"
)

// ArrivalTimeLayout is the rider-facing arrival time format.
const ArrivalTimeLayout = "02/Jan/2006 03:04 PM"

// Plan is the compiled travel plan for one route at one departure time.
type Plan struct {
	Summary []string `json:"summary"`
	Steps   []string `json:"step"`
}

// display capitalizes each whitespace-separated word of a station name.
// Word-internal punctuation is left alone, so "one-north" renders as
// "One-north", not "One-North".
func display(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Compile builds the travel plan for a non-empty route departing at t.
func Compile(route []network.Station, departure time.Time) Plan {
	first := route[0]
	last := route[len(route)-1]
	firstName := display(first.Name)
	lastName := display(last.Name)
	travelTime := TotalTravelTime(route, departure)
	arrival := departure.Add(time.Duration(travelTime) * time.Minute).Format(ArrivalTimeLayout)

	summary := []string{
		fmt.Sprintf("Travel plan from %s(%s) to %s(%s)", firstName, first.ID, lastName, last.ID),
	}
	if advisory := policy.Advisory(departure); advisory != "" {
		summary = append(summary, advisory)
	}
	summary = append(summary,
		fmt.Sprintf("Total stations to travel: %d", StationsToTravel(route)),
		fmt.Sprintf("Total travel time: %d mins", travelTime),
		fmt.Sprintf("Expected arrival time at %s(%s) %s", lastName, last.ID, arrival),
	)

	steps := []string{
		fmt.Sprintf("Board %s line at %s(%s)", first.LineDisplayName(), firstName, first.ID),
	}
	for i := 1; i < len(route); i++ {
		prev := route[i-1]
		curr := route[i]
		if prev.Line() == curr.Line() {
			steps = append(steps, fmt.Sprintf("Take %s line from %s(%s) to %s(%s)",
				prev.LineDisplayName(), display(prev.Name), prev.ID, display(curr.Name), curr.ID))
		} else {
			steps = append(steps, fmt.Sprintf("Change from %s line to %s line at %s",
				prev.LineDisplayName(), curr.LineDisplayName(), display(prev.Name)))
		}
	}
	steps = append(steps, fmt.Sprintf("Alight %s line at %s(%s)", last.LineDisplayName(), lastName, last.ID))

	return Plan{Summary: summary, Steps: steps}
}

// TotalTravelTime sums the per-hop travel times over consecutive station
// pairs, all classified by the single departure instant.
func TotalTravelTime(route []network.Station, departure time.Time) int {
	total := 0
	for i := 1; i < len(route); i++ {
		total += policy.TravelTime(route[i-1], route[i], departure)
	}
	return total
}

// StationsToTravel counts the distinct physical stations on the route,
// excluding the origin. Interchange hops revisit a name and do not count.
func StationsToTravel(route []network.Station) int {
	names := map[string]struct{}{}
	for _, st := range route {
		names[st.Name] = struct{}{}
	}
	return len(names) - 1
}
