package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/theoremus-urban-solutions/mrt-directions/network"
)

func station(id string, opened time.Time) network.Station {
	return network.Station{ID: id, Name: "test station", OpeningDate: opened}
}

func TestIsReady(t *testing.T) {
	opening := time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC)
	memberships := []network.Station{
		station("NS1", opening),
		station("EW1", time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name  string
		at    time.Time
		ready bool
	}{
		{"before any membership opens", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), false},
		{"on the opening date itself", time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC), true},
		{"midnight of the opening date", time.Date(2000, time.June, 1, 0, 1, 0, 0, time.UTC), true},
		{"after every membership opens", time.Date(2001, time.January, 1, 12, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ready, IsReady(memberships, tt.at))
		})
	}
}

func TestIsReady_OpeningDateInLocalZone(t *testing.T) {
	// Opening dates parse without a zone; query times are local civil
	// timestamps. East of UTC the station must still count as ready for
	// the whole of its opening date.
	sgt := time.FixedZone("SGT", 8*60*60)
	memberships := []network.Station{
		station("NS1", time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}

	assert.True(t, IsReady(memberships, time.Date(2000, time.June, 1, 10, 0, 0, 0, sgt)))
	assert.True(t, IsReady(memberships, time.Date(2000, time.June, 1, 0, 0, 0, 0, sgt)))
	assert.False(t, IsReady(memberships, time.Date(2000, time.May, 31, 23, 59, 0, 0, sgt)))
}

func TestIsReady_OneUnopenedLineBlocksTheStation(t *testing.T) {
	at := time.Date(2018, time.January, 1, 9, 0, 0, 0, time.UTC)
	memberships := []network.Station{
		station("EW1", time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC)),
		station("TE1", time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)),
	}
	assert.False(t, IsReady(memberships, at))
}

func TestIsClosedForNight(t *testing.T) {
	opened := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	allNight := []network.Station{station("CG1", opened)}
	multiNight := []network.Station{station("DT5", opened), station("CE1", opened)}
	mixed := []network.Station{station("CG2", opened), station("EW4", opened)}
	ordinary := []network.Station{station("NS1", opened)}

	at := func(hour int) time.Time {
		return time.Date(2021, time.November, 10, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		memberships []network.Station
		at          time.Time
		closed      bool
	}{
		{"night-closing line at 23:00", allNight, at(23), true},
		{"all memberships night-closing at 02:00", multiNight, at(2), true},
		{"night-closing line at 22:00 boundary", allNight, at(22), true},
		{"night-closing line at 05:59", allNight, time.Date(2021, time.November, 10, 5, 59, 0, 0, time.UTC), true},
		{"night-closing line at 06:00 boundary reopens", allNight, at(6), false},
		{"night-closing line during the day", allNight, at(12), false},
		{"mixed membership stays open at night", mixed, at(23), false},
		{"ordinary line at night", ordinary, at(23), false},
		{"no memberships", nil, at(23), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.closed, IsClosedForNight(tt.memberships, tt.at))
		})
	}
}
