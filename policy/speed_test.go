package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/theoremus-urban-solutions/mrt-directions/network"
)

// 2021-11-10 is a Wednesday, 2021-11-13 a Saturday.
func weekday(hour, minute int) time.Time {
	return time.Date(2021, time.November, 10, hour, minute, 0, 0, time.UTC)
}

func saturday(hour int) time.Time {
	return time.Date(2021, time.November, 13, hour, 0, 0, 0, time.UTC)
}

func TestWindowAt(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want Window
	}{
		{"weekday morning peak start", weekday(6, 0), WindowPeak},
		{"weekday morning peak end", weekday(9, 59), WindowPeak},
		{"weekday evening peak", weekday(18, 0), WindowPeak},
		{"weekday evening peak end", weekday(21, 30), WindowPeak},
		{"weekday midday", weekday(10, 0), WindowNormal},
		{"weekday late evening before night", weekday(21, 59), WindowPeak},
		{"weekday night start", weekday(22, 0), WindowNight},
		{"small hours", weekday(3, 0), WindowNight},
		{"weekend 06:00 is night, not peak", saturday(6), WindowNight},
		{"weekend evening is normal", saturday(19), WindowNormal},
		{"weekend midday", saturday(12), WindowNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowAt(tt.at))
		})
	}
}

func TestTravelTime(t *testing.T) {
	ns1 := network.Station{ID: "NS1", Name: "a"}
	ns2 := network.Station{ID: "NS2", Name: "b"}
	ne1 := network.Station{ID: "NE1", Name: "c"}
	ne2 := network.Station{ID: "NE2", Name: "d"}
	ew1 := network.Station{ID: "EW1", Name: "e"}
	ew2 := network.Station{ID: "EW2", Name: "f"}
	dt1 := network.Station{ID: "DT1", Name: "g"}
	dt2 := network.Station{ID: "DT2", Name: "h"}
	te1 := network.Station{ID: "TE1", Name: "i"}
	te2 := network.Station{ID: "TE2", Name: "j"}

	peak := weekday(8, 0)
	night := weekday(23, 0)
	normal := weekday(14, 0)

	tests := []struct {
		name     string
		src, dst network.Station
		at       time.Time
		want     int
	}{
		{"peak NS", ns1, ns2, peak, 12},
		{"peak NE", ne1, ne2, peak, 12},
		{"peak other same line", ew1, ew2, peak, 10},
		{"peak line change", ns2, ew1, peak, 15},
		{"night TE", te1, te2, night, 8},
		{"night other same line", ns1, ns2, night, 10},
		{"night line change", ns2, ew1, night, 10},
		{"normal DT", dt1, dt2, normal, 8},
		{"normal TE", te1, te2, normal, 8},
		{"normal other same line", ns1, ns2, normal, 10},
		{"normal line change", ew2, dt1, normal, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TravelTime(tt.src, tt.dst, tt.at))
		})
	}
}

func TestAdvisory(t *testing.T) {
	assert.Contains(t, Advisory(weekday(8, 0)), "peak time")
	assert.Contains(t, Advisory(weekday(23, 0)), "night hours")
	assert.Equal(t, "", Advisory(weekday(14, 0)))
}
