package timesheet

import (
	"math"

	"github.com/shopspring/decimal"
)

// Overlap returns the length of the intersection of [aStart,aEnd] and
// [bStart,bEnd], clamped to zero. All times are decimal hours on a 0..24
// scale.
func Overlap(aStart, aEnd, bStart, bEnd float64) float64 {
	lo := math.Max(aStart, bStart)
	hi := math.Min(aEnd, bEnd)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// NightOverlap returns how many of the shift's hours fall inside the
// night window. A shift or window whose end lies before its start wraps
// midnight and is split into a [start,24) and a [0,end) segment; the
// overlaps of all segment pairs are summed.
func NightOverlap(shiftStart, shiftEnd, nightStart, nightEnd float64) float64 {
	shiftSegs := splitAtMidnight(shiftStart, shiftEnd)
	nightSegs := splitAtMidnight(nightStart, nightEnd)

	total := 0.0
	for _, s := range shiftSegs {
		for _, n := range nightSegs {
			total += Overlap(s[0], s[1], n[0], n[1])
		}
	}
	return total
}

func splitAtMidnight(start, end float64) [][2]float64 {
	if end < start {
		return [][2]float64{{start, 24}, {0, end}}
	}
	return [][2]float64{{start, end}}
}

// spanHours is the midnight-aware distance from start to end.
func spanHours(start, end float64) float64 {
	if end >= start {
		return end - start
	}
	return (24 - start) + end
}

// roundMoney rounds to 2 decimals, half away from zero. Every monetary
// result in the engine goes through this so report columns add up.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// roundHours rounds an hour count to 2 decimals for display.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
