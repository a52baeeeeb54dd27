// Package hhi computes the Herfindahl-Hirschman Index from aggregated group
// volumes and classifies the resulting market concentration.
package hhi

import (
	"fmt"
	"math"

	"airhhi/pkg/domain"
)

// DOJ/FTC concentration thresholds on the 0-10000 HHI scale.
const (
	// UnconcentratedBelow: markets with HHI under this value are
	// unconcentrated (competitive).
	UnconcentratedBelow = 1500.0
	// ModeratelyConcentratedUpTo: the moderate band is inclusive on both
	// ends, 1500 <= HHI <= 2500.
	ModeratelyConcentratedUpTo = 2500.0
	// SevereAbove flags near-monopoly markets within the highly
	// concentrated band.
	SevereAbove = 5000.0
)

// Classification labels.
const (
	Unconcentrated         = "Unconcentrated (Competitive)"
	ModeratelyConcentrated = "Moderately Concentrated"
	HighlyConcentrated     = "Highly Concentrated"
	SeverelyConcentrated   = "Highly Concentrated (Severe)"
)

// Shares converts group volumes into percentage market shares
// (100 * v_i / total). ok is false when the total volume is zero: shares,
// and therefore the index, are undefined for a market without activity.
func Shares(volumes map[domain.GroupName]float64) (map[domain.GroupName]float64, bool) {
	var total float64
	for _, v := range volumes {
		total += v
	}
	if total == 0 {
		return nil, false
	}

	shares := make(map[domain.GroupName]float64, len(volumes))
	for g, v := range volumes {
		shares[g] = 100 * v / total
	}

	return shares, true
}

// Index computes HHI = sum of squared percentage shares over the given group
// volumes. The result is nil when total volume is zero; an undefined index
// is never reported as 0 or 10000. All arithmetic stays in float64; rounding
// is left to the output layer.
func Index(volumes map[domain.GroupName]float64) *float64 {
	shares, ok := Shares(volumes)
	if !ok {
		return nil
	}

	var idx float64
	for _, s := range shares {
		idx += s * s
	}

	return &idx
}

// Classify maps an HHI value to its concentration label. 1500 and 2500 both
// belong to the moderate band.
func Classify(v float64) string {
	switch {
	case v < UnconcentratedBelow:
		return Unconcentrated
	case v <= ModeratelyConcentratedUpTo:
		return ModeratelyConcentrated
	case v > SevereAbove:
		return SeverelyConcentrated
	default:
		return HighlyConcentrated
	}
}

// Trend summarizes how a chronological HHI series developed: the average of
// the second half is compared against the first half, and a change under 5%
// counts as stable.
func Trend(values []float64) string {
	if len(values) < 2 {
		return "Insufficient data"
	}

	half := len(values) / 2
	firstAvg := mean(values[:half])
	secondAvg := mean(values[half:])

	change := secondAvg - firstAvg
	var pct float64
	if firstAvg > 0 {
		pct = change / firstAvg * 100
	}

	switch {
	case math.Abs(pct) < 5:
		return fmt.Sprintf("Stable (±%.1f%%)", math.Abs(pct))
	case change > 0:
		return fmt.Sprintf("Increasing Concentration (+%.1f%%)", pct)
	default:
		return fmt.Sprintf("Decreasing Concentration (%.1f%%)", pct)
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
