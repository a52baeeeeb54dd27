// Package growth computes period-over-period changes of a group's volume on
// a market.
package growth

// Change is the movement from one period to the next. Delta and Pct are nil
// when they cannot be computed; a nil Pct (undefined ratio) is distinct from
// a defined 0% change, which requires a non-zero prior volume.
type Change struct {
	// Delta is current minus previous volume. Nil only when there is no
	// prior period at all.
	Delta *float64
	// Pct is 100 * Delta / previous volume. Nil when there is no prior
	// period or the prior volume was zero.
	Pct *float64
}

// Step computes the change from prev to cur. Delta is always defined; Pct is
// nil when prev is zero.
func Step(prev, cur float64) Change {
	delta := cur - prev
	ch := Change{Delta: &delta}
	if prev != 0 {
		pct := 100 * delta / prev
		ch.Pct = &pct
	}

	return ch
}

// Series computes per-period changes over a chronological volume series. The
// first element has nil Delta and nil Pct: there is nothing before it to
// compare against.
func Series(volumes []float64) []Change {
	changes := make([]Change, len(volumes))
	for i := 1; i < len(volumes); i++ {
		changes[i] = Step(volumes[i-1], volumes[i])
	}

	return changes
}
