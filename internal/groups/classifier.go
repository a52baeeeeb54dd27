// Package groups classifies airline IATA codes into competitive groups and
// decides which slot recipients count as genuine new entrants.
package groups

import (
	"strings"

	"airhhi/pkg/domain"
	"airhhi/pkg/serrors"
)

// Classifier maps airline codes to groups. It is pure after construction:
// classification reads static membership tables plus, for entrant checks,
// the per-call candidate list.
type Classifier struct {
	byCode map[string]domain.GroupName
	// union is the set of all predefined member codes; entrant candidates
	// are tested against it in O(1) per code.
	union     map[string]struct{}
	conflicts []domain.GroupConflict
}

// NewClassifier builds a classifier from the static membership tables. A
// code appearing in multiple tables keeps its first group (table order:
// Lufthansa, Air Berlin, Low Cost, Legacy, Regional); subsequent hits are
// recorded as conflicts so reviewers can audit the subsidiary overlap.
func NewClassifier() (*Classifier, error) {
	return newClassifier(memberships)
}

// newClassifier builds a classifier from the given tables, in order.
func newClassifier(tables []membership) (*Classifier, error) {
	c := &Classifier{
		byCode: map[string]domain.GroupName{},
		union:  map[string]struct{}{},
	}

	for _, m := range tables {
		if len(m.Airlines) == 0 {
			return nil, serrors.With(serrors.ErrConfig, "membership table for %s is empty", m.Group)
		}
		for _, a := range m.Airlines {
			code := canonCode(a.Code)
			if code == "" {
				continue
			}
			if kept, ok := c.byCode[code]; ok {
				if kept != m.Group {
					c.conflicts = append(c.conflicts, domain.GroupConflict{
						AirlineCode: code,
						Kept:        kept,
						Dropped:     m.Group,
					})
				}

				continue
			}
			c.byCode[code] = m.Group
			c.union[code] = struct{}{}
		}
	}

	return c, nil
}

// Classify returns the single group for an airline code, or Unclassified
// when no membership table contains it.
func (c *Classifier) Classify(code string) domain.GroupName {
	if g, ok := c.byCode[canonCode(code)]; ok {
		return g
	}

	return domain.GroupUnclassified
}

// IsIncumbent reports whether the code belongs to any predefined group.
func (c *Classifier) IsIncumbent(code string) bool {
	_, ok := c.union[canonCode(code)]

	return ok
}

// FilterEntrants returns the candidate codes that are genuine new entrants:
// present in the airport's candidate list and absent from every predefined
// membership table. A subsidiary of an incumbent group never counts as a new
// entrant merely because it recently started operating at an airport.
func (c *Classifier) FilterEntrants(candidates []string) []string {
	genuine := make([]string, 0, len(candidates))
	seen := map[string]struct{}{}
	for _, raw := range candidates {
		code := canonCode(raw)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		if c.IsIncumbent(code) {
			continue
		}
		genuine = append(genuine, code)
	}

	return genuine
}

// Conflicts returns the membership overlaps found at construction time.
func (c *Classifier) Conflicts() []domain.GroupConflict {
	return c.conflicts
}

// canonCode normalizes an airline code for matching.
func canonCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
