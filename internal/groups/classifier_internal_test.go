package groups

import (
	"testing"

	"github.com/stretchr/testify/require"

	"airhhi/pkg/domain"
	"airhhi/pkg/serrors"
)

func TestConflictingCodeKeepsFirstGroup(t *testing.T) {
	c, err := newClassifier([]membership{
		{domain.GroupLufthansa, []Airline{{"Eurowings GmbH", "EW"}}},
		{domain.GroupLowCost, []Airline{{"Eurowings (budget arm)", "EW"}, {"Ryanair Ltd.", "FR"}}},
	})
	require.NoError(t, err)

	require.Equal(t, domain.GroupLufthansa, c.Classify("EW"))
	require.Equal(t, domain.GroupLowCost, c.Classify("FR"))

	require.Equal(t, []domain.GroupConflict{
		{AirlineCode: "EW", Kept: domain.GroupLufthansa, Dropped: domain.GroupLowCost},
	}, c.Conflicts())
}

func TestDuplicateWithinGroupIsNotAConflict(t *testing.T) {
	c, err := newClassifier([]membership{
		{domain.GroupRegional, []Airline{{"Hahn Air Lines GmbH", "HR"}, {"Hahn Air Lines GmbH", "HR"}}},
	})
	require.NoError(t, err)
	require.Empty(t, c.Conflicts())
}

func TestEmptyMembershipTableRejected(t *testing.T) {
	_, err := newClassifier([]membership{
		{domain.GroupLufthansa, nil},
	})
	require.ErrorIs(t, err, serrors.ErrConfig)
}

func TestStaticTablesHaveNoConflicts(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)
	require.Empty(t, c.Conflicts(), "a conflict here means a code was added to two tables")
}
