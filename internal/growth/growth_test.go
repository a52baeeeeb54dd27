package growth_test

import (
	"testing"

	"airhhi/internal/growth"

	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	ch := growth.Step(50, 180)
	require.NotNil(t, ch.Delta)
	require.Equal(t, 130.0, *ch.Delta)
	require.NotNil(t, ch.Pct)
	require.Equal(t, 260.0, *ch.Pct)
}

func TestStepZeroPriorUndefinedPct(t *testing.T) {
	ch := growth.Step(0, 75)
	require.NotNil(t, ch.Delta, "delta is still computed when the prior volume is zero")
	require.Equal(t, 75.0, *ch.Delta)
	require.Nil(t, ch.Pct, "percent change over a zero prior is undefined, not 0")
}

func TestStepLegitimateZeroChange(t *testing.T) {
	ch := growth.Step(40, 40)
	require.NotNil(t, ch.Pct, "0% over a non-zero prior is a defined value")
	require.Equal(t, 0.0, *ch.Pct)
	require.Equal(t, 0.0, *ch.Delta)
}

func TestStepNegative(t *testing.T) {
	ch := growth.Step(200, 150)
	require.Equal(t, -50.0, *ch.Delta)
	require.Equal(t, -25.0, *ch.Pct)
}

func TestSeries(t *testing.T) {
	changes := growth.Series([]float64{0, 50, 180, 180})
	require.Len(t, changes, 4)

	require.Nil(t, changes[0].Delta, "first period has no prior")
	require.Nil(t, changes[0].Pct)

	require.Equal(t, 50.0, *changes[1].Delta)
	require.Nil(t, changes[1].Pct, "prior was zero")

	require.Equal(t, 130.0, *changes[2].Delta)
	require.Equal(t, 260.0, *changes[2].Pct)

	require.Equal(t, 0.0, *changes[3].Delta)
	require.Equal(t, 0.0, *changes[3].Pct)
}

func TestSeriesEmpty(t *testing.T) {
	require.Empty(t, growth.Series(nil))
}
