package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDelta(t *testing.T) {
	t.Run("growth from zero reports +100", func(t *testing.T) {
		require.Equal(t, 100, Delta(1, 0))
		require.Equal(t, 100, Delta(250, 0))
	})

	t.Run("flat zero reports 0", func(t *testing.T) {
		require.Equal(t, 0, Delta(0, 0))
	})

	t.Run("regular change is rounded to nearest integer", func(t *testing.T) {
		require.Equal(t, 25, Delta(50, 40))
		require.Equal(t, -20, Delta(40, 50))
		// 1/3 growth rounds from 33.33
		require.Equal(t, 33, Delta(4, 3))
	})
}

func TestConversionRate(t *testing.T) {
	t.Run("zero applications gives zero rate", func(t *testing.T) {
		require.Equal(t, float64(0), ConversionRate(5, 0))
	})

	t.Run("one decimal precision", func(t *testing.T) {
		require.Equal(t, 33.3, ConversionRate(1, 3))
		require.Equal(t, 50.0, ConversionRate(1, 2))
	})
}

func TestKPIs(t *testing.T) {
	current := PeriodCounts{TotalActive: 50, Applications: 30, Hires: 6}
	previous := PeriodCounts{TotalActive: 40, Applications: 0, Hires: 0}

	kpis := KPIs(current, previous)
	require.Len(t, kpis, 4)

	require.Equal(t, "Total Active Candidates", kpis[0].Label)
	require.Equal(t, 25, kpis[0].Change)

	require.Equal(t, "Applications", kpis[1].Label)
	require.Equal(t, 100, kpis[1].Change)

	require.Equal(t, "Hires", kpis[2].Label)
	require.Equal(t, 100, kpis[2].Change)

	require.Equal(t, "Conversion Rate", kpis[3].Label)
	require.Equal(t, 20.0, kpis[3].Value)
	require.Equal(t, float64(0), kpis[3].Previous)
	require.Equal(t, 100, kpis[3].Change)
}
