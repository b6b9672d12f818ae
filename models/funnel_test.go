package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultFunnelStages(t *testing.T) {
	stages := DefaultFunnelStages()
	require.Len(t, stages, 7)

	t.Run("stages narrow cumulatively", func(t *testing.T) {
		for i := 1; i < len(stages); i++ {
			for _, status := range stages[i].Statuses {
				require.True(t, stages[i-1].Matches(status),
					"status %q of stage %q missing from stage %q", status, stages[i].Name, stages[i-1].Name)
			}
			require.Less(t, len(stages[i].Statuses), len(stages[i-1].Statuses))
		}
	})

	t.Run("rejected and closed match no stage", func(t *testing.T) {
		for _, stage := range stages {
			require.False(t, stage.Matches(CandidateStatusRejected))
			require.False(t, stage.Matches(CandidateStatusClosed))
		}
	})

	t.Run("entry and exit stages", func(t *testing.T) {
		require.Equal(t, "Applied", stages[0].Name)
		require.Equal(t, "Hired", stages[len(stages)-1].Name)
		require.Equal(t, []CandidateStatus{CandidateStatusHired}, stages[len(stages)-1].Statuses)
	})
}

func TestCandidateStatus(t *testing.T) {
	t.Run("terminal statuses", func(t *testing.T) {
		require.True(t, CandidateStatusHired.IsTerminal())
		require.True(t, CandidateStatusRejected.IsTerminal())
		require.True(t, CandidateStatusClosed.IsTerminal())
		require.False(t, CandidateStatusApplied.IsTerminal())
		require.False(t, CandidateStatusFinalInterview.IsTerminal())
	})

	t.Run("unknown tag is passed through as is", func(t *testing.T) {
		require.False(t, CandidateStatus("bogus").IsKnown())
		require.Equal(t, "bogus", CandidateStatus("bogus").ToHuman())
	})
}

func TestUserRole(t *testing.T) {
	require.True(t, UserRoleHR.IsStaff())
	require.True(t, UserRoleManager.IsStaff())
	require.True(t, UserRoleAdmin.IsStaff())
	require.False(t, UserRoleCandidate.IsStaff())

	require.True(t, UserRoleAdmin.IsAdmin())
	require.False(t, UserRoleManager.IsAdmin())
}
