package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressLadder(t *testing.T) {
	steps := []RecruitingProgress{
		ProgressApplied,
		ProgressDocumentReading,
		ProgressInterview,
		ProgressTechAssessment,
		ProgressOffer,
		ProgressHired,
	}
	for i := 0; i < len(steps)-1; i++ {
		next, ok := steps[i].Next()
		require.True(t, ok, "step %s", steps[i])
		require.Equal(t, steps[i+1], next)
	}
}

func TestTerminalStatesReturnThemselves(t *testing.T) {
	for _, p := range []RecruitingProgress{ProgressHired, ProgressRejected} {
		next, ok := p.Next()
		require.False(t, ok)
		require.Equal(t, p, next)
		require.True(t, p.IsTerminal())
	}
}

func TestRejectedIsNotOnTheLadder(t *testing.T) {
	// No state advances into REJECTED; it is only ever set explicitly.
	for _, p := range []RecruitingProgress{
		ProgressApplied, ProgressDocumentReading, ProgressInterview,
		ProgressTechAssessment, ProgressOffer,
	} {
		next, _ := p.Next()
		require.NotEqual(t, ProgressRejected, next)
	}
}
