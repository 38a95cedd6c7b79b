package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkillSync/aiq/internal/aiq"
)

func TestNewAssessmentCopiesAnswers(t *testing.T) {
	answers := []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	result := aiq.Result{
		Capabilities: aiq.Capabilities{U: 100, P: 100, C: 100, R: 100, E: 100, S: 100, Co: 100, F: 100},
		Type:         aiq.SpeedExecutor,
		Confidence:   1,
		CompletedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	a := NewAssessment("user-1", answers, result)
	answers[0] = 1

	assert.Equal(t, 4, a.Answers[0], "answers must be copied")
	assert.Equal(t, "user-1", a.UserID)
	assert.Equal(t, result.Capabilities, a.Capabilities)
	assert.Equal(t, result.Type, a.Type)
	assert.Equal(t, result.Confidence, a.Confidence)
	assert.Equal(t, result.CompletedAt, a.CompletedAt)
}

func TestCompleteStats(t *testing.T) {
	stats := completeStats(map[aiq.Type]TypeCount{
		aiq.SpeedExecutor:        {Type: aiq.SpeedExecutor, Count: 3, AvgConfidence: 0.9},
		aiq.BalancedPractitioner: {Type: aiq.BalancedPractitioner, Count: 1, AvgConfidence: 0.5},
	})

	assert.Equal(t, 4, stats.Total)
	assert.InDelta(t, 0.8, stats.AvgConfidence, 1e-9)
	require.Len(t, stats.Types, 8)
	assert.Equal(t, aiq.SpeedExecutor, stats.Types[0].Type)
	assert.Equal(t, 3, stats.Types[0].Count)
	assert.Equal(t, aiq.PrecisionAnalyst, stats.Types[1].Type)
	assert.Equal(t, 0, stats.Types[1].Count)
	assert.Equal(t, aiq.BalancedPractitioner, stats.Types[7].Type)
}

func TestCompleteStatsEmpty(t *testing.T) {
	stats := completeStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Zero(t, stats.AvgConfidence)
	assert.Len(t, stats.Types, 8)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "")
	assert.Error(t, err)
}
