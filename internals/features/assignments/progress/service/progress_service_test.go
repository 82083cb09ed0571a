package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDeduplicatesSessions(t *testing.T) {
	student := uuid.New()
	got := Aggregate(
		[]uuid.UUID{student},
		[]Submission{
			{StudentID: student, SessionNo: 1},
			{StudentID: student, SessionNo: 1},
			{StudentID: student, SessionNo: 3},
		},
		[]int{1, 2, 3},
	)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].SubmittedCount)
	assert.Equal(t, []int{1, 3}, got[0].SubmittedSessions)
	assert.Equal(t, []int{2}, got[0].MissingSessions)
	assert.False(t, got[0].Complete)
}

func TestAggregateZeroExpectedNeverComplete(t *testing.T) {
	student := uuid.New()
	got := Aggregate(
		[]uuid.UUID{student},
		[]Submission{
			{StudentID: student, SessionNo: 1},
			{StudentID: student, SessionNo: 2},
		},
		[]int{},
	)

	require.Len(t, got, 1)
	assert.False(t, got[0].Complete)
	assert.Equal(t, 0, got[0].SubmittedCount)
	assert.Empty(t, got[0].MissingSessions)
}

func TestAggregateCompleteWhenAllSessionsSubmitted(t *testing.T) {
	done := uuid.New()
	partial := uuid.New()
	idle := uuid.New()

	got := Aggregate(
		[]uuid.UUID{done, partial, idle},
		[]Submission{
			{StudentID: done, SessionNo: 1},
			{StudentID: done, SessionNo: 2},
			{StudentID: partial, SessionNo: 2},
		},
		[]int{1, 2},
	)

	require.Len(t, got, 3)

	assert.True(t, got[0].Complete)
	assert.Empty(t, got[0].MissingSessions)

	assert.False(t, got[1].Complete)
	assert.Equal(t, []int{1}, got[1].MissingSessions)

	assert.False(t, got[2].Complete)
	assert.Equal(t, []int{1, 2}, got[2].MissingSessions)
	assert.Equal(t, 0, got[2].SubmittedCount)
}

func TestAggregateIgnoresSessionsOutsideExpected(t *testing.T) {
	student := uuid.New()
	got := Aggregate(
		[]uuid.UUID{student},
		[]Submission{
			{StudentID: student, SessionNo: 99},
			{StudentID: student, SessionNo: 1},
		},
		[]int{1, 2},
	)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].SubmittedCount)
	assert.Equal(t, []int{1}, got[0].SubmittedSessions)
}

func TestExpectedSessions(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ExpectedSessions(3))
	assert.Empty(t, ExpectedSessions(0))
	assert.Empty(t, ExpectedSessions(-1))
}
