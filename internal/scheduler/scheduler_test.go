package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/tickerpulse/pkg/config"
	"github.com/wonny/tickerpulse/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{
		Env:       "test",
		LogLevel:  "error",
		LogFormat: "json",
	})
}

type stubJob struct {
	name     string
	schedule string
	runs     int
}

func (j *stubJob) Name() string     { return j.name }
func (j *stubJob) Schedule() string { return j.schedule }

func (j *stubJob) Run(_ context.Context) error {
	j.runs++
	return nil
}

func TestAddJob(t *testing.T) {
	s := New(testLogger())

	err := s.AddJob(&stubJob{name: "digest", schedule: "0 0 7 * * *"})
	require.NoError(t, err)

	history, err := s.GetJobHistory("digest")
	require.NoError(t, err)
	assert.Empty(t, history.Results)
}

func TestAddJobDuplicate(t *testing.T) {
	s := New(testLogger())

	require.NoError(t, s.AddJob(&stubJob{name: "digest", schedule: "0 0 7 * * *"}))
	err := s.AddJob(&stubJob{name: "digest", schedule: "0 0 8 * * *"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAddJobInvalidSchedule(t *testing.T) {
	s := New(testLogger())

	err := s.AddJob(&stubJob{name: "digest", schedule: "not a cron expression"})
	assert.Error(t, err)
}

func TestRunJobUnknown(t *testing.T) {
	s := New(testLogger())

	err := s.RunJob("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetJobHistoryUnknown(t *testing.T) {
	s := New(testLogger())

	_, err := s.GetJobHistory("missing")
	assert.Error(t, err)
}

func TestJobHistoryCap(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: "digest", Success: i%2 == 0})
	}

	assert.Len(t, h.Results, 100)
	assert.Len(t, h.GetLatestResults(10), 10)
	assert.InDelta(t, 0.5, h.GetSuccessRate(), 0.01)
}
