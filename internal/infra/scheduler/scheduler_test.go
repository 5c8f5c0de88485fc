//go:build unit

package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobs struct {
	completed int
	resent    int
	purged    int
	err       error
}

func (f *fakeJobs) CompletePastBookings(context.Context) (int64, error) {
	f.completed++
	return 3, f.err
}

func (f *fakeJobs) ResendMissingNotifications(context.Context) (int, error) {
	f.resent++
	return 1, f.err
}

func (f *fakeJobs) PurgeExpiredIdempotencyKeys(context.Context) (int64, error) {
	f.purged++
	return 2, f.err
}

func jobsConfig() config.JobsConfig {
	return config.JobsConfig{
		Enabled:            true,
		ResendSpec:         "@every 5m",
		CompletionSpec:     "0 30 0 * * *",
		CompletionTimezone: "Asia/Kolkata",
		PurgeSpec:          "0 0 * * * *",
	}
}

func TestNew_RegistersJobs(t *testing.T) {
	s, err := New(jobsConfig(), &fakeJobs{})
	require.NoError(t, err)

	s.Start()
	defer func() { require.NoError(t, s.Stop(context.Background())) }()

	next := s.Next(JobCompletePastBooking)
	require.False(t, next.IsZero())
	ist, _ := time.LoadLocation("Asia/Kolkata")
	assert.Equal(t, 0, next.In(ist).Hour())
	assert.Equal(t, 30, next.In(ist).Minute())
	assert.False(t, s.Next(JobResendNotifications).IsZero())
	assert.Zero(t, s.Next(JobPurgeIdempotency).Minute())
	assert.True(t, s.Next("unknown").IsZero())
}

func TestNew_RejectsBadConfig(t *testing.T) {
	cfg := jobsConfig()
	cfg.ResendSpec = "every five minutes"
	_, err := New(cfg, &fakeJobs{})
	assert.Error(t, err)

	cfg = jobsConfig()
	cfg.CompletionTimezone = "Mars/Olympus"
	_, err = New(cfg, &fakeJobs{})
	assert.Error(t, err)

	cfg = jobsConfig()
	cfg.PurgeSpec = ""
	_, err = New(cfg, &fakeJobs{})
	assert.Error(t, err)
}

func TestJobs_CallMaintenance(t *testing.T) {
	jobs := &fakeJobs{}
	s, err := New(jobsConfig(), jobs)
	require.NoError(t, err)

	s.resendNotifications()
	s.completePastBookings()
	s.purgeIdempotencyKeys()
	assert.Equal(t, 1, jobs.resent)
	assert.Equal(t, 1, jobs.completed)
	assert.Equal(t, 1, jobs.purged)

	jobs.err = errors.New("storage down")
	assert.NotPanics(t, s.resendNotifications)
	assert.NotPanics(t, s.completePastBookings)
	assert.NotPanics(t, s.purgeIdempotencyKeys)
}
