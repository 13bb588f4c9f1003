package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddAndList(t *testing.T) {
	assert := require.New(t)
	scheduler := New()

	assert.NoError(scheduler.Add(`beta`, `@every 1h`, func() {}))
	assert.NoError(scheduler.Add(`alpha`, `*/5 * * * *`, func() {}))

	jobs := scheduler.Jobs()
	assert.Len(jobs, 2)
	assert.Equal(`alpha`, jobs[0].Name)
	assert.Equal(`beta`, jobs[1].Name)
	assert.Equal(`@every 1h`, jobs[1].Spec)

	assert.Error(scheduler.Add(`bad`, `not a spec`, func() {}))

	// replacing keeps a single entry
	assert.NoError(scheduler.Add(`alpha`, `@every 2h`, func() {}))
	assert.Len(scheduler.Jobs(), 2)

	scheduler.Remove(`alpha`)
	assert.Len(scheduler.Jobs(), 1)
	scheduler.Remove(`alpha`) // not an error

	_, err := scheduler.NextRun(`alpha`)
	assert.Error(err)
}

func TestRunsJobs(t *testing.T) {
	assert := require.New(t)
	scheduler := New()

	var count int64

	assert.NoError(scheduler.Add(`ticker`, `@every 10ms`, func() {
		atomic.AddInt64(&count, 1)
	}))

	scheduler.Start()
	defer scheduler.Stop()

	deadline := time.Now().Add(5 * time.Second)

	for atomic.LoadInt64(&count) < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	assert.GreaterOrEqual(atomic.LoadInt64(&count), int64(2))

	next, err := scheduler.NextRun(`ticker`)
	assert.NoError(err)
	assert.True(next.After(time.Now().Add(-time.Second)))
}
