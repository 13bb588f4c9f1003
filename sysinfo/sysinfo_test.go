package sysinfo

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHost(t *testing.T) {
	assert := require.New(t)

	info, err := Host()
	assert.NoError(err)
	assert.NotEmpty(info.Hostname)
	assert.NotEmpty(info.OS)
	assert.False(info.BootTime.IsZero())
	assert.Greater(info.Uptime, time.Duration(0))
}

func TestCPU(t *testing.T) {
	assert := require.New(t)

	info, err := CPU(10 * time.Millisecond)
	assert.NoError(err)
	assert.Greater(info.Cores, 0)
	assert.GreaterOrEqual(info.UsedPercent, float64(0))
	assert.LessOrEqual(info.UsedPercent, float64(100))
}

func TestMemory(t *testing.T) {
	assert := require.New(t)

	info, err := Memory()
	assert.NoError(err)
	assert.NotZero(info.Total)
	assert.LessOrEqual(info.Used, info.Total)
}

func TestDisk(t *testing.T) {
	assert := require.New(t)

	info, err := Disk(os.TempDir())
	assert.NoError(err)
	assert.NotZero(info.Total)
}

func TestSelf(t *testing.T) {
	assert := require.New(t)

	self, err := Self()
	assert.NoError(err)
	assert.Equal(int32(os.Getpid()), self.PID)
	assert.NotEmpty(self.Name)
	assert.NotZero(self.RSS)
	assert.False(self.Started.IsZero())
}

func TestFindProcesses(t *testing.T) {
	assert := require.New(t)

	self, err := Self()
	assert.NoError(err)

	matches, err := FindProcesses(self.Name)
	assert.NoError(err)
	assert.NotEmpty(matches)

	found := false

	for _, match := range matches {
		if match.PID == self.PID {
			found = true
		}
	}

	assert.True(found)
}

func TestProcessNotFound(t *testing.T) {
	assert := require.New(t)

	_, err := Process(-42)
	assert.Error(err)
}
