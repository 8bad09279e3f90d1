package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishuma/cutebot-op-v01/logger"
)

func TestTaskManager_StartAndStop(t *testing.T) {
	mgr := NewTaskManager(context.Background(), logger.GetLogger())

	var runs atomic.Int32
	require.NoError(t, mgr.Start("loop", func() bool {
		runs.Add(1)
		time.Sleep(time.Millisecond)
		return true
	}))

	assert.Equal(t, 1, mgr.TaskCount())

	require.Eventually(t, func() bool { return runs.Load() > 3 }, time.Second, time.Millisecond)

	mgr.Stop()
	mgr.Wait()
	assert.Equal(t, 0, mgr.TaskCount())
}

func TestTaskManager_TaskStopsItself(t *testing.T) {
	mgr := NewTaskManager(context.Background(), logger.GetLogger())

	var runs atomic.Int32
	require.NoError(t, mgr.Start("once", func() bool {
		runs.Add(1)
		return false
	}))

	mgr.Wait()
	assert.Equal(t, int32(1), runs.Load())

	mgr.Stop()
}

func TestTaskManager_StartInterval(t *testing.T) {
	mgr := NewTaskManager(context.Background(), logger.GetLogger())

	var ticks atomic.Int32
	_, err := mgr.StartInterval("tick", func() bool {
		ticks.Add(1)
		return true
	}, 10*time.Millisecond, false)
	require.NoError(t, err)

	// A duplicate interval task name is refused.
	_, err = mgr.StartInterval("tick", func() bool { return true }, 10*time.Millisecond, false)
	assert.Error(t, err)

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	require.NoError(t, mgr.StopInterval("tick"))
	assert.Error(t, mgr.StopInterval("tick"), "stopped interval is no longer registered")

	mgr.Stop()
	mgr.Wait()
}

func TestTaskManager_StartInterval_InvalidInterval(t *testing.T) {
	mgr := NewTaskManager(context.Background(), logger.GetLogger())

	_, err := mgr.StartInterval("bad", func() bool { return true }, 0, false)
	assert.Error(t, err)
}

func TestTaskManager_StartWake(t *testing.T) {
	mgr := NewTaskManager(context.Background(), logger.GetLogger())

	wake := make(chan struct{}, 1)
	var runs atomic.Int32

	require.NoError(t, mgr.StartWake("pump", wake, func() bool {
		runs.Add(1)
		return true
	}))

	wake <- struct{}{}
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, time.Millisecond)

	wake <- struct{}{}
	require.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, time.Millisecond)

	mgr.Stop()
	mgr.Wait()
}

func TestTaskManager_PanicRecovery(t *testing.T) {
	mgr := NewTaskManager(context.Background(), logger.GetLogger())

	var ticks atomic.Int32
	_, err := mgr.StartInterval("panicky", func() bool {
		ticks.Add(1)
		panic("boom")
	}, 5*time.Millisecond, false)
	require.NoError(t, err)

	// The panic is recovered rather than crashing the process; the task
	// terminates cleanly.
	require.Eventually(t, func() bool { return ticks.Load() >= 1 }, time.Second, time.Millisecond)
	mgr.Wait()
	assert.Equal(t, int32(1), ticks.Load())
	assert.Equal(t, 0, mgr.TaskCount())

	mgr.Stop()
}

func TestTaskManager_StartAfterStop(t *testing.T) {
	mgr := NewTaskManager(context.Background(), logger.GetLogger())
	mgr.Stop()

	err := mgr.Start("late", func() bool { return true })
	assert.Error(t, err)
}
