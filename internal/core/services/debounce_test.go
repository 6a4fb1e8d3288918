package services_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maooe/finance_control_app/internal/core/services"
)

func TestDebounceScheduler_ReschedulingResetsTheTimer(t *testing.T) {
	d := services.NewDebounceScheduler()
	defer d.CancelAll()

	var fired atomic.Int32
	for i := 0; i < 5; i++ {
		d.Schedule("k", 40*time.Millisecond, func() { fired.Add(1) })
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load(), "a rescheduled key fires exactly once")
}

func TestDebounceScheduler_CancelStopsPendingWork(t *testing.T) {
	d := services.NewDebounceScheduler()

	var fired atomic.Int32
	d.Schedule("k", 30*time.Millisecond, func() { fired.Add(1) })
	assert.True(t, d.Cancel("k"))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.False(t, d.Cancel("k"), "cancelling twice reports nothing pending")
}

func TestDebounceScheduler_KeysAreIndependent(t *testing.T) {
	d := services.NewDebounceScheduler()
	defer d.CancelAll()

	var a, b atomic.Int32
	d.Schedule("a", 20*time.Millisecond, func() { a.Add(1) })
	d.Schedule("b", 20*time.Millisecond, func() { b.Add(1) })

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(1), a.Load())
	assert.Equal(t, int32(1), b.Load())
}
