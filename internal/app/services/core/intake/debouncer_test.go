package intake

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerRunsOnlyLast(t *testing.T) {
	debouncer := NewDebouncer(20 * time.Millisecond)
	var calls int32
	var last int32

	for i := int32(1); i <= 5; i++ {
		value := i
		debouncer.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			atomic.StoreInt32(&last, value)
		})
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, int32(5), atomic.LoadInt32(&last))
}

func TestDebouncerStop(t *testing.T) {
	debouncer := NewDebouncer(time.Hour)
	var calls int32

	debouncer.Trigger(func() { atomic.AddInt32(&calls, 1) })
	pending := debouncer.Stop()

	assert.NotNil(t, pending)
	assert.Nil(t, debouncer.Stop(), "nothing pending after stop")
	pending()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
