package observable

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_SubscribeReceivesCurrentThenUpdates(t *testing.T) {
	v := New("loading")

	ch, cancel := v.Subscribe()
	defer cancel()

	assert.Equal(t, "loading", <-ch)

	v.Set("ready")
	assert.Equal(t, "ready", <-ch)
	assert.Equal(t, "ready", v.Get())
}

func TestValue_SlowSubscriberGetsLatest(t *testing.T) {
	v := New(0)

	ch, cancel := v.Subscribe()
	defer cancel()

	for i := 1; i <= 100; i++ {
		v.Set(i)
	}

	assert.Equal(t, 100, <-ch)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected buffered value %d", extra)
	default:
	}
}

func TestValue_CancelClosesAndUnregisters(t *testing.T) {
	v := New(1)

	ch, cancel := v.Subscribe()
	require.Equal(t, 1, v.Subscribers())

	cancel()
	cancel()

	assert.Equal(t, 0, v.Subscribers())

	<-ch // primed value
	_, open := <-ch
	assert.False(t, open)

	v.Set(2)
}

func TestValue_ConcurrentSetAndSubscribe(t *testing.T) {
	v := New(0)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			v.Set(i)
		}()
		go func() {
			defer wg.Done()
			ch, cancel := v.Subscribe()
			<-ch
			cancel()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("deadlock between Set and Subscribe")
	}
}
