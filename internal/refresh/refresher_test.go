package refresh

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRefresher_Constructs(t *testing.T) {
	r := NewRefresher(Job{Name: "noop", Interval: time.Second, Run: func(ctx context.Context) error { return nil }})
	require.NotNil(t, r)
	require.False(t, r.active())
}

func TestRefresher_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	r := NewRefresher()
	require.NoError(t, r.Shutdown())
	require.False(t, r.active())
}

func TestRefresher_RunsJobs(t *testing.T) {
	ran := make(chan struct{}, 1)
	r := NewRefresher(Job{
		Name:     "routes",
		Interval: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, r.Start(ctx))
	defer func() { _ = r.Shutdown() }()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("expected refresh job to run")
	}
}

func TestRefresher_ContextCancelShutsDown(t *testing.T) {
	r := NewRefresher(Job{Name: "noop", Interval: time.Second, Run: func(ctx context.Context) error { return nil }})
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, r.Start(ctx))
	require.True(t, r.active())

	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !r.active() {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.False(t, r.active(), "expected scheduler to be shutdown after ctx cancel")
}

func TestRefresher_Shutdown_Idempotent(t *testing.T) {
	r := NewRefresher(Job{Name: "noop", Interval: time.Second, Run: func(ctx context.Context) error { return nil }})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, r.Start(ctx))
	require.NoError(t, r.Shutdown())
	require.False(t, r.active())
	require.NoError(t, r.Shutdown())
}

func TestRefresher_ConcurrentShutdownSafe(t *testing.T) {
	r := NewRefresher(Job{Name: "noop", Interval: time.Second, Run: func(ctx context.Context) error { return nil }})
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, r.Start(ctx))

	// The ctx-cancel goroutine and the caller's deferred Shutdown can fire
	// at once on process exit; none of them may panic or double-shutdown.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, r.Shutdown())
		}()
	}
	cancel()
	wg.Wait()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !r.active() {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.False(t, r.active())
}
