package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var _ RateLimiter = (*HostLimiter)(nil)

func TestHostLimiter_FirstRequestNotDelayed(t *testing.T) {
	lim := NewHostLimiter(time.Hour)

	require.True(t, lim.Allow("http://stats.example.com/page=1"))
	require.False(t, lim.Allow("http://stats.example.com/page=2"))
}

func TestHostLimiter_HostsAreIndependent(t *testing.T) {
	lim := NewHostLimiter(time.Hour)

	require.True(t, lim.Allow("http://a.example.com/"))
	require.True(t, lim.Allow("http://b.example.com/"))
}

func TestHostLimiter_WaitSpacesRequests(t *testing.T) {
	delay := 60 * time.Millisecond
	lim := NewHostLimiter(delay)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, lim.Wait(ctx, "http://stats.example.com/1"))
	require.NoError(t, lim.Wait(ctx, "http://stats.example.com/2"))
	require.NoError(t, lim.Wait(ctx, "http://stats.example.com/3"))

	require.GreaterOrEqual(t, time.Since(start), 2*delay-10*time.Millisecond)
}

func TestHostLimiter_ZeroDelayNeverBlocks(t *testing.T) {
	lim := NewHostLimiter(0)
	for i := 0; i < 100; i++ {
		require.True(t, lim.Allow("http://stats.example.com/"))
	}
}

func TestHostLimiter_WaitHonoursCancelledContext(t *testing.T) {
	lim := NewHostLimiter(time.Hour)
	require.True(t, lim.Allow("http://stats.example.com/"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, lim.Wait(ctx, "http://stats.example.com/"))
}

func TestHostLimiter_InvalidURLPassesThrough(t *testing.T) {
	lim := NewHostLimiter(time.Hour)
	require.NoError(t, lim.Wait(context.Background(), "://bad"))
	require.True(t, lim.Allow("://bad"))
}
