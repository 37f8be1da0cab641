package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_GetPut(t *testing.T) {
	// Single-slot pool so the Put/Get round-trip must yield the same client
	pool := NewPool(1, 5*time.Second)
	defer pool.Close()

	client := pool.Get()
	require.NotNil(t, client)
	assert.Equal(t, 5*time.Second, client.Timeout)

	pool.Put(client)

	again := pool.Get()
	assert.Same(t, client, again)
}

func TestPool_ExhaustedPoolCreatesClients(t *testing.T) {
	pool := NewPool(1, time.Second)
	defer pool.Close()

	first := pool.Get()
	second := pool.Get()

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
}

func TestPool_ClosedPool(t *testing.T) {
	pool := NewPool(1, time.Second)
	pool.Close()

	// Get after close still hands out a usable client
	client := pool.Get()
	assert.NotNil(t, client)

	// Put after close is a no-op
	pool.Put(client)

	// Double close must not panic
	pool.Close()
}
