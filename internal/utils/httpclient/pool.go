package httpclient

import (
	"net/http"
	"sync"
	"time"
)

// Pool manages a set of reusable HTTP clients so outbound callers share
// transports instead of mutating a process-wide client.
type Pool struct {
	clients chan *http.Client
	factory func() *http.Client
	mu      sync.RWMutex
	closed  bool
}

// NewPool creates a pool of maxClients HTTP clients with the given timeout
func NewPool(maxClients int, timeout time.Duration) *Pool {
	pool := &Pool{
		clients: make(chan *http.Client, maxClients),
		factory: func() *http.Client { return newClient(timeout) },
	}

	// Pre-populate the pool
	for i := 0; i < maxClients; i++ {
		pool.clients <- pool.factory()
	}

	return pool
}

// newClient creates an HTTP client with connection reuse tuned for a small
// number of upstream hosts
func newClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
		},
	}
}

// Get retrieves an HTTP client from the pool
func (p *Pool) Get() *http.Client {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return p.factory()
	}

	select {
	case client := <-p.clients:
		return client
	default:
		// Pool is empty, create a new client
		return p.factory()
	}
}

// Put returns an HTTP client to the pool
func (p *Pool) Put(client *http.Client) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return
	}

	select {
	case p.clients <- client:
	default:
		// Pool is full, discard the client
	}
}

// Close closes the pool and cleans up resources
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.closed = true
	close(p.clients)
}
