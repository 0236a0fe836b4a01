// Package mainloop moves work onto the GTK main loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks posted from any goroutine into
// a single main-loop callback running the latest task. Config file saves,
// which fsnotify reports as several events, reach the UI once.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that schedules through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		post:      post,
	}
}

// Post records fn as the latest task for key and schedules it unless a
// callback for key is already queued.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if fn != nil && !destroyed {
		fn()
	}
}

// Destroy drops queued work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
