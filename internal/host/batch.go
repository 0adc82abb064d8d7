package host

// Batcher applies DOM writes either immediately or, when deferred, in one
// pass on Flush.
type Batcher struct {
	deferred bool
	queue    []func()
	flushes  int
}

// Mutate runs fn now, or queues it when the batcher is deferred.
func (b *Batcher) Mutate(fn func()) {
	if !b.deferred {
		fn()
		return
	}
	b.queue = append(b.queue, fn)
}

// Flush runs queued writes in submission order, including writes queued by
// the writes themselves. It returns how many ran.
func (b *Batcher) Flush() int {
	ran := 0
	for len(b.queue) > 0 {
		queue := b.queue
		b.queue = nil
		for _, fn := range queue {
			fn()
			ran++
		}
	}
	if ran > 0 {
		b.flushes++
	}
	return ran
}

// Pending returns the number of queued writes.
func (b *Batcher) Pending() int { return len(b.queue) }

// Flushes returns how many non-empty flushes have run.
func (b *Batcher) Flushes() int { return b.flushes }

// Deferred reports whether writes are queued until Flush.
func (b *Batcher) Deferred() bool { return b.deferred }
