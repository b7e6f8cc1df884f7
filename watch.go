// FILE: lixenwraith/promconf/watch.go
package promconf

const DefaultMaxWatchers = 100 // Prevent resource exhaustion

// Change describes one accepted setting update.
type Change struct {
	Key string
	Old any
	New any
}

// Watch returns a channel that receives a Change for every accepted setting
// update. The channel is buffered; a subscriber that falls behind misses
// changes rather than blocking updates. Callers release the channel with
// Unwatch.
func (r *Registry) Watch() <-chan Change {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	// Check watcher limit
	if len(r.watchers) >= r.maxWatchers {
		// Return closed channel to prevent resource exhaustion
		ch := make(chan Change)
		close(ch)
		return ch
	}

	// Create buffered channel to prevent blocking
	ch := make(chan Change, 10)
	id := r.nextWatcherID.Add(1)
	r.watchers[id] = ch
	return ch
}

// Unwatch removes a channel previously returned by Watch and closes it.
// Unknown channels are ignored.
func (r *Registry) Unwatch(ch <-chan Change) {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	for id, registered := range r.watchers {
		if registered == ch {
			delete(r.watchers, id)
			close(registered)
			return
		}
	}
}

// WatcherCount returns the number of active watch channels.
func (r *Registry) WatcherCount() int {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()
	return len(r.watchers)
}

// notifyWatchers sends change notification to all subscribers
func (r *Registry) notifyWatchers(change Change) {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	for _, ch := range r.watchers {
		select {
		case ch <- change:
			// Sent successfully
		default:
			// Channel full, skip
		}
	}
}
