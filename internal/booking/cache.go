// Package booking holds the client-side availability model for the booking
// calendar: a cache of the bookings known to the server and the queries that
// decide what a visitor can still book on a given date.
//
// The cache is advisory. It exists so the picker can give early feedback
// without extra round trips; the server performs the authoritative collision
// check on submission, and anything this package cannot parse degrades to
// "available" rather than blocking a booking the server might accept.
package booking

import (
	"sync"

	"github.com/klubbsidan/klubbctl/internal/api"
)

// Cache is a snapshot of the bookings for the visible calendar range. It is
// replaced wholesale on every refresh, never patched in place.
//
// Refreshes are tagged with a generation number so that when two fetches
// overlap, only the result of the newest one is applied and a slow stale
// response cannot overwrite fresher data.
type Cache struct {
	mu       sync.Mutex
	bookings []api.Booking
	current  uint64 // newest generation handed out by Begin
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Begin registers a new fetch and returns its generation number. Any fetch
// started earlier becomes stale immediately.
func (c *Cache) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current++
	return c.current
}

// Apply replaces the snapshot with the given bookings, but only when gen is
// still the newest generation. Returns false when the result was stale and
// discarded.
func (c *Cache) Apply(bookings []api.Booking, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.current {
		return false
	}
	c.bookings = make([]api.Booking, len(bookings))
	copy(c.bookings, bookings)
	return true
}

// Snapshot returns a copy of the cached bookings.
func (c *Cache) Snapshot() []api.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]api.Booking, len(c.bookings))
	copy(snapshot, c.bookings)
	return snapshot
}
