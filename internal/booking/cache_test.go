package booking

import (
	"testing"

	"github.com/klubbsidan/klubbctl/internal/api"
)

func TestApplyDiscardsStaleGeneration(t *testing.T) {
	c := NewCache()

	stale := c.Begin()
	fresh := c.Begin()

	freshBookings := []api.Booking{{ID: 2, BookingType: api.BookingType2H, Start: "2026-03-15T12:00:00"}}
	if !c.Apply(freshBookings, fresh) {
		t.Fatal("newest generation must be applied")
	}

	staleBookings := []api.Booking{{ID: 1, BookingType: api.BookingTypeFullDay, Start: "2026-03-15"}}
	if c.Apply(staleBookings, stale) {
		t.Fatal("stale generation must be discarded")
	}

	snapshot := c.Snapshot()
	if len(snapshot) != 1 || snapshot[0].ID != 2 {
		t.Errorf("stale result overwrote the cache: %+v", snapshot)
	}
}

func TestApplyReplacesWholesale(t *testing.T) {
	c := NewCache()

	c.Apply([]api.Booking{{ID: 1}, {ID: 2}}, c.Begin())
	c.Apply([]api.Booking{{ID: 3}}, c.Begin())

	snapshot := c.Snapshot()
	if len(snapshot) != 1 || snapshot[0].ID != 3 {
		t.Errorf("refresh must replace the snapshot, not merge it: %+v", snapshot)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewCache()
	c.Apply([]api.Booking{{ID: 1, Title: "original"}}, c.Begin())

	snapshot := c.Snapshot()
	snapshot[0].Title = "mutated"

	if c.Snapshot()[0].Title != "original" {
		t.Error("mutating a snapshot must not affect the cache")
	}
}
