package telemetry

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/proctorlab/telemetry-sink/models"
)

// TestStoreProperty_RingInvariants cross-checks the ring buffer against a
// plain-slice model: for any capacity and insertion count, the store holds
// the newest min(n, capacity) events in insertion order with dense ids.
func TestStoreProperty_RingInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 20).Draw(rt, "capacity")
		n := rapid.IntRange(0, 60).Draw(rt, "num_events")

		store := NewStore(capacity)
		var model []models.Event

		for i := 0; i < n; i++ {
			kind := models.Kinds()[rapid.IntRange(0, 2).Draw(rt, "kind_idx")]
			severity := models.Severities()[rapid.IntRange(0, 2).Draw(rt, "sev_idx")]
			event, err := store.Record("session", kind, severity, "m", time.Time{})
			if err != nil {
				rt.Fatalf("Record failed: %v", err)
			}
			if event.ID != int64(i+1) {
				rt.Fatalf("event id = %d, want %d", event.ID, i+1)
			}
			model = append(model, event)
			if len(model) > capacity {
				model = model[1:]
			}
		}

		got := store.List(n + 1)
		if len(got) != len(model) {
			rt.Fatalf("List returned %d events, model holds %d", len(got), len(model))
		}
		for i := range model {
			if got[i].ID != model[i].ID {
				rt.Fatalf("event[%d].ID = %d, want %d", i, got[i].ID, model[i].ID)
			}
		}

		agg := store.Snapshot()
		if agg.Total != len(model) {
			rt.Fatalf("Snapshot total = %d, want %d", agg.Total, len(model))
		}
		kindSum, sevSum := 0, 0
		for _, c := range agg.ByKind {
			kindSum += c
		}
		for _, c := range agg.BySeverity {
			sevSum += c
		}
		if kindSum != agg.Total || sevSum != agg.Total {
			rt.Fatalf("map sums (%d kind, %d severity) != total %d", kindSum, sevSum, agg.Total)
		}
		if len(model) == 0 {
			if agg.Latest != nil {
				rt.Fatalf("Latest should be nil for an empty store")
			}
		} else if agg.Latest == nil || !agg.Latest.Equal(model[len(model)-1].Timestamp) {
			rt.Fatalf("Latest = %v, want %v", agg.Latest, model[len(model)-1].Timestamp)
		}
	})
}

// TestStoreProperty_ListWindow verifies List clamping for arbitrary limits.
func TestStoreProperty_ListWindow(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 15).Draw(rt, "capacity")
		n := rapid.IntRange(1, 40).Draw(rt, "num_events")
		limit := rapid.IntRange(-5, 50).Draw(rt, "limit")

		store := NewStore(capacity)
		for i := 0; i < n; i++ {
			if _, err := store.Record("s", models.KindSystem, "", "m", time.Time{}); err != nil {
				rt.Fatalf("Record failed: %v", err)
			}
		}

		stored := n
		if stored > capacity {
			stored = capacity
		}
		want := limit
		if want < 1 {
			want = 1
		}
		if want > stored {
			want = stored
		}

		got := store.List(limit)
		if len(got) != want {
			rt.Fatalf("List(%d) returned %d events, want %d", limit, len(got), want)
		}
		// The window always ends at the newest event.
		if got[len(got)-1].ID != int64(n) {
			rt.Fatalf("last id = %d, want %d", got[len(got)-1].ID, n)
		}
	})
}
