package telemetry

import (
	"sync"
	"time"

	"github.com/proctorlab/telemetry-sink/models"
	"github.com/proctorlab/telemetry-sink/services"
)

// DefaultCapacity is the number of events retained when no explicit
// capacity is configured.
const DefaultCapacity = 500

// Store is a capacity-bounded, in-memory sequence of telemetry events.
// It assigns strictly increasing ids, keeps insertion order, and evicts the
// oldest event when an append would exceed capacity. All operations are
// serialized by a single mutex; reads never observe a half-applied mutation.
//
// State lives for the process lifetime only. Ids restart at 1 on restart,
// which polling dashboards detect via the instance id on /health.
type Store struct {
	mu     sync.Mutex
	events []models.Event // circular buffer, len == capacity
	head   int            // index of the oldest stored event
	size   int
	nextID int64
}

// NewStore creates a store retaining at most capacity events.
// A non-positive capacity falls back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		events: make([]models.Event, capacity),
	}
}

// Record accepts a validated event, assigns it the next id and appends it.
// A zero-value severity defaults to info; a zero timestamp defaults to the
// current time in UTC, captured under the lock. When the store is full the
// single oldest event is evicted.
//
// The adapter validates enums before calling; an unrecognized kind or
// severity here is an adapter bug and is rejected so it can never skew the
// aggregate counts.
func (s *Store) Record(sessionID string, kind models.Kind, severity models.Severity, message string, ts time.Time) (models.Event, error) {
	if !kind.IsValid() {
		return models.Event{}, services.ErrUnknownKind.Detailed("kind", string(kind))
	}
	if severity == "" {
		severity = models.SeverityInfo
	} else if !severity.IsValid() {
		return models.Event{}, services.ErrUnknownSeverity.Detailed("severity", string(severity))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	s.nextID++
	event := models.Event{
		ID:        s.nextID,
		SessionID: sessionID,
		Kind:      kind,
		Severity:  severity,
		Message:   message,
		Timestamp: ts,
	}

	tail := (s.head + s.size) % len(s.events)
	s.events[tail] = event
	if s.size == len(s.events) {
		// Full: the slot we just wrote was the oldest event.
		s.head = (s.head + 1) % len(s.events)
	} else {
		s.size++
	}

	return event, nil
}

// List returns the limit most recently inserted events in ascending
// insertion order. The limit is clamped to [1, stored count]; an empty
// store yields an empty slice regardless of limit. The result is a copy and
// is not affected by later Record calls.
func (s *Store) List(limit int) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.size == 0 {
		return []models.Event{}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > s.size {
		limit = s.size
	}

	out := make([]models.Event, limit)
	start := s.head + s.size - limit
	for i := 0; i < limit; i++ {
		out[i] = s.events[(start+i)%len(s.events)]
	}
	return out
}

// Aggregate is a point-in-time derived view over the retained events.
// Total counts retained events only, not lifetime accepted ones; both maps
// always carry every known key.
type Aggregate struct {
	Total      int                     `json:"total"`
	ByKind     map[models.Kind]int     `json:"by_kind"`
	BySeverity map[models.Severity]int `json:"by_severity"`
	Latest     *time.Time              `json:"latest,omitempty"`
}

// Snapshot recomputes the aggregate from the current store contents.
// Cost is linear in the stored count, bounded by capacity.
func (s *Store) Snapshot() Aggregate {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := Aggregate{
		Total:      s.size,
		ByKind:     make(map[models.Kind]int, len(models.Kinds())),
		BySeverity: make(map[models.Severity]int, len(models.Severities())),
	}
	for _, k := range models.Kinds() {
		agg.ByKind[k] = 0
	}
	for _, sev := range models.Severities() {
		agg.BySeverity[sev] = 0
	}

	for i := 0; i < s.size; i++ {
		ev := s.events[(s.head+i)%len(s.events)]
		agg.ByKind[ev.Kind]++
		agg.BySeverity[ev.Severity]++
	}

	if s.size > 0 {
		latest := s.events[(s.head+s.size-1)%len(s.events)].Timestamp
		agg.Latest = &latest
	}
	return agg
}

// Len returns the number of currently retained events.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Capacity returns the maximum number of retained events.
func (s *Store) Capacity() int {
	return len(s.events)
}
