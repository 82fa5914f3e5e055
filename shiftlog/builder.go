package shiftlog

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/aoc2018/seq"
)

// Sort orders events by timestamp, ascending. Equal timestamps keep their
// relative input order.
func Sort(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int { return a.Time.Compare(b.Time) })
}

// Builder folds time-sorted events into per-actor shifts. Only the last
// shift of the currently on-duty actor is ever mutated.
type Builder struct {
	shifts  map[int][]Shift
	current int  // actor of the open shift
	open    bool // a Begin has been seen
	last    time.Time
	started bool // at least one event added
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{shifts: make(map[int][]Shift)}
}

// Add appends e to the open shift, or opens a new shift for a Begin event.
// Returns ErrUnsorted if e precedes the previous event, ErrNoOpenShift for a
// Sleep/Wake before any Begin, ErrUnknownKind for an invalid Kind.
func (b *Builder) Add(e Event) error {
	if b.started && e.Time.Before(b.last) {
		return fmt.Errorf("%s: %w", e, ErrUnsorted)
	}

	switch e.Kind {
	case Begin:
		b.shifts[e.Actor] = append(b.shifts[e.Actor], Shift{Actor: e.Actor, Events: []Event{e}})
		b.current, b.open = e.Actor, true
	case Sleep, Wake:
		if !b.open {
			return fmt.Errorf("%s: %w", e, ErrNoOpenShift)
		}
		list := b.shifts[b.current]
		last := &list[len(list)-1]
		last.Events = append(last.Events, e)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, e.Kind)
	}
	b.last, b.started = e.Time, true

	return nil
}

// Shifts returns the accumulated actor -> shifts map. The map is owned by
// the Builder; callers must not add to it while still calling Add.
func (b *Builder) Shifts() map[int][]Shift {
	return b.shifts
}

// Intervals returns the sleep intervals of s: every consecutive
// (Sleep, Wake) pair after the opening Begin. Other adjacent pairings are
// irregular but tolerated and contribute nothing.
func (s Shift) Intervals() []Interval {
	body := s.Events
	if len(body) > 0 && body[0].Kind == Begin {
		body = body[1:]
	}

	var out []Interval
	for i := 0; i+1 < len(body); i++ {
		first, second := body[i], body[i+1]
		if first.Kind == Sleep && second.Kind == Wake {
			out = append(out, Interval{From: first.Time, To: second.Time})
		}
	}

	return out
}

// MinutesAsleep sums the whole minutes of every sleep interval in s.
func (s Shift) MinutesAsleep() int {
	total := 0
	for _, iv := range s.Intervals() {
		total += iv.Minutes()
	}

	return total
}

// Minutes returns the whole minutes elapsed in iv (floor of seconds / 60).
func (iv Interval) Minutes() int {
	d := iv.To.Sub(iv.From)
	if d <= 0 {
		return 0
	}

	return int(d / time.Minute)
}

// Add counts every minute-of-hour covered by iv into h. Intervals crossing
// an hour boundary wrap around; an interval adds at most 1 to each slot, so
// anything longer than an hour marks all MinutesPerHour slots once.
func (h *Histogram) Add(iv Interval) {
	t := iv.From
	for n := 0; n < MinutesPerHour && t.Before(iv.To); n++ {
		h[t.Minute()]++
		t = t.Add(time.Minute)
	}
}

// Peak returns the minute with the highest count and that count.
// Ties resolve to the earliest minute.
func (h *Histogram) Peak() (minute, count int) {
	minute = seq.ArgMax(h[:], func(c int) int { return c })

	return minute, h[minute]
}
