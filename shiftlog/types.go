package shiftlog

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/aoc2018/input"
)

// DefaultLayout is the timestamp layout of a log record, interpreted in UTC.
const DefaultLayout = "2006-01-02 15:04"

// MinutesPerHour sizes a Histogram.
const MinutesPerHour = 60

// Sentinel errors returned by shiftlog.
var (
	// ErrMalformedEntry indicates a record that does not match the log format.
	ErrMalformedEntry = errors.New("shiftlog: malformed log entry")

	// ErrUnknownKind indicates an Event whose Kind is not Begin, Sleep or Wake.
	ErrUnknownKind = errors.New("shiftlog: unknown event kind")

	// ErrNoOpenShift indicates a Sleep/Wake event before any shift began.
	ErrNoOpenShift = input.Invalid("shiftlog: sleep/wake event with no open shift")

	// ErrUnsorted indicates events fed to a Builder out of timestamp order.
	ErrUnsorted = input.Invalid("shiftlog: events are not sorted by timestamp")

	// ErrEmptyLog indicates a log with no events.
	ErrEmptyLog = input.Invalid("shiftlog: log has no events")
)

// Kind tags the variant of an Event.
type Kind int

const (
	// Begin starts a shift for Event.Actor.
	Begin Kind = iota
	// Sleep marks the on-duty actor falling asleep.
	Sleep
	// Wake marks the on-duty actor waking up.
	Wake
)

// String returns the log message fragment for k.
func (k Kind) String() string {
	switch k {
	case Begin:
		return "begin"
	case Sleep:
		return "sleep"
	case Wake:
		return "wake"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one parsed log record. Actor is meaningful only when Kind == Begin.
type Event struct {
	Time  time.Time
	Kind  Kind
	Actor int
}

// String renders e in the original log format.
func (e Event) String() string {
	stamp := "[" + e.Time.Format(DefaultLayout) + "] "
	switch e.Kind {
	case Begin:
		return fmt.Sprintf("%sGuard #%d begins shift", stamp, e.Actor)
	case Sleep:
		return stamp + msgSleep
	case Wake:
		return stamp + msgWake
	default:
		return stamp + e.Kind.String()
	}
}

// Shift is one on-duty period: a Begin event followed by that actor's
// Sleep/Wake events up to the next Begin, in timestamp order.
type Shift struct {
	Actor  int
	Events []Event
}

// Interval is a half-open sleep period [From, To).
type Interval struct {
	From, To time.Time
}

// Histogram counts, per minute of the hour, how many sleep intervals
// covered that minute.
type Histogram [MinutesPerHour]int

// Finding is an (actor, minute, value) answer triple. Value is the metric
// being maximised: total minutes for MostAsleep, a count for MostFrequentMinute.
type Finding struct {
	Actor  int
	Minute int
	Value  int
}

// Product returns Actor × Minute, the puzzle answer for a finding.
func (f Finding) Product() int { return f.Actor * f.Minute }

// Result is the output of Aggregate.
type Result struct {
	Shifts     map[int][]Shift   // actor -> shifts in time order
	Totals     map[int]int       // actor -> minutes asleep across all shifts
	Histograms map[int]Histogram // actor -> minute-of-hour sleep counts

	MostAsleep         Finding // actor with the largest total; Minute is that actor's peak
	MostFrequentMinute Finding // global peak of every actor's histogram
}
