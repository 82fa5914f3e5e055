package shiftlog_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/aoc2018/input"
	"github.com/katalvlaran/aoc2018/seq"
	"github.com/katalvlaran/aoc2018/shiftlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleLog is the canonical example log, deliberately shuffled.
var sampleLog = []string{
	"[1518-11-05 00:55] wakes up",
	"[1518-11-01 00:00] Guard #10 begins shift",
	"[1518-11-01 00:05] falls asleep",
	"[1518-11-01 00:25] wakes up",
	"[1518-11-02 00:50] wakes up",
	"[1518-11-01 00:30] falls asleep",
	"[1518-11-01 00:55] wakes up",
	"[1518-11-01 23:58] Guard #99 begins shift",
	"[1518-11-02 00:40] falls asleep",
	"[1518-11-03 00:05] Guard #10 begins shift",
	"[1518-11-03 00:24] falls asleep",
	"[1518-11-03 00:29] wakes up",
	"[1518-11-04 00:02] Guard #99 begins shift",
	"[1518-11-04 00:36] falls asleep",
	"[1518-11-04 00:46] wakes up",
	"[1518-11-05 00:03] Guard #99 begins shift",
	"[1518-11-05 00:45] falls asleep",
}

// at builds a UTC timestamp on 1518-11-01 + day offset.
func at(day, hour, minute int) time.Time {
	return time.Date(1518, time.November, 1+day, hour, minute, 0, 0, time.UTC)
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

// TestParseEvent_Kinds parses each message kind.
func TestParseEvent_Kinds(t *testing.T) {
	cases := []struct {
		line string
		want shiftlog.Event
	}{
		{"[1518-11-01 00:00] Guard #10 begins shift", shiftlog.Event{Time: at(0, 0, 0), Kind: shiftlog.Begin, Actor: 10}},
		{"[1518-11-01 00:05] falls asleep", shiftlog.Event{Time: at(0, 0, 5), Kind: shiftlog.Sleep}},
		{"[1518-11-01 23:58] wakes up", shiftlog.Event{Time: at(0, 23, 58), Kind: shiftlog.Wake}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := shiftlog.ParseEvent(tc.line, shiftlog.DefaultLayout)
			require.NoError(t, err)
			assert.True(t, tc.want.Time.Equal(got.Time), "time %v; want %v", got.Time, tc.want.Time)
			assert.Equal(t, tc.want.Kind, got.Kind)
			assert.Equal(t, tc.want.Actor, got.Actor)
			assert.Equal(t, tc.line, got.String(), "String round-trips the record")
		})
	}
}

// TestParseEvent_CustomLayout shows the layout is a parameter, not a global.
func TestParseEvent_CustomLayout(t *testing.T) {
	got, err := shiftlog.ParseEvent("[01/11/1518 00:05] falls asleep", "02/01/2006 15:04")
	require.NoError(t, err)
	assert.True(t, at(0, 0, 5).Equal(got.Time))
}

// TestParseEvent_Malformed rejects every broken shape with a ParseError.
func TestParseEvent_Malformed(t *testing.T) {
	bad := []string{
		"",
		"1518-11-01 00:05] falls asleep",
		"[1518-11-01 00:05 falls asleep",
		"[1518-13-01 00:05] falls asleep",
		"[1518-11-01 00:05] dozes off",
		"[1518-11-01 00:05] Guard #x begins shift",
		"[1518-11-01 00:05] Guard #99999999999999999999 begins shift",
	}
	for _, line := range bad {
		t.Run(line, func(t *testing.T) {
			_, err := shiftlog.ParseEvent(line, shiftlog.DefaultLayout)
			var pe *input.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, line, pe.Text)
			assert.ErrorIs(t, err, shiftlog.ErrMalformedEntry)
			assert.NotErrorIs(t, err, input.ErrInvalidInput)
		})
	}
}

// TestParse_ReportsLineNumber aborts on the first bad record.
func TestParse_ReportsLineNumber(t *testing.T) {
	_, err := shiftlog.Parse([]string{
		"[1518-11-01 00:00] Guard #10 begins shift",
		"[1518-11-01 00:05] snores",
		"garbage",
	})
	var pe *input.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

//----------------------------------------------------------------------------//
// Grouping and durations
//----------------------------------------------------------------------------//

// TestBuilder_NoOpenShift rejects Sleep/Wake before any Begin.
func TestBuilder_NoOpenShift(t *testing.T) {
	for _, k := range []shiftlog.Kind{shiftlog.Sleep, shiftlog.Wake} {
		err := shiftlog.NewBuilder().Add(shiftlog.Event{Time: at(0, 0, 1), Kind: k})
		assert.ErrorIs(t, err, shiftlog.ErrNoOpenShift)
		assert.ErrorIs(t, err, input.ErrInvalidInput)
	}
}

// TestBuilder_Unsorted rejects time travel.
func TestBuilder_Unsorted(t *testing.T) {
	b := shiftlog.NewBuilder()
	require.NoError(t, b.Add(shiftlog.Event{Time: at(0, 0, 10), Kind: shiftlog.Begin, Actor: 1}))
	err := b.Add(shiftlog.Event{Time: at(0, 0, 5), Kind: shiftlog.Sleep})
	assert.ErrorIs(t, err, shiftlog.ErrUnsorted)
}

// TestBuilder_UnknownKind rejects out-of-range kinds.
func TestBuilder_UnknownKind(t *testing.T) {
	err := shiftlog.NewBuilder().Add(shiftlog.Event{Time: at(0, 0, 0), Kind: shiftlog.Kind(42)})
	assert.ErrorIs(t, err, shiftlog.ErrUnknownKind)
}

// TestBuilder_GroupsByOpenShift attaches events to the latest Begin.
func TestBuilder_GroupsByOpenShift(t *testing.T) {
	b := shiftlog.NewBuilder()
	events := []shiftlog.Event{
		{Time: at(0, 0, 0), Kind: shiftlog.Begin, Actor: 7},
		{Time: at(0, 0, 1), Kind: shiftlog.Sleep},
		{Time: at(0, 0, 2), Kind: shiftlog.Wake},
		{Time: at(1, 0, 0), Kind: shiftlog.Begin, Actor: 8},
		{Time: at(1, 0, 3), Kind: shiftlog.Sleep},
		{Time: at(2, 0, 0), Kind: shiftlog.Begin, Actor: 7},
	}
	for _, e := range events {
		require.NoError(t, b.Add(e))
	}
	shifts := b.Shifts()
	require.Len(t, shifts[7], 2)
	require.Len(t, shifts[8], 1)
	assert.Len(t, shifts[7][0].Events, 3)
	assert.Len(t, shifts[7][1].Events, 1)
	assert.Len(t, shifts[8][0].Events, 2)
}

// TestShift_MinutesAsleep_IrregularTolerated counts only Sleep→Wake pairs.
func TestShift_MinutesAsleep_IrregularTolerated(t *testing.T) {
	s := shiftlog.Shift{Actor: 1, Events: []shiftlog.Event{
		{Time: at(0, 0, 0), Kind: shiftlog.Begin, Actor: 1},
		{Time: at(0, 0, 3), Kind: shiftlog.Wake},  // wake with no sleep: ignored
		{Time: at(0, 0, 5), Kind: shiftlog.Sleep}, // superseded by the next sleep
		{Time: at(0, 0, 10), Kind: shiftlog.Sleep},
		{Time: at(0, 0, 20), Kind: shiftlog.Wake}, // 10 minutes
		{Time: at(0, 0, 25), Kind: shiftlog.Wake}, // wake→wake: ignored
		{Time: at(0, 0, 30), Kind: shiftlog.Sleep},
		{Time: at(0, 0, 33), Kind: shiftlog.Wake}, // 3 minutes
		{Time: at(0, 0, 40), Kind: shiftlog.Sleep}, // never woke: ignored
	}}
	assert.Equal(t, 13, s.MinutesAsleep())
	assert.Len(t, s.Intervals(), 2)
}

// TestInterval_MinutesFloors drops partial minutes.
func TestInterval_MinutesFloors(t *testing.T) {
	iv := shiftlog.Interval{From: at(0, 0, 0), To: at(0, 0, 2).Add(59 * time.Second)}
	assert.Equal(t, 2, iv.Minutes())
	assert.Zero(t, shiftlog.Interval{From: at(0, 0, 5), To: at(0, 0, 5)}.Minutes())
}

// TestHistogram_WrapsHour counts minutes across the hour boundary.
func TestHistogram_WrapsHour(t *testing.T) {
	var h shiftlog.Histogram
	h.Add(shiftlog.Interval{From: at(0, 23, 58), To: at(1, 0, 2)})
	h.Add(shiftlog.Interval{From: at(1, 0, 0), To: at(1, 0, 1)})
	assert.Equal(t, 1, h[58])
	assert.Equal(t, 1, h[59])
	assert.Equal(t, 2, h[0])
	assert.Equal(t, 1, h[1])
	assert.Zero(t, h[2])

	minute, count := h.Peak()
	assert.Equal(t, 0, minute)
	assert.Equal(t, 2, count)
}

// TestHistogram_LongIntervalCountsOncePerMinute keeps a multi-hour nap to
// one count per minute-of-hour slot.
func TestHistogram_LongIntervalCountsOncePerMinute(t *testing.T) {
	var h shiftlog.Histogram
	h.Add(shiftlog.Interval{From: at(1, 0, 10), To: at(1, 2, 20)})
	for m, n := range h {
		assert.Equal(t, 1, n, "minute %d", m)
	}

	// Exactly one hour also covers every slot once.
	var hour shiftlog.Histogram
	hour.Add(shiftlog.Interval{From: at(1, 0, 30), To: at(1, 1, 30)})
	assert.Equal(t, 60, seq.CountWhere(hour[:], func(n int) bool { return n == 1 }))
}

// TestAggregate_LongIntervalDoesNotInflateMinute checks the global minute
// finding against a nap longer than an hour.
func TestAggregate_LongIntervalDoesNotInflateMinute(t *testing.T) {
	res, err := shiftlog.Aggregate([]string{
		"[1518-11-01 00:00] Guard #1 begins shift",
		"[1518-11-01 00:10] falls asleep",
		"[1518-11-01 02:20] wakes up",
	})
	require.NoError(t, err)

	assert.Equal(t, shiftlog.Finding{Actor: 1, Minute: 0, Value: 1}, res.MostFrequentMinute)
	assert.Equal(t, 130, res.Totals[1])
	assert.Equal(t, shiftlog.Finding{Actor: 1, Minute: 0, Value: 130}, res.MostAsleep)
}

// TestHistogram_PeakTieKeepsEarliest checks the minute tie-break.
func TestHistogram_PeakTieKeepsEarliest(t *testing.T) {
	var h shiftlog.Histogram
	h[40], h[12] = 3, 3
	minute, count := h.Peak()
	assert.Equal(t, 12, minute)
	assert.Equal(t, 3, count)
}

//----------------------------------------------------------------------------//
// Aggregation
//----------------------------------------------------------------------------//

// TestAggregate_Sample checks both findings on the canonical log.
func TestAggregate_Sample(t *testing.T) {
	res, err := shiftlog.Aggregate(sampleLog)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 99}, res.Actors())
	assert.Equal(t, map[int]int{10: 50, 99: 30}, res.Totals)

	assert.Equal(t, shiftlog.Finding{Actor: 10, Minute: 24, Value: 50}, res.MostAsleep)
	assert.Equal(t, 240, res.MostAsleep.Product())

	assert.Equal(t, shiftlog.Finding{Actor: 99, Minute: 45, Value: 3}, res.MostFrequentMinute)
	assert.Equal(t, 4455, res.MostFrequentMinute.Product())

	assert.Len(t, res.Shifts[10], 2)
	assert.Len(t, res.Shifts[99], 3)
}

// TestAggregate_TotalsMatchPairs checks totals equal the sum of well-formed
// Sleep→Wake deltas for every actor.
func TestAggregate_TotalsMatchPairs(t *testing.T) {
	res, err := shiftlog.Aggregate(sampleLog)
	require.NoError(t, err)
	for actor, shifts := range res.Shifts {
		want := 0
		for _, s := range shifts {
			for _, iv := range s.Intervals() {
				want += int(iv.To.Sub(iv.From).Minutes())
			}
		}
		assert.Equal(t, want, res.Totals[actor], "actor %d", actor)
	}
}

// TestAggregate_TieBreaksLowestActor resolves equal totals and counts.
func TestAggregate_TieBreaksLowestActor(t *testing.T) {
	res, err := shiftlog.Aggregate([]string{
		"[1518-01-02 00:00] Guard #30 begins shift",
		"[1518-01-02 00:10] falls asleep",
		"[1518-01-02 00:20] wakes up",
		"[1518-01-01 00:00] Guard #4 begins shift",
		"[1518-01-01 00:15] falls asleep",
		"[1518-01-01 00:25] wakes up",
	})
	require.NoError(t, err)
	assert.Equal(t, shiftlog.Finding{Actor: 4, Minute: 15, Value: 10}, res.MostAsleep)
	assert.Equal(t, shiftlog.Finding{Actor: 4, Minute: 15, Value: 1}, res.MostFrequentMinute)
}

// TestAggregate_AwakeActors handles actors who never sleep.
func TestAggregate_AwakeActors(t *testing.T) {
	res, err := shiftlog.Aggregate([]string{
		"[1518-01-01 00:00] Guard #2 begins shift",
		"[1518-01-02 00:00] Guard #1 begins shift",
	})
	require.NoError(t, err)
	assert.Equal(t, shiftlog.Finding{Actor: 1, Minute: 0, Value: 0}, res.MostAsleep)
	assert.Equal(t, shiftlog.Finding{Actor: 1, Minute: 0, Value: 0}, res.MostFrequentMinute)
}

// TestAggregate_Errors surfaces parse and invariant failures.
func TestAggregate_Errors(t *testing.T) {
	_, err := shiftlog.Aggregate(nil)
	assert.ErrorIs(t, err, shiftlog.ErrEmptyLog)

	_, err = shiftlog.Aggregate([]string{
		"[1518-01-01 00:10] falls asleep",
		"[1518-01-01 00:20] Guard #3 begins shift",
	})
	assert.ErrorIs(t, err, shiftlog.ErrNoOpenShift)

	_, err = shiftlog.Aggregate([]string{"[1518-01-01 00:10] naps"})
	var pe *input.ParseError
	assert.True(t, errors.As(err, &pe))
}

// TestAggregateEvents_DoesNotMutateInput keeps the caller's order.
func TestAggregateEvents_DoesNotMutateInput(t *testing.T) {
	events, err := shiftlog.Parse(sampleLog)
	require.NoError(t, err)
	first := events[0]
	_, err = shiftlog.AggregateEvents(events)
	require.NoError(t, err)
	assert.Equal(t, first, events[0])
}
