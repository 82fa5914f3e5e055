package shiftlog

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Aggregate parses lines, sorts the events and computes both findings.
// See AggregateEvents.
func Aggregate(lines []string) (Result, error) {
	events, err := Parse(lines)
	if err != nil {
		return Result{}, err
	}

	return AggregateEvents(events)
}

// AggregateEvents groups events (in any order; the slice is not modified)
// into shifts and computes per-actor totals, histograms and both findings.
//
// Behavior:
//  1. Copy and stably sort events by timestamp.
//  2. Fold them through a Builder into actor -> shifts.
//  3. For each actor, sum MinutesAsleep and histogram every interval.
//  4. MostAsleep: largest total; MostFrequentMinute: largest histogram count.
//     Ties resolve to the lowest actor id, then the lowest minute.
//
// Returns ErrEmptyLog for no events, or any Builder error.
func AggregateEvents(events []Event) (Result, error) {
	if len(events) == 0 {
		return Result{}, ErrEmptyLog
	}
	sorted := slices.Clone(events)
	Sort(sorted)

	b := NewBuilder()
	for _, e := range sorted {
		if err := b.Add(e); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		Shifts:     b.Shifts(),
		Totals:     make(map[int]int, len(b.Shifts())),
		Histograms: make(map[int]Histogram, len(b.Shifts())),
	}
	for actor, shifts := range res.Shifts {
		var h Histogram
		total := 0
		for _, s := range shifts {
			for _, iv := range s.Intervals() {
				total += iv.Minutes()
				h.Add(iv)
			}
		}
		res.Totals[actor] = total
		res.Histograms[actor] = h
	}
	res.MostAsleep, res.MostFrequentMinute = findings(res)

	return res, nil
}

// Actors returns the ids of every actor in r, ascending.
func (r Result) Actors() []int {
	ids := maps.Keys(r.Shifts)
	slices.Sort(ids)

	return ids
}

// findings scans actors in ascending id order; strict comparisons keep the
// lowest id on ties.
func findings(r Result) (mostAsleep, mostFrequent Finding) {
	mostAsleep.Value, mostFrequent.Value = -1, -1
	for _, actor := range r.Actors() {
		h := r.Histograms[actor]
		minute, count := h.Peak()
		if total := r.Totals[actor]; total > mostAsleep.Value {
			mostAsleep = Finding{Actor: actor, Minute: minute, Value: total}
		}
		if count > mostFrequent.Value {
			mostFrequent = Finding{Actor: actor, Minute: minute, Value: count}
		}
	}

	return mostAsleep, mostFrequent
}
