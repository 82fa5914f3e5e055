// Package shiftlog aggregates guard shift logs: timestamped records of
// shift starts, naps and wake-ups.
//
// What:
//
//   - ParseEvent / Parse turn "[yyyy-MM-dd HH:mm] message" records into Events.
//   - Builder folds time-sorted events into per-actor Shifts.
//   - Shift.Intervals pairs consecutive Sleep→Wake events; any other adjacent
//     pairing (Wake→Wake, Sleep→Sleep) is tolerated and ignored.
//   - Aggregate computes per-actor totals and minute-of-hour histograms and
//     reports two findings:
//     - MostAsleep:          actor with the most minutes asleep overall.
//     - MostFrequentMinute:  actor/minute pair slept through most often.
//
// Determinism:
//
//   - Input order is never trusted; events are stably sorted by timestamp.
//   - Ties resolve to the lowest actor id, then the lowest minute.
//
// Complexity:
//
//   - Aggregate: O(N log N) for the sort plus O(N + M) for grouping, where
//     M is the total number of minutes asleep.
//
// Errors:
//
//   - *input.ParseError wrapping ErrMalformedEntry: unrecognised record.
//   - ErrNoOpenShift, ErrUnsorted, ErrEmptyLog: logical violations, all
//     matching input.ErrInvalidInput.
package shiftlog
