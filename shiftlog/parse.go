package shiftlog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/aoc2018/input"
)

const (
	msgSleep = "falls asleep"
	msgWake  = "wakes up"
)

var beginRx = regexp.MustCompile(`^Guard #(\d+) begins shift$`)

// ParseEvent parses one "[<timestamp>] <message>" record. The timestamp is
// parsed with layout (see DefaultLayout) in UTC.
// Errors are *input.ParseError wrapping ErrMalformedEntry.
func ParseEvent(line, layout string) (Event, error) {
	fail := func(reason string) (Event, error) {
		return Event{}, &input.ParseError{Text: line, Err: fmt.Errorf("%w: %s", ErrMalformedEntry, reason)}
	}

	rest, ok := strings.CutPrefix(line, "[")
	if !ok {
		return fail("missing '['")
	}
	stamp, msg, ok := strings.Cut(rest, "] ")
	if !ok {
		return fail("missing '] '")
	}
	ts, err := time.Parse(layout, stamp)
	if err != nil {
		return fail("timestamp: " + err.Error())
	}

	switch msg {
	case msgSleep:
		return Event{Time: ts, Kind: Sleep}, nil
	case msgWake:
		return Event{Time: ts, Kind: Wake}, nil
	}
	m := beginRx.FindStringSubmatch(msg)
	if m == nil {
		return fail(fmt.Sprintf("unknown message %q", msg))
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return fail("guard id: " + err.Error())
	}

	return Event{Time: ts, Kind: Begin, Actor: id}, nil
}

// Parse parses every line with DefaultLayout, stopping at the first error.
// The returned order is the input order.
func Parse(lines []string) ([]Event, error) {
	events := make([]Event, 0, len(lines))
	for i, line := range lines {
		e, err := ParseEvent(line, DefaultLayout)
		if err != nil {
			return nil, input.AtLine(err, i+1)
		}
		events = append(events, e)
	}

	return events, nil
}
