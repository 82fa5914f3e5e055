package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/aoc2018/boxid"
	"github.com/katalvlaran/aoc2018/fabric"
	"github.com/katalvlaran/aoc2018/frequency"
	"github.com/katalvlaran/aoc2018/polymer"
	"github.com/katalvlaran/aoc2018/shiftlog"
	"github.com/katalvlaran/aoc2018/voronoi"
)

// Answer holds both parts of a day's result. Details carries supporting
// values that run logs next to the answers.
type Answer struct {
	Part1   int
	Part2   string
	Details []slog.Attr
}

// params carries per-run knobs that individual days may consult.
type params struct {
	threshold int
}

var errUnbounded = errors.New("aoc2018: every region touches the border")

type solver func(lines []string, p params) (Answer, error)

var solvers = map[int]solver{
	1: day1,
	2: day2,
	3: day3,
	4: day4,
	5: day5,
	6: day6,
}

func day1(lines []string, _ params) (Answer, error) {
	changes, err := frequency.Parse(lines)
	if err != nil {
		return Answer{}, err
	}
	repeat, err := frequency.FirstRepeat(changes)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: frequency.Sum(changes), Part2: fmt.Sprint(repeat)}, nil
}

func day2(lines []string, _ params) (Answer, error) {
	common, err := boxid.Prototype(lines)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: boxid.Checksum(lines), Part2: common}, nil
}

func day3(lines []string, _ params) (Answer, error) {
	claims, err := fabric.ParseClaims(lines)
	if err != nil {
		return Answer{}, err
	}
	overlap, err := fabric.Overlap(claims)
	if err != nil {
		return Answer{}, err
	}
	intact, err := fabric.Intact(claims)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: overlap, Part2: fmt.Sprint(intact.ID)}, nil
}

func day4(lines []string, _ params) (Answer, error) {
	res, err := shiftlog.Aggregate(lines)
	if err != nil {
		return Answer{}, err
	}

	ans := Answer{
		Part1: res.MostAsleep.Product(),
		Part2: fmt.Sprint(res.MostFrequentMinute.Product()),
	}
	ans.Details = []slog.Attr{
		findingAttr("most_asleep", "total_minutes", res.MostAsleep),
		findingAttr("most_frequent_minute", "count", res.MostFrequentMinute),
	}

	return ans, nil
}

// findingAttr groups a finding's actor, minute and value under key.
func findingAttr(key, valueName string, f shiftlog.Finding) slog.Attr {
	return slog.Group(key, "actor", f.Actor, "minute", f.Minute, valueName, f.Value)
}

func day5(lines []string, _ params) (Answer, error) {
	p := strings.Join(lines, "")
	n, err := polymer.React(p)
	if err != nil {
		return Answer{}, err
	}
	_, shortest, err := polymer.Shortest(p)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: n, Part2: fmt.Sprint(shortest)}, nil
}

func day6(lines []string, p params) (Answer, error) {
	points, err := voronoi.ParsePoints(lines)
	if err != nil {
		return Answer{}, err
	}
	m, err := voronoi.Build(points)
	if err != nil {
		return Answer{}, err
	}
	_, area, ok := m.LargestBoundedArea()
	if !ok {
		return Answer{}, errUnbounded
	}
	safe, err := voronoi.SafeRegionSize(points, p.threshold)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: area, Part2: fmt.Sprint(safe)}, nil
}
