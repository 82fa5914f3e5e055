package shiftlog_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2018/shiftlog"
)

// ExampleAggregate runs both findings over a short shift log.
func ExampleAggregate() {
	res, err := shiftlog.Aggregate([]string{
		"[1518-11-01 00:00] Guard #10 begins shift",
		"[1518-11-01 00:05] falls asleep",
		"[1518-11-01 00:25] wakes up",
		"[1518-11-02 00:00] Guard #99 begins shift",
		"[1518-11-02 00:20] falls asleep",
		"[1518-11-02 00:30] wakes up",
		"[1518-11-03 00:00] Guard #99 begins shift",
		"[1518-11-03 00:29] falls asleep",
		"[1518-11-03 00:31] wakes up",
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	a, b := res.MostAsleep, res.MostFrequentMinute
	fmt.Printf("most asleep: guard %d, %d minutes, peak minute %d\n", a.Actor, a.Value, a.Minute)
	fmt.Printf("most frequent: guard %d at minute %d (%d times)\n", b.Actor, b.Minute, b.Value)
	// Output:
	// most asleep: guard 10, 20 minutes, peak minute 5
	// most frequent: guard 99 at minute 29 (2 times)
}
