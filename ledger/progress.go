// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

// Goals are the public signature targets in ascending order. Once a goal is
// reached the next one is shown; the last goal stays after it is passed.
var Goals = []int64{10000, 50000}

// Progress toward the current goal
type Progress struct {
	Goal    int64
	Percent float64 // 0-100
}

func ProgressFor(count int64) Progress {
	if len(Goals) == 0 {
		return Progress{}
	}

	goal := Goals[len(Goals)-1]
	for _, g := range Goals {
		if count < g {
			goal = g
			break
		}
	}

	percent := float64(count) / float64(goal) * 100
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return Progress{Goal: goal, Percent: percent}
}
