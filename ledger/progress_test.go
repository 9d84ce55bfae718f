// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "testing"

func TestProgressFor(t *testing.T) {
	tests := []struct {
		name        string
		count       int64
		wantGoal    int64
		wantPercent float64
	}{
		{"zero", 0, 10000, 0},
		{"halfway to first goal", 5000, 10000, 50},
		{"just under first goal", 9999, 10000, 99.99},
		{"first goal reached moves to second", 10000, 50000, 20},
		{"second goal reached caps at 100", 50000, 50000, 100},
		{"past every goal", 75000, 50000, 100},
		{"negative clamps to zero", -3, 10000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProgressFor(tt.count)
			if p.Goal != tt.wantGoal {
				t.Errorf("Goal = %d, want %d", p.Goal, tt.wantGoal)
			}
			diff := p.Percent - tt.wantPercent
			if diff < -0.001 || diff > 0.001 {
				t.Errorf("Percent = %f, want %f", p.Percent, tt.wantPercent)
			}
		})
	}
}
