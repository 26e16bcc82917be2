package internal

import "testing"

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		deck int
		want GamePhase
	}{
		{deck: 32, want: PhaseEarly},
		{deck: 23, want: PhaseEarly},
		{deck: 22, want: PhaseMid},
		{deck: 12, want: PhaseMid},
		{deck: 11, want: PhaseLate},
		{deck: 8, want: PhaseLate},
		{deck: 7, want: PhaseEndgame},
		{deck: 5, want: PhaseEndgame},
		{deck: 4, want: PhaseCritical},
		{deck: 0, want: PhaseCritical},
	}
	for _, tt := range tests {
		if got := DetectPhase(tt.deck); got != tt.want {
			t.Fatalf("DetectPhase(%d) = %v, want %v", tt.deck, got, tt.want)
		}
	}
}
