package stats

import "testing"

func TestGrowthStage_ThresholdBoundaries(t *testing.T) {
	cases := []struct {
		progress float64
		stage    Stage
	}{
		{0, StageBarren},
		{0.1, StageSeedling},
		{25, StageSeedling},
		{25.1, StageSprout},
		{50, StageSprout},
		{50.1, StageBudding},
		{80, StageBudding}, // exactly 80 is still budding
		{81, StageBloom},
		{100, StageBloom},
	}

	for _, tc := range cases {
		if got := GrowthStage(tc.progress); got != tc.stage {
			t.Errorf("GrowthStage(%g) = %v, want %v", tc.progress, got, tc.stage)
		}
	}
}

func TestGrowthStage_Monotonic(t *testing.T) {
	prev := StageBarren
	for p := 0.0; p <= 100; p += 0.5 {
		stage := GrowthStage(p)
		if stage < prev {
			t.Fatalf("stage decreased from %v to %v at progress %g", prev, stage, p)
		}
		prev = stage
	}
}
