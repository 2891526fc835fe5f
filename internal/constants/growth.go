package constants

const (
	// GrowthLevelDivisor is the number of completions per growth level.
	// The level shown in the sidebar is total completions / divisor + 1.
	GrowthLevelDivisor = 5

	// ProgressWindowDays is the size of the trailing window used for a
	// habit's progress percentage. It is also the fixed denominator, so a
	// partial window still reads as partial progress.
	ProgressWindowDays = 7

	// NudgeWindow is the number of most recent log records examined by the
	// drop-off policy, and NudgeMissThreshold the number of incomplete
	// records among them that makes a habit eligible for a nudge.
	NudgeWindow        = 5
	NudgeMissThreshold = 3
)

// Plant stage thresholds, in percent. A stage is reached when progress is
// strictly greater than its threshold, so 80% is still budding and 81% blooms.
const (
	StageBloomThreshold    = 80
	StageBuddingThreshold  = 50
	StageSproutThreshold   = 25
	StageSeedlingThreshold = 0
)
