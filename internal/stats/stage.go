package stats

import "github.com/kavocado/bloom/internal/constants"

// Stage is the visual growth stage of a habit's plant.
type Stage int

const (
	StageBarren Stage = iota
	StageSeedling
	StageSprout
	StageBudding
	StageBloom
)

func (s Stage) String() string {
	switch s {
	case StageBloom:
		return "bloom"
	case StageBudding:
		return "budding"
	case StageSprout:
		return "sprout"
	case StageSeedling:
		return "seedling"
	default:
		return "barren"
	}
}

// Glyph returns the single-rune garden representation of the stage.
func (s Stage) Glyph() string {
	switch s {
	case StageBloom:
		return "🌸"
	case StageBudding:
		return "🌷"
	case StageSprout:
		return "🌿"
	case StageSeedling:
		return "🌱"
	default:
		return "·"
	}
}

// GrowthStage maps a progress percentage to a plant stage. Thresholds are
// exclusive: exactly 80% is still budding.
func GrowthStage(progress float64) Stage {
	switch {
	case progress > constants.StageBloomThreshold:
		return StageBloom
	case progress > constants.StageBuddingThreshold:
		return StageBudding
	case progress > constants.StageSproutThreshold:
		return StageSprout
	case progress > constants.StageSeedlingThreshold:
		return StageSeedling
	default:
		return StageBarren
	}
}
