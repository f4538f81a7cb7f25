// Package strength rates generation settings on a coarse weak/medium/strong scale.
package strength

import "github.com/paasword/paasword-go/internal/generator"

// MaxScore is the highest score Score can return.
const MaxScore = 5

// Tier is a qualitative strength bucket.
type Tier int

const (
	TierNone Tier = iota
	TierWeak
	TierMedium
	TierStrong
)

func (t Tier) String() string {
	switch t {
	case TierWeak:
		return "weak"
	case TierMedium:
		return "medium"
	case TierStrong:
		return "strong"
	default:
		return "none"
	}
}

// Bars is the number of lit cells on a three-cell meter.
func (t Tier) Bars() int {
	switch t {
	case TierWeak:
		return 1
	case TierMedium:
		return 2
	case TierStrong:
		return 3
	default:
		return 0
	}
}

// Color returns the hex colour used for lit meter cells.
func (t Tier) Color() string {
	switch t {
	case TierWeak:
		return "#f80000"
	case TierMedium:
		return "#fefe22"
	case TierStrong:
		return "#32cd32"
	default:
		return IdleColor
	}
}

// IdleColor fills unlit meter cells.
const IdleColor = "#9e5826"

// Result pairs a numeric score with its tier.
type Result struct {
	Score int  `json:"score"`
	Tier  Tier `json:"-"`
}

// Score rates s from 0 to MaxScore: up to three points for length
// and up to two for character-class diversity.
func Score(s generator.Settings) int {
	score := 0

	for _, threshold := range []int{8, 12, 16} {
		if s.Length >= threshold {
			score++
		}
	}

	classes := s.ActiveClasses()
	if classes >= 2 {
		score++
	}
	if classes >= 3 {
		score++
	}

	return score
}

// TierFor maps a score to its tier.
func TierFor(score int) Tier {
	switch {
	case score <= 2:
		return TierWeak
	case score <= 4:
		return TierMedium
	default:
		return TierStrong
	}
}

// Evaluate scores s and maps the score to a tier.
func Evaluate(s generator.Settings) Result {
	score := Score(s)
	return Result{Score: score, Tier: TierFor(score)}
}
