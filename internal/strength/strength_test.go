package strength

import (
	"testing"

	"github.com/paasword/paasword-go/internal/generator"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		settings generator.Settings
		want     int
		tier     Tier
	}{
		{
			name:     "short single class",
			settings: generator.Settings{Length: 4, Digits: true},
			want:     0,
			tier:     TierWeak,
		},
		{
			name:     "eight lowercase",
			settings: generator.Settings{Length: 8, Lowercase: true},
			want:     1,
			tier:     TierWeak,
		},
		{
			name:     "twelve letters",
			settings: generator.Settings{Length: 12, Lowercase: true, Uppercase: true},
			want:     3,
			tier:     TierMedium,
		},
		{
			name:     "eighteen without special",
			settings: generator.Settings{Length: 18, Lowercase: true, Uppercase: true, Digits: true},
			want:     5,
			tier:     TierStrong,
		},
		{
			name:     "fifteen all classes",
			settings: generator.Settings{Length: 15, Lowercase: true, Uppercase: true, Digits: true, Special: true},
			want:     4,
			tier:     TierMedium,
		},
		{
			name:     "no classes",
			settings: generator.Settings{Length: 36},
			want:     3,
			tier:     TierMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.settings)
			if got.Score != tt.want {
				t.Errorf("Score() = %d, want %d", got.Score, tt.want)
			}
			if got.Tier != tt.tier {
				t.Errorf("Tier = %v, want %v", got.Tier, tt.tier)
			}
		})
	}
}

func TestScoreMonotonicInLength(t *testing.T) {
	flags := []generator.Settings{
		{Digits: true},
		{Lowercase: true, Uppercase: true},
		{Lowercase: true, Uppercase: true, Digits: true, Special: true},
	}

	for _, s := range flags {
		prev := -1
		for n := 1; n <= 64; n++ {
			got := Score(s.WithLength(n))
			if got < prev {
				t.Fatalf("Score decreased from %d to %d at length %d for %+v", prev, got, n, s)
			}
			if got > MaxScore {
				t.Fatalf("Score() = %d exceeds MaxScore", got)
			}
			prev = got
		}
	}
}

func TestScoreMonotonicInClasses(t *testing.T) {
	for _, n := range []int{4, 8, 12, 16, 36} {
		steps := []generator.Settings{
			{Length: n},
			{Length: n, Lowercase: true},
			{Length: n, Lowercase: true, Uppercase: true},
			{Length: n, Lowercase: true, Uppercase: true, Digits: true},
			{Length: n, Lowercase: true, Uppercase: true, Digits: true, Special: true},
		}
		prev := -1
		for _, s := range steps {
			got := Score(s)
			if got < prev {
				t.Fatalf("Score decreased from %d to %d for %+v", prev, got, s)
			}
			prev = got
		}
	}
}

func TestTierFor(t *testing.T) {
	want := map[int]Tier{0: TierWeak, 1: TierWeak, 2: TierWeak, 3: TierMedium, 4: TierMedium, 5: TierStrong}
	for score, tier := range want {
		if got := TierFor(score); got != tier {
			t.Errorf("TierFor(%d) = %v, want %v", score, got, tier)
		}
	}
}

func TestTierPresentation(t *testing.T) {
	tests := []struct {
		tier  Tier
		name  string
		bars  int
		color string
	}{
		{TierNone, "none", 0, IdleColor},
		{TierWeak, "weak", 1, "#f80000"},
		{TierMedium, "medium", 2, "#fefe22"},
		{TierStrong, "strong", 3, "#32cd32"},
	}

	for _, tt := range tests {
		if tt.tier.String() != tt.name || tt.tier.Bars() != tt.bars || tt.tier.Color() != tt.color {
			t.Errorf("tier %d = (%s, %d, %s), want (%s, %d, %s)",
				tt.tier, tt.tier, tt.tier.Bars(), tt.tier.Color(), tt.name, tt.bars, tt.color)
		}
	}
}

func TestEstimatePassword(t *testing.T) {
	if got := EstimatePassword(""); got != (Estimate{}) {
		t.Errorf("EstimatePassword(\"\") = %+v, want zero value", got)
	}

	weak := EstimatePassword("password")
	strong := EstimatePassword("kV7#qT!x9Lm$2pRz@wE4")
	if weak.Score >= strong.Score {
		t.Errorf("weak score %d should be below strong score %d", weak.Score, strong.Score)
	}
	if strong.Entropy <= weak.Entropy {
		t.Errorf("weak entropy %.1f should be below strong entropy %.1f", weak.Entropy, strong.Entropy)
	}
}
