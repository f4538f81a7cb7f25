package strength

import "github.com/nbutton23/zxcvbn-go"

// maxEstimateLen caps the input passed to zxcvbn, whose running time grows
// quickly with length.
const maxEstimateLen = 50

// Estimate is an advisory, pattern-based guessability rating of a concrete password.
// It complements the rule-based tier and never replaces it.
type Estimate struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy_bits"`
	CrackTime string  `json:"crack_time"`
}

// EstimatePassword runs zxcvbn over the first characters of password.
func EstimatePassword(password string) Estimate {
	if password == "" {
		return Estimate{}
	}
	if len(password) > maxEstimateLen {
		password = password[:maxEstimateLen]
	}

	m := zxcvbn.PasswordStrength(password, nil)
	return Estimate{
		Score:     m.Score,
		Entropy:   m.Entropy,
		CrackTime: m.CrackTimeDisplay,
	}
}
