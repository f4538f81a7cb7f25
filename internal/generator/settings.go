package generator

import "fmt"

const (
	// MinUILength and MaxUILength bound the length slider of the front-ends.
	// Generate itself accepts any length >= 1.
	MinUILength = 4
	MaxUILength = 36
)

// Settings is an immutable snapshot of the generation options.
// A new value is built on every change; nothing mutates a Settings in place.
type Settings struct {
	Length           int  `json:"length" yaml:"length"`
	Digits           bool `json:"digits" yaml:"digits"`
	Lowercase        bool `json:"lowercase" yaml:"lowercase"`
	Uppercase        bool `json:"uppercase" yaml:"uppercase"`
	Special          bool `json:"special" yaml:"special"`
	Unique           bool `json:"unique" yaml:"unique"`
	ExcludeAmbiguous bool `json:"exclude_ambiguous" yaml:"exclude_ambiguous"`
	StartWithLetter  bool `json:"start_with_letter" yaml:"start_with_letter"`
}

// Validate reports structural contradictions in the settings.
// Every returned error wraps ErrInvalidConfiguration.
func (s Settings) Validate() error {
	if s.StartWithLetter && !s.HasLetters() {
		return ErrStartWithLetter
	}
	if s.Length < 1 {
		return fmt.Errorf("%w: length must be at least 1, got %d", ErrInvalidConfiguration, s.Length)
	}
	return nil
}

// HasLetters reports whether at least one letter class is selected.
func (s Settings) HasLetters() bool {
	return s.Lowercase || s.Uppercase
}

// ActiveClasses counts the selected character classes.
func (s Settings) ActiveClasses() int {
	n := 0
	for _, on := range []bool{s.Lowercase, s.Uppercase, s.Digits, s.Special} {
		if on {
			n++
		}
	}
	return n
}

// WithLength returns a copy of s with the given length.
func (s Settings) WithLength(n int) Settings {
	s.Length = n
	return s
}

// ClampLength returns n limited to the front-end slider range.
func ClampLength(n int) int {
	return max(MinUILength, min(n, MaxUILength))
}
