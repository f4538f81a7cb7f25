// Package generator builds passwords from character-class settings.
//
// Pool construction is deterministic; character selection uses a
// uniformly distributed, non-cryptographic source and differs on every call.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrStartWithLetter      = fmt.Errorf("%w: start-with-letter requires at least one letter class", ErrInvalidConfiguration)
	ErrNoCharacterClass     = errors.New("no character class selected")
	ErrLengthExceedsPool    = errors.New("length exceeds the number of unique characters")
)

// UniquePoolError is returned when unique mode cannot fill the requested length.
// Prefix holds whatever was committed before the check (the forced first letter, if any).
type UniquePoolError struct {
	Prefix    string
	Requested int
	Available int
}

func (e *UniquePoolError) Error() string {
	return fmt.Sprintf("%s: need %d, have %d", ErrLengthExceedsPool, e.Requested, e.Available)
}

func (e *UniquePoolError) Unwrap() error {
	return ErrLengthExceedsPool
}

// Generator draws characters from an injectable random source.
type Generator struct {
	intN func(n int) int
}

// New returns a Generator reading from src. A nil src uses the
// auto-seeded global source of math/rand/v2.
func New(src rand.Source) *Generator {
	if src == nil {
		return &Generator{intN: rand.IntN}
	}
	return &Generator{intN: rand.New(src).IntN}
}

var defaultGenerator = New(nil)

// Generate produces a password with the package default generator.
func Generate(s Settings) (string, error) {
	return defaultGenerator.Generate(s)
}

// Generate produces a password satisfying every active constraint in s.
// On failure the returned password is always empty.
func (g *Generator) Generate(s Settings) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	pool := BuildPool(s)
	if len(pool) == 0 {
		return "", ErrNoCharacterClass
	}

	var prefix []byte

	// An empty letter pool after filtering skips the forced first letter.
	if letters := BuildLetterPool(s); s.StartWithLetter && len(letters) > 0 {
		first := letters[g.intN(len(letters))]
		prefix = append(prefix, first)
		if s.Unique {
			pool = removeFirst(pool, first)
		}
	}

	// Feasibility is checked before the output buffer is sized from the length.
	remaining := s.Length - len(prefix)
	if s.Unique && remaining > len(pool) {
		return "", &UniquePoolError{
			Prefix:    string(prefix),
			Requested: remaining,
			Available: len(pool),
		}
	}

	password := make([]byte, 0, s.Length)
	password = append(password, prefix...)
	if s.Unique {
		password = append(password, g.sample(pool, remaining)...)
	} else {
		for range remaining {
			password = append(password, pool[g.intN(len(pool))])
		}
	}

	return string(password), nil
}

// sample draws k distinct positions from pool in random order
// using a partial Fisher-Yates shuffle on a copy.
func (g *Generator) sample(pool []byte, k int) []byte {
	buf := make([]byte, len(pool))
	copy(buf, pool)
	for i := 0; i < k; i++ {
		j := i + g.intN(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k]
}

// Kind names the failure class of err for display and transport.
// It returns an empty string for nil and "internal" for unknown errors.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidConfiguration):
		return "invalid_configuration"
	case errors.Is(err, ErrNoCharacterClass):
		return "no_character_class_selected"
	case errors.Is(err, ErrLengthExceedsPool):
		return "length_exceeds_unique_pool_size"
	default:
		return "internal"
	}
}
