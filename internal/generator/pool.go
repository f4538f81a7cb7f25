package generator

import "strings"

const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SpecialChars   = "!#$%&()*+,-./|:;<=>?@[]^_{}~"

	// AmbiguousChars are glyphs easily confused with one another.
	AmbiguousChars = "lIi10oO8,.;:"
)

// BuildPool assembles the main character pool in the order
// lowercase, uppercase, digits, special, dropping ambiguous glyphs if requested.
func BuildPool(s Settings) []byte {
	var sb strings.Builder
	if s.Lowercase {
		sb.WriteString(LowercaseChars)
	}
	if s.Uppercase {
		sb.WriteString(UppercaseChars)
	}
	if s.Digits {
		sb.WriteString(DigitChars)
	}
	if s.Special {
		sb.WriteString(SpecialChars)
	}
	return filterPool(sb.String(), s.ExcludeAmbiguous)
}

// BuildLetterPool assembles the pool used for a forced leading letter.
func BuildLetterPool(s Settings) []byte {
	var sb strings.Builder
	if s.Lowercase {
		sb.WriteString(LowercaseChars)
	}
	if s.Uppercase {
		sb.WriteString(UppercaseChars)
	}
	return filterPool(sb.String(), s.ExcludeAmbiguous)
}

// IsAmbiguous reports whether c belongs to the ambiguous glyph set.
func IsAmbiguous(c byte) bool {
	return strings.IndexByte(AmbiguousChars, c) >= 0
}

func filterPool(chars string, excludeAmbiguous bool) []byte {
	pool := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		if excludeAmbiguous && IsAmbiguous(chars[i]) {
			continue
		}
		pool = append(pool, chars[i])
	}
	return pool
}

// removeFirst drops the first occurrence of c from pool.
func removeFirst(pool []byte, c byte) []byte {
	for i, p := range pool {
		if p == c {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}
