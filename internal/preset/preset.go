// Package preset holds the named, fixed bundles of generation settings.
package preset

import (
	"errors"
	"fmt"

	"github.com/paasword/paasword-go/internal/generator"
)

// Key identifies a preset.
type Key string

const (
	FullStrong Key = "fullstrong"
	EasyToRead Key = "easytoread"
	EasyToSay  Key = "easytosay"
	PinCode    Key = "pincode"

	// Custom means "keep whatever the user currently has".
	Custom Key = "custom"
)

var (
	ErrUnknownPreset      = errors.New("unknown preset")
	ErrUnknownDisplayName = errors.New("unknown preset display name")
)

// order is the closed set of keys in display order.
var order = []Key{FullStrong, EasyToRead, EasyToSay, PinCode, Custom}

var fixed = map[Key]generator.Settings{
	FullStrong: {
		Length: 36, Digits: true, Lowercase: true, Uppercase: true, Special: true,
		Unique: true, StartWithLetter: true,
	},
	EasyToRead: {
		Length: 18, Digits: true, Lowercase: true, Uppercase: true,
		Unique: true, ExcludeAmbiguous: true, StartWithLetter: true,
	},
	EasyToSay: {
		Length: 12, Lowercase: true, Uppercase: true,
		ExcludeAmbiguous: true,
	},
	PinCode: {
		Length: 4, Digits: true,
	},
}

var (
	displayNames = map[Key]string{
		FullStrong: "Full protection",
		EasyToRead: "Easy to read",
		EasyToSay:  "Easy to say",
		PinCode:    "PIN code",
		Custom:     "Custom",
	}
	keysByName = invert(displayNames)
)

func invert(m map[Key]string) map[string]Key {
	out := make(map[string]Key, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Keys returns every recognised key in display order.
func Keys() []Key {
	keys := make([]Key, len(order))
	copy(keys, order)
	return keys
}

// Parse validates a raw key.
func Parse(raw string) (Key, error) {
	k := Key(raw)
	if _, ok := displayNames[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, raw)
	}
	return k, nil
}

// Resolve returns the settings of a fixed preset. For Custom it returns
// apply=false, telling the caller to leave its current settings untouched.
func Resolve(key Key) (settings generator.Settings, apply bool, err error) {
	if key == Custom {
		return generator.Settings{}, false, nil
	}
	s, ok := fixed[key]
	if !ok {
		return generator.Settings{}, false, fmt.Errorf("%w: %q", ErrUnknownPreset, key)
	}
	return s, true, nil
}

// Match returns the fixed preset whose settings equal s, or Custom.
func Match(s generator.Settings) Key {
	for _, k := range order {
		if fs, ok := fixed[k]; ok && fs == s {
			return k
		}
	}
	return Custom
}

// DisplayName returns the user-facing label of key.
func DisplayName(key Key) string {
	if name, ok := displayNames[key]; ok {
		return name
	}
	return string(key)
}

// KeyForDisplayName maps a user-facing label back to its key.
func KeyForDisplayName(name string) (Key, error) {
	k, ok := keysByName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDisplayName, name)
	}
	return k, nil
}

// Next returns the key after key in display order, wrapping around.
// A negative step moves backwards.
func Next(key Key, step int) Key {
	idx := 0
	for i, k := range order {
		if k == key {
			idx = i
			break
		}
	}
	n := len(order)
	return order[((idx+step)%n+n)%n]
}
