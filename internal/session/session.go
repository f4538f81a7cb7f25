// Package session keeps the collaborator-side state of an interactive front-end:
// the current settings snapshot, the selected preset and the last result.
//
// A Session is single-threaded. It is owned by one UI loop and takes no locks.
package session

import (
	"log/slog"

	"github.com/paasword/paasword-go/internal/generator"
	"github.com/paasword/paasword-go/internal/preset"
	"github.com/paasword/paasword-go/internal/strength"
)

// Option is a single boolean toggle of the settings.
type Option int

const (
	Lowercase Option = iota
	Uppercase
	Digits
	Special
	Unique
	ExcludeAmbiguous
	StartWithLetter
)

// State is an immutable snapshot of a Session.
type State struct {
	Preset   preset.Key
	Settings generator.Settings
	Password string
	Err      error
	Strength strength.Result
}

// Session owns the current settings and reacts to edits the way the desktop UI does:
// applying a preset writes the whole snapshot at once, manual edits switch the
// preset to custom, and every effective change regenerates the password.
type Session struct {
	gen       *generator.Generator
	preset    preset.Key
	settings  generator.Settings
	password  string
	err       error
	result    strength.Result
	applying  bool
	listeners []func(State)
}

// New creates a Session and applies the initial preset.
// An empty or custom initial preset falls back to fullstrong.
func New(initial preset.Key, gen *generator.Generator) (*Session, error) {
	if gen == nil {
		gen = generator.New(nil)
	}
	if initial == "" || initial == preset.Custom {
		initial = preset.FullStrong
	}

	s := &Session{gen: gen, preset: preset.Custom}
	if err := s.ApplyPreset(initial); err != nil {
		return nil, err
	}
	return s, nil
}

// OnChange registers fn to receive every new State.
func (s *Session) OnChange(fn func(State)) {
	s.listeners = append(s.listeners, fn)
}

// State returns the current snapshot.
func (s *Session) State() State {
	return State{
		Preset:   s.preset,
		Settings: s.settings,
		Password: s.password,
		Err:      s.err,
		Strength: s.result,
	}
}

// ApplyPreset writes the preset's settings as one atomic snapshot and regenerates once.
// Selecting custom only changes the label. Calls made while a snapshot is being
// applied are ignored.
func (s *Session) ApplyPreset(key preset.Key) error {
	if s.applying {
		return nil
	}

	settings, apply, err := preset.Resolve(key)
	if err != nil {
		return err
	}

	s.applying = true
	s.preset = key
	if apply {
		s.commit(settings)
	}
	s.applying = false

	if !apply {
		s.notify()
		return nil
	}
	s.Regenerate()
	return nil
}

// Apply replaces the whole settings snapshot and regenerates once.
// The preset label follows the snapshot: a fixed preset if it matches one, custom otherwise.
func (s *Session) Apply(settings generator.Settings) {
	if s.applying {
		return
	}

	s.applying = true
	s.preset = preset.Match(settings)
	s.commit(settings)
	s.applying = false

	s.Regenerate()
}

// Toggle flips one option.
func (s *Session) Toggle(opt Option) {
	next := s.settings
	switch opt {
	case Lowercase:
		next.Lowercase = !next.Lowercase
	case Uppercase:
		next.Uppercase = !next.Uppercase
	case Digits:
		next.Digits = !next.Digits
	case Special:
		next.Special = !next.Special
	case Unique:
		next.Unique = !next.Unique
	case ExcludeAmbiguous:
		next.ExcludeAmbiguous = !next.ExcludeAmbiguous
	case StartWithLetter:
		next.StartWithLetter = !next.StartWithLetter
	default:
		return
	}
	s.commit(next)
}

// SetLength changes the target length, clamped to the slider range.
func (s *Session) SetLength(n int) {
	n = generator.ClampLength(n)
	if n == s.settings.Length {
		return
	}
	s.commit(s.settings.WithLength(n))
}

// Regenerate runs the generator and scorer on the current snapshot.
// On failure the password is cleared and the strength resets.
func (s *Session) Regenerate() State {
	password, err := s.gen.Generate(s.settings)
	if err != nil {
		slog.Debug("generation failed", "kind", generator.Kind(err), "error", err)
		s.password = ""
		s.err = err
		s.result = strength.Result{}
	} else {
		s.password = password
		s.err = nil
		s.result = strength.Evaluate(s.settings)
	}

	s.notify()
	return s.State()
}

// commit stores a new snapshot. Outside of an atomic apply it behaves like a
// manual edit: the preset switches to custom and the password is regenerated.
func (s *Session) commit(next generator.Settings) {
	s.settings = next
	if s.applying {
		return
	}

	s.preset = preset.Custom
	s.Regenerate()
}

func (s *Session) notify() {
	st := s.State()
	for _, fn := range s.listeners {
		fn(st)
	}
}
