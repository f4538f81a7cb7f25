package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Lowercase        key.Binding
	Uppercase        key.Binding
	Digits           key.Binding
	Special          key.Binding
	Unique           key.Binding
	ExcludeAmbiguous key.Binding
	StartWithLetter  key.Binding
	Shorter          key.Binding
	Longer           key.Binding
	NextPreset       key.Binding
	PrevPreset       key.Binding
	Regenerate       key.Binding
	Copy             key.Binding
	Help             key.Binding
	Quit             key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Lowercase:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "a-z")),
		Uppercase:        key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "A-Z")),
		Digits:           key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "0-9")),
		Special:          key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "!#$...")),
		Unique:           key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "no repeats")),
		ExcludeAmbiguous: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "no look-alikes")),
		StartWithLetter:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start with letter")),
		Shorter:          key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "shorter")),
		Longer:           key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→", "longer")),
		NextPreset:       key.NewBinding(key.WithKeys("p", "tab"), key.WithHelp("p", "next preset")),
		PrevPreset:       key.NewBinding(key.WithKeys("P", "shift+tab"), key.WithHelp("P", "previous preset")),
		Regenerate:       key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "regenerate")),
		Copy:             key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
		Help:             key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:             key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Copy, k.NextPreset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Lowercase, k.Uppercase, k.Digits, k.Special},
		{k.Unique, k.ExcludeAmbiguous, k.StartWithLetter},
		{k.Shorter, k.Longer, k.NextPreset, k.PrevPreset},
		{k.Regenerate, k.Copy, k.Help, k.Quit},
	}
}
