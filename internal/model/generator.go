package model

import (
	"github.com/paasword/paasword-go/internal/generator"
	"github.com/paasword/paasword-go/internal/strength"
)

// GenerateRequest represents a password generation request.
// A non-custom Preset overrides every other field.
type GenerateRequest struct {
	Preset string `json:"preset,omitempty"`
	generator.Settings
}

// GenerateResponse represents a successful password generation.
type GenerateResponse struct {
	Password string            `json:"password"`
	Length   int               `json:"length"`
	Preset   string            `json:"preset"`
	Score    int               `json:"score"`
	Tier     string            `json:"tier"`
	Estimate strength.Estimate `json:"estimate"`
}

// StrengthRequest represents a strength scoring request.
type StrengthRequest struct {
	generator.Settings
}

// StrengthResponse represents the rule-based strength of a settings snapshot.
type StrengthResponse struct {
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Tier     string `json:"tier"`
}

// GenerationError is the body returned when a password cannot be produced.
type GenerationError struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Prefix string `json:"prefix,omitempty"`
}
