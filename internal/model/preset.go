package model

import "github.com/paasword/paasword-go/internal/generator"

// PresetResponse describes a preset. Settings is nil for custom.
type PresetResponse struct {
	Key      string              `json:"key"`
	Name     string              `json:"name"`
	Settings *generator.Settings `json:"settings"`
}
