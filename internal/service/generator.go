package service

import (
	"fmt"
	"log/slog"

	"github.com/paasword/paasword-go/internal/generator"
	"github.com/paasword/paasword-go/internal/model"
	"github.com/paasword/paasword-go/internal/preset"
	"github.com/paasword/paasword-go/internal/strength"
)

const (
	// DefaultLength is used when a request leaves the length unset.
	DefaultLength = 12
	// MaxLength caps the length a single API request may ask for.
	MaxLength = 128
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *generator.Generator
}

// NewGeneratorService creates a new GeneratorService. A nil generator uses the global source.
func NewGeneratorService(gen *generator.Generator) *GeneratorService {
	if gen == nil {
		gen = generator.New(nil)
	}
	return &GeneratorService{gen: gen}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	settings, key, err := s.settingsFor(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := s.gen.Generate(settings)
	if err != nil {
		slog.Debug("generation rejected", "preset", key, "kind", generator.Kind(err), "error", err)
		return model.GenerateResponse{}, err
	}

	rating := strength.Evaluate(settings)
	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Preset:   string(key),
		Score:    rating.Score,
		Tier:     rating.Tier.String(),
		Estimate: strength.EstimatePassword(password),
	}, nil
}

// Strength scores a settings snapshot without generating anything.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	rating := strength.Evaluate(req.Settings)
	return model.StrengthResponse{
		Score:    rating.Score,
		MaxScore: strength.MaxScore,
		Tier:     rating.Tier.String(),
	}
}

// Presets lists every preset in display order.
func (s *GeneratorService) Presets() []model.PresetResponse {
	keys := preset.Keys()
	result := make([]model.PresetResponse, 0, len(keys))
	for _, k := range keys {
		p, err := s.Preset(string(k))
		if err != nil {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Preset describes a single preset.
func (s *GeneratorService) Preset(raw string) (model.PresetResponse, error) {
	key, err := preset.Parse(raw)
	if err != nil {
		return model.PresetResponse{}, err
	}

	settings, apply, err := preset.Resolve(key)
	if err != nil {
		return model.PresetResponse{}, err
	}

	resp := model.PresetResponse{Key: string(key), Name: preset.DisplayName(key)}
	if apply {
		resp.Settings = &settings
	}
	return resp, nil
}

// settingsFor resolves the effective settings of a request.
func (s *GeneratorService) settingsFor(req model.GenerateRequest) (generator.Settings, preset.Key, error) {
	key := preset.Custom
	if req.Preset != "" {
		k, err := preset.Parse(req.Preset)
		if err != nil {
			return generator.Settings{}, "", err
		}
		key = k
	}

	settings, apply, err := preset.Resolve(key)
	if err != nil {
		return generator.Settings{}, "", err
	}
	if !apply {
		settings = req.Settings
		if settings.Length == 0 {
			settings.Length = DefaultLength
		}
		key = preset.Match(settings)
	}
	if settings.Length > MaxLength {
		return generator.Settings{}, "", fmt.Errorf("%w: length must be at most %d, got %d",
			generator.ErrInvalidConfiguration, MaxLength, settings.Length)
	}

	return settings, key, nil
}
