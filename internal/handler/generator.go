package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paasword/paasword-go/internal/generator"
	"github.com/paasword/paasword-go/internal/model"
	"github.com/paasword/paasword-go/internal/preset"
	"github.com/paasword/paasword-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		switch {
		case errors.Is(err, preset.ErrUnknownPreset):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case isGenerationError(err):
			writeJSON(w, http.StatusUnprocessableEntity, generationError(err))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Strength(req))
}

// HandleListPresets handles GET /api/v1/presets requests.
func (h *GeneratorHandler) HandleListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Presets())
}

// HandleGetPreset handles GET /api/v1/presets/{key} requests.
func (h *GeneratorHandler) HandleGetPreset(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Preset(chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, preset.ErrUnknownPreset) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isGenerationError(err error) bool {
	return errors.Is(err, generator.ErrInvalidConfiguration) ||
		errors.Is(err, generator.ErrNoCharacterClass) ||
		errors.Is(err, generator.ErrLengthExceedsPool)
}

func generationError(err error) model.GenerationError {
	body := model.GenerationError{Error: err.Error(), Kind: generator.Kind(err)}
	var poolErr *generator.UniquePoolError
	if errors.As(err, &poolErr) {
		body.Prefix = poolErr.Prefix
	}
	return body
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched.
// It writes the error response itself and reports whether the caller may continue.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
