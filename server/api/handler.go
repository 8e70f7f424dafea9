package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/slidesmith/slidesmith/config"
	"github.com/slidesmith/slidesmith/pkg/content"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/generate", h.handleGenerate)

	r.Get("/presets", h.handlePresets)
}

func (h *Handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	result := struct {
		Customers []string `json:"customers"`
	}{
		Customers: h.PresetNames(),
	}

	writeJson(w, result)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, content.ErrMissingCredential):
		return http.StatusUnauthorized

	case errors.Is(err, content.ErrUnknownGenerator):
		return http.StatusBadRequest

	case errors.Is(err, content.ErrUnparseableContent), errors.Is(err, content.ErrIncompleteContent):
		return http.StatusUnprocessableEntity

	case errors.Is(err, content.ErrTransport):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
