package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/slidesmith/slidesmith/pkg/deck"

	"github.com/google/uuid"
)

const mimePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	customer := valueCustomer(r)

	if customer == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing customer name"))
		return
	}

	accent, err := deck.ParseColor(valueAccent(r))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	generator, err := h.Generator(valueGenerator(r), valueToken(r))

	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	var logo []byte

	if file, err := readFile(r); err == nil {
		logo = file.Content
	}

	record, err := generator.Generate(r.Context(), customer)

	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	now := time.Now()

	data, err := deck.Render(deck.Slide{
		Customer: customer,
		Accent:   accent,

		Logo: logo,
		Date: now,
	}, record)

	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	id := uuid.NewString()

	slog.InfoContext(r.Context(), "deck generated",
		"id", id,
		"customer", customer,
		"generator", valueGenerator(r),
		"size", len(data),
	)

	w.Header().Set("Content-Type", mimePresentation)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", deck.Filename(customer, now)))
	w.Header().Set("X-Generation-Id", id)

	w.Write(data)
}
