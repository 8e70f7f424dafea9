package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/slidesmith/slidesmith/pkg/provider"
)

func valueCustomer(r *http.Request) string {
	return strings.TrimSpace(r.FormValue("customer"))
}

func valueAccent(r *http.Request) string {
	if val := r.FormValue("accent"); val != "" {
		return val
	}

	return "#08574A"
}

func valueGenerator(r *http.Request) string {
	if val := r.FormValue("generator"); val != "" {
		return val
	}

	return "preset"
}

// valueToken reads the per-request credential. It is treated as a secret and
// must never end up in logs or responses.
func valueToken(r *http.Request) string {
	return strings.TrimSpace(r.FormValue("token"))
}

func readFile(r *http.Request) (*provider.File, error) {
	file, header, err := r.FormFile("file")

	if err != nil {
		return nil, err
	}

	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		return nil, err
	}

	return &provider.File{
		Name: header.Filename,

		Content:     data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
