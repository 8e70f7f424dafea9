package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slidesmith/slidesmith/config"
	"github.com/slidesmith/slidesmith/pkg/deck/pptx"
	"github.com/slidesmith/slidesmith/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Parse("")
	require.NoError(t, err)

	handler, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	handler.Attach(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

// newBackedServer routes the openai generator at a stub completion backend.
func newBackedServer(t *testing.T, backend string) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")

	data := "generators:\n  openai:\n    url: " + backend + "\n    token: sk-test\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	handler, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	handler.Attach(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func completionBackend(t *testing.T, content string) string {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",

			"choices": []any{
				map[string]any{
					"index":         0,
					"finish_reason": "stop",

					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))

	t.Cleanup(backend.Close)

	return backend.URL
}

func postGenerate(t *testing.T, server *httptest.Server, form url.Values) *http.Response {
	t.Helper()

	resp, err := http.Post(server.URL+"/generate", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestGenerate(t *testing.T) {
	server := newServer(t)

	resp := postGenerate(t, server, url.Values{
		"customer": {"Rugs USA"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.presentationml.presentation", resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "Rugs_USA_Customer_Updates_")
	require.NotEmpty(t, resp.Header.Get("X-Generation-Id"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	doc, err := pptx.Read(data)
	require.NoError(t, err)
	require.Len(t, doc.Slides, 1)

	var text strings.Builder

	for _, shape := range doc.Slides[0].Shapes {
		text.WriteString(shape.Text())
		text.WriteString("\n")
	}

	require.Contains(t, text.String(), "Customer Updates")
	require.Contains(t, text.String(), "Rugs USA helps customers turn houses into homes")
}

func TestGenerateCustomAccent(t *testing.T) {
	server := newServer(t)

	resp := postGenerate(t, server, url.Values{
		"customer": {"Acme Co"},
		"accent":   {"#FF0000"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	doc, err := pptx.Read(data)
	require.NoError(t, err)

	red := pptx.Color{R: 255}

	var found bool

	for _, shape := range doc.Slides[0].Shapes {
		if shape.Fill != nil && *shape.Fill == red {
			found = true
		}
	}

	require.True(t, found, "accent bar not recolored")
}

func TestGenerateMissingCustomer(t *testing.T) {
	server := newServer(t)

	for _, customer := range []string{"", "   "} {
		resp := postGenerate(t, server, url.Values{
			"customer": {customer},
		})

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGenerateInvalidAccent(t *testing.T) {
	server := newServer(t)

	resp := postGenerate(t, server, url.Values{
		"customer": {"Acme Co"},
		"accent":   {"red"},
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateUnknownGenerator(t *testing.T) {
	server := newServer(t)

	resp := postGenerate(t, server, url.Values{
		"customer":  {"Acme Co"},
		"generator": {"llama"},
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateMissingCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	server := newServer(t)

	for _, generator := range []string{"openai", "anthropic"} {
		resp := postGenerate(t, server, url.Values{
			"customer":  {"Acme Co"},
			"generator": {generator},
		})

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "generator %s", generator)
	}
}

func TestGenerateUnparseableContent(t *testing.T) {
	server := newBackedServer(t, completionBackend(t, "I cannot help with that."))

	resp := postGenerate(t, server, url.Values{
		"customer":  {"Acme Co"},
		"generator": {"openai"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGenerateIncompleteContent(t *testing.T) {
	partial := `{"corporate_vision": "v", "business_strategies": ["a"], "supply_chain_contribution": ["b"], "risks_of_supply_chain_failure": ["c"]}`

	server := newBackedServer(t, completionBackend(t, partial))

	resp := postGenerate(t, server, url.Values{
		"customer":  {"Acme Co"},
		"generator": {"openai"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGenerateTransportFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid request", http.StatusBadRequest)
	}))

	t.Cleanup(backend.Close)

	server := newBackedServer(t, backend.URL)

	resp := postGenerate(t, server, url.Values{
		"customer":  {"Acme Co"},
		"generator": {"openai"},
	})

	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestPresets(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/presets")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var result struct {
		Customers []string `json:"customers"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Contains(t, result.Customers, "Rugs USA")
}
