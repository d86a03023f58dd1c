package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `{"terms": [{"id": "t1", "name": "DNS", "category": "ネットワーク", "subcategory": "プロトコル"}]}`

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.json")
	require.NoError(t, os.WriteFile(path, []byte(minimalDoc), 0o644))

	p := NewProvider(ProviderConfig{File: path})
	terms, err := p.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "DNS", terms[0].Name)
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(minimalDoc))
	}))
	defer srv.Close()

	p := NewProvider(ProviderConfig{URL: srv.URL})
	terms, err := p.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, terms, 1)
}

func TestLoadHTTPErrorSurfacesLoadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewProvider(ProviderConfig{URL: srv.URL})
	_, err := p.Load(context.Background())
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, srv.URL, loadErr.Source)
}

func TestLoadInvalidDocumentSurfacesLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"terms": "nope"}`), 0o644))

	p := NewProvider(ProviderConfig{File: path})
	_, err := p.Load(context.Background())

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Source)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	p := NewProvider(ProviderConfig{})
	terms, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, terms)
}

func TestFilePreferredOverURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote URL must not be fetched when a file is configured")
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "terms.json")
	require.NoError(t, os.WriteFile(path, []byte(minimalDoc), 0o644))

	p := NewProvider(ProviderConfig{File: path, URL: srv.URL})
	_, err := p.Load(context.Background())
	require.NoError(t, err)
}
