package pipeline

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/promptloom/promptloom/internal/errors"
)

func TestEditRoundTrip(t *testing.T) {
	edited := []byte{0x89, 'P', 'N', 'G'}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/images/edits", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req editWireRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "make it a passport photo", req.Prompt)
		require.Equal(t, "edit-model", req.Model)

		src, err := base64.StdEncoding.DecodeString(req.Image)
		require.NoError(t, err)
		require.Equal(t, []byte("source-image"), src)

		resp := map[string]any{
			"created": 1700000000,
			"data":    []map[string]string{{"b64_json": base64.StdEncoding.EncodeToString(edited)}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "edit-model")
	resp, err := client.Edit(context.Background(), &EditRequest{
		Prompt: "make it a passport photo",
		Image:  []byte("source-image"),
	})
	require.NoError(t, err)
	require.Equal(t, edited, resp.Image)
	require.Equal(t, int64(1700000000), resp.Created)
}

func TestEditRejectsMissingFields(t *testing.T) {
	client := NewClient("http://localhost:1", "", "")

	_, err := client.Edit(context.Background(), &EditRequest{Image: []byte("x")})
	require.EqualError(t, err, "prompt is required")

	_, err = client.Edit(context.Background(), &EditRequest{Prompt: "p"})
	require.EqualError(t, err, "image is required")
}

func TestEditSurfacesEndpointError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")
	_, err := client.Edit(context.Background(), &EditRequest{Prompt: "p", Image: []byte("x")})
	require.ErrorContains(t, err, "503")
	require.ErrorContains(t, err, "model overloaded")
}

func TestEditEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"created":1,"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")
	_, err := client.Edit(context.Background(), &EditRequest{Prompt: "p", Image: []byte("x")})
	require.ErrorContains(t, err, "no image")
}

func TestManagerRequiresEndpoint(t *testing.T) {
	m := NewManager(Settings{})
	_, err := m.Acquire(context.Background())
	require.Error(t, err)
	require.Equal(t, apperrors.CodeDependencyMissing, apperrors.CodeOf(err))
}

func TestManagerCachesClient(t *testing.T) {
	m := NewManager(Settings{Endpoint: "http://localhost:9"})

	first, err := m.Acquire(context.Background())
	require.NoError(t, err)
	second, err := m.Acquire(context.Background())
	require.NoError(t, err)
	require.Same(t, first, second)

	require.True(t, m.Release())
	require.False(t, m.Release())

	third, err := m.Acquire(context.Background())
	require.NoError(t, err)
	require.NotSame(t, first, third)
}
