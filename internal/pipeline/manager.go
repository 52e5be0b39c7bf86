package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// Settings configures the edit endpoint connection.
type Settings struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// Manager hands out a cached Client so the connection setup happens once
// per process. Acquire without a configured endpoint fails fast instead of
// timing out on a dial.
type Manager struct {
	mu       sync.Mutex
	settings Settings
	client   *Client
}

// NewManager returns a manager for the given settings.
func NewManager(settings Settings) *Manager {
	return &Manager{settings: settings}
}

// Acquire returns the shared client, constructing it on first use.
func (m *Manager) Acquire(ctx context.Context) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client, nil
	}
	if strings.TrimSpace(m.settings.Endpoint) == "" {
		return nil, apperrors.NewDependencyUnavailableError(
			"image edit endpoint is not configured, set pipeline.endpoint")
	}

	client := NewClient(m.settings.Endpoint, m.settings.APIKey, m.settings.Model)
	client.Timeout = m.settings.Timeout
	m.client = client
	return client, nil
}

// Release drops the cached client. The next Acquire rebuilds it.
func (m *Manager) Release() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	released := m.client != nil
	m.client = nil
	return released
}
