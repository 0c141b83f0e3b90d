package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()
	mgr := NewManager()

	enabled := &stubFeature{name: "inventory", enabled: true}
	disabled := &stubFeature{name: "integrity", enabled: false}
	mgr.Register(enabled)
	mgr.Register(disabled)

	require.NoError(t, mgr.LoadAll(app))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
	assert.Len(t, mgr.Features(), 2)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	mgr := NewManager()
	failing := &stubFeature{name: "bom", enabled: true, err: errors.New("boom")}
	after := &stubFeature{name: "team", enabled: true}
	mgr.Register(failing)
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load feature bom")
	assert.False(t, after.loaded)
}
