package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cfg "github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/urfave/cli/v3"
)

type stubFactory struct {
	name string
}

func (f *stubFactory) CreateCommand(t *i18n.Translations, cfg *cfg.Config) *cli.Command {
	return &cli.Command{Name: f.name}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	trans, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)
	return NewRegistry(&cfg.Config{}, trans)
}

func TestRegistry_Register(t *testing.T) {
	t.Run("registers a factory", func(t *testing.T) {
		registry := newTestRegistry(t)
		assert.NoError(t, registry.Register("new", &stubFactory{name: "new"}))
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		registry := newTestRegistry(t)
		require.NoError(t, registry.Register("new", &stubFactory{name: "new"}))
		assert.Error(t, registry.Register("new", &stubFactory{name: "new"}))
	})
}

func TestRegistry_CreateCommands(t *testing.T) {
	registry := newTestRegistry(t)

	names := []string{"new", "update", "list", "config"}
	for _, name := range names {
		require.NoError(t, registry.Register(name, &stubFactory{name: name}))
	}

	commands := registry.CreateCommands()
	require.Len(t, commands, len(names))

	// Registration order is the presentation order.
	for i, name := range names {
		assert.Equal(t, name, commands[i].Name)
	}
}
