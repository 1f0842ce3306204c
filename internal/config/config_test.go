package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/ftype/internal/app"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, app.DebugBuild, cfg.Debug.StrictPlaceholders)
	assert.True(t, cfg.History.Enabled)
	assert.True(t, strings.HasSuffix(cfg.History.Path, "history.jsonl"))
	assert.Equal(t, 4, cfg.Resolve.Concurrency)
	assert.Empty(t, cfg.Associations)
}

func TestLoadAssociationsFromYAML(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
history:
  enabled: false
associations:
  - extension: .txt
    command: '"notepad.exe" %1'
  - extension: "*"
    command: 'openwith.exe %1'
`)))

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.False(t, cfg.History.Enabled)
	require.Len(t, cfg.Associations, 2)
	assert.Equal(t, ".txt", cfg.Associations[0].Extension)

	table := cfg.AssociationTable()
	tmpl, err := app.QueryTemplate(table, ".TXT")
	require.NoError(t, err)
	assert.Equal(t, `"notepad.exe" %1`, tmpl)

	tmpl, err = app.QueryTemplate(table, ".unknown")
	require.NoError(t, err)
	assert.Equal(t, "openwith.exe %1", tmpl)
}
