package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/recordsync/internal/mapping"
)

func validConfig() *Config {
	return &Config{
		DBPath:       "records.db",
		MetaDBPath:   "meta.db",
		RemoteFile:   "remote.json",
		MappingsFile: "mappings.json",
		Workers:      2,
		LogLevel:     "info",
		Mappings: []MappingConfig{
			{
				Name:       "contacts",
				ObjectType: "contact",
				RemoteType: "Contact",
				Fields:     map[string]string{"name": "Name", "email": "Email"},
			},
		},
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RECORDSYNC_DB", "")
	t.Setenv("RECORDSYNC_WORKERS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, "recordsync.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("RECORDSYNC_DB", "/tmp/custom.db")
	t.Setenv("RECORDSYNC_WORKERS", "8")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("RECORDSYNC_WORKERS", "many")

	assert.Equal(t, 4, Load().Workers)
}

func TestLoadMappings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.json")
	content := `[
		{"name": "contacts", "object_type": "contact", "remote_type": "Contact",
		 "fields": {"name": "Name", "email": "Email"}}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg := validConfig()
	cfg.Mappings = nil
	cfg.MappingsFile = path

	require.NoError(t, cfg.LoadMappings())
	require.Len(t, cfg.Mappings, 1)
	assert.Equal(t, "Contact", cfg.Mappings[0].RemoteType)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMappings_MissingFile(t *testing.T) {
	cfg := validConfig()
	cfg.MappingsFile = filepath.Join(t.TempDir(), "missing.json")

	assert.Error(t, cfg.LoadMappings())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		modify  func(c *Config)
		name    string
		wantErr bool
	}{
		{
			name:   "valid config",
			modify: func(c *Config) {},
		},
		{
			name:    "zero workers",
			modify:  func(c *Config) { c.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "no mappings",
			modify:  func(c *Config) { c.Mappings = nil },
			wantErr: true,
		},
		{
			name: "duplicate mapping names",
			modify: func(c *Config) {
				c.Mappings = append(c.Mappings, c.Mappings[0])
			},
			wantErr: true,
		},
		{
			name:    "mapping without fields",
			modify:  func(c *Config) { c.Mappings[0].Fields = map[string]string{} },
			wantErr: true,
		},
		{
			name: "mapping with duplicate remote names",
			modify: func(c *Config) {
				c.Mappings[0].Fields = map[string]string{"name": "Name", "title": "Name"}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMappingConfig_Build(t *testing.T) {
	m, err := validConfig().Mappings[0].Build()
	require.NoError(t, err)

	expected := mapping.MustNew(map[string]string{"name": "Name", "email": "Email"})
	assert.True(t, expected.Equal(m))
}
