package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func etcPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(etcPath(t))
	require.NoError(t, err)

	assert.Equal(t, "zonechange", cfg.Log.AppName)
	assert.Equal(t, "info", cfg.Log.LogLevel)
	assert.True(t, cfg.Log.Console.Enabled)
	assert.Equal(t, GormEngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, "zonechange.db", cfg.DB.Name)
	assert.Equal(t, "example.com.", cfg.Zone.Origin)
	assert.Equal(t, uint32(3600), cfg.Zone.TTL)
	assert.Equal(t, "error.log", cfg.Log.File.ErrorLog)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	require.Error(t, err)
}

func TestReadConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte("DevMode = true\n"), 0o600))

	cfg, err := ReadConfig(dir + string(filepath.Separator))
	require.NoError(t, err)

	assert.True(t, cfg.DevMode)
	assert.Equal(t, Default().DB, cfg.DB)
	assert.Equal(t, Default().Log, cfg.Log)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	jsonOverride := `{"Zone":{"Origin":"override.org."},"DB":{"GormEngine":"postgres","Host":"db"}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(etcPath(t))
	require.NoError(t, err)

	assert.Equal(t, "override.org.", cfg.Zone.Origin)
	assert.Equal(t, GormEnginePostgres, cfg.DB.GormEngine)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, "zonechange.db", cfg.DB.Name)
}

func TestReadConfigWithBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Zone":`)

	_, err := ReadConfig(etcPath(t))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "default config",
			config: Default(),
		},
		{
			name:    "unknown engine",
			config:  Config{DB: DB{GormEngine: "oracle", Name: "x"}},
			wantErr: ErrUnsupportedGormEngine,
		},
		{
			name:    "empty engine",
			config:  Config{DB: DB{Name: "x"}},
			wantErr: ErrUnsupportedGormEngine,
		},
		{
			name:    "missing db name",
			config:  Config{DB: DB{GormEngine: GormEngineMySQL}},
			wantErr: ErrEmptyDBName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidationFillsTTL(t *testing.T) {
	cfg := Config{DB: DB{GormEngine: GormEngineSQLite, Name: "x"}}

	require.NoError(t, validate(&cfg))
	assert.Equal(t, uint32(defaultTTL), cfg.Zone.TTL)
}

func TestDumpConfig(t *testing.T) {
	cfg := Default()
	cfg.Zone.Origin = "dump.example."

	tomlStr, err := DumpConfig(&cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(tomlStr, "dump.example."))

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"Origin": "dump.example."`)
}
