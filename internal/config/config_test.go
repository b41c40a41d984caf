package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Employees/library/yamlreader"
)

func TestConfig_Defaults(t *testing.T) {
	var cfg Config

	assert.Equal(t, DefaultPort, cfg.Port())
	assert.Equal(t, DefaultDateLayout, cfg.DateLayout())
	assert.Equal(t, DefaultMockRecords, cfg.MockRecords())
	assert.Equal(t, "memory", cfg.StorageDriver())
	assert.Equal(t, DefaultTopic, cfg.KafkaTopic())
	assert.False(t, cfg.App.UseMockData.Get())
}

func TestConfig_LocalFile(t *testing.T) {
	t.Setenv("USE_MOCK_DATA", "true")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	path := filepath.Join(t.TempDir(), "app.yaml")
	data, err := os.ReadFile("../../config/application-local.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := yamlreader.NewConfig[Config](path)
	require.NoError(t, err)

	assert.True(t, cfg.App.UseMockData.Get())
	assert.Equal(t, "sqlite", cfg.StorageDriver())
	assert.Equal(t, "hr.employees", cfg.KafkaTopic())
	assert.Equal(t, "1/2/2006", cfg.DateLayout())
}
