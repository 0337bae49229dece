package bootstrap

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelhakNemri/sports-arena-client/config"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()

	return config.AppConfig{
		Auth: config.AuthConfig{
			Mode:     config.AuthModeGateway,
			ClientID: "web-frontend",
		},
		Gateway: config.GatewayConfig{
			BaseURL: "http://localhost:8888",
			Timeout: time.Second,
		},
		Storage: config.StorageConfig{
			Backend: config.StorageMemory,
			Key:     "sports_arena_token",
		},
		Notifications: config.NotificationsConfig{
			PollInterval: 30 * time.Second,
		},
	}
}

func TestNewApp_WiresGatewayMode(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.NotNil(t, app.Tokens)
	assert.NotNil(t, app.Gateway)
	assert.NotNil(t, app.Session)
	assert.NotNil(t, app.Auth)
	assert.NotNil(t, app.Guards)
	assert.NotNil(t, app.Poller)

	assert.False(t, app.Session.IsAuthenticated())
	assert.False(t, app.Poller.Running())
}

func TestNewApp_FileStoreWithExplicitPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Backend = config.StorageFile
	cfg.Storage.FilePath = t.TempDir() + "/token"

	app, err := NewApp(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.False(t, app.Tokens.Has(context.Background()))
}

func TestNewApp_RejectsUnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Backend = config.StorageBackend("vault")

	_, err := NewApp(context.Background(), cfg, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage backend")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.AuthModeGateway, cfg.Auth.Mode)
	assert.Equal(t, config.StorageFile, cfg.Storage.Backend)
	assert.Equal(t, "sports_arena_token", cfg.Storage.Key)
	assert.GreaterOrEqual(t, cfg.Notifications.PollInterval, time.Second)
}

func TestInitLogger(t *testing.T) {
	logger := InitLogger(true)
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger = InitLogger(false)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
