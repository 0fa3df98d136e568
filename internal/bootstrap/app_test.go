package bootstrap

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlanka/planner-cli/config"
	"github.com/wanderlanka/planner-cli/internal/domain/nav"
	"github.com/wanderlanka/planner-cli/internal/testutil"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	dir := t.TempDir()
	return config.AppConfig{
		API: config.APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 5 * time.Second,
		},
		Credentials: config.CredentialsConfig{
			Backend: config.StoreBackendFile,
			File:    filepath.Join(dir, "credentials.json"),
			Profile: "default",
		},
		Archive: config.ArchiveConfig{
			Path: filepath.Join(dir, "trips.db"),
		},
	}
}

func TestNew_WiresFullGraph(t *testing.T) {
	app, err := New(testConfig(t), testutil.DiscardLogger())
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.NotNil(t, app.Sessions)
	assert.NotNil(t, app.Guard)
	assert.NotNil(t, app.Conversation)
	assert.NotNil(t, app.Trips)
	assert.Equal(t, nav.RouteHome, app.Nav.Current())
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Credentials.Backend = config.StoreBackend("etcd")

	_, err := New(cfg, testutil.DiscardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown credential store backend")
}

func TestApp_CloseIsIdempotentOnEmptyApp(t *testing.T) {
	app := &App{}
	assert.NoError(t, app.Close())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StoreBackendFile, cfg.Credentials.Backend)
	assert.NotEmpty(t, cfg.API.BaseURL)
}
