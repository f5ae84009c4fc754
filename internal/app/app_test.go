package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/tickerview/internal/common"
	"github.com/bobmcallan/tickerview/internal/models"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"GEMINI_API_KEY", "TICKERVIEW_GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		t.Setenv(name, "")
	}
}

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickerview.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewApp_InitializesAllServices(t *testing.T) {
	clearKeyEnv(t)
	configPath := writeTestConfig(t, `
[clients.gemini]
api_key = "file-key"
model = "gemini-test"

[logging]
level = "disabled"
`)

	a, err := NewApp(configPath)
	require.NoError(t, err)

	assert.NotNil(t, a.Config)
	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.TextGenerator)
	assert.NotNil(t, a.SeriesGenerator)
	assert.NotNil(t, a.Analyzer)
	assert.NotNil(t, a.StockService)
	assert.False(t, a.StartupTime.IsZero())
	assert.Equal(t, "gemini-test", a.Config.Clients.Gemini.Model)
}

func TestNew_WithoutAPIKeyFallsBack(t *testing.T) {
	clearKeyEnv(t)
	cfg := common.NewDefaultConfig()

	a := New(context.Background(), cfg, common.NewSilentLogger())
	assert.Nil(t, a.TextGenerator)

	got, err := a.StockService.AnalyzeSymbol(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, got.AnalysisSource)
	assert.Equal(t, []string{
		"AI analysis temporarily unavailable",
		"AI analysis temporarily unavailable",
		"AI analysis temporarily unavailable",
	}, got.Analysis.BullishViews)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("TICKERVIEW_CONFIG", "")
	assert.Equal(t, "explicit.toml", ResolveConfigPath("explicit.toml"))

	t.Setenv("TICKERVIEW_CONFIG", "/etc/tickerview.toml")
	assert.Equal(t, "/etc/tickerview.toml", ResolveConfigPath(""))
}
