package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-boxlayout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func testConfig(format, level string) config.LoggerConfig {
	cfg := config.NewDefaultConfig().Logger
	cfg.Format = format
	cfg.Level = level
	return cfg
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(testConfig("json", "info"), zapcore.AddSync(&buf))

	l.Debug("hidden")
	l.Info("shown")
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"logger":"boxlayout"`)
}

func TestNew_ConsoleColors(t *testing.T) {
	var buf bytes.Buffer
	l := New(testConfig("console", "warn"), zapcore.AddSync(&buf))

	l.Warn("careful")
	require.NoError(t, l.Sync())

	assert.Contains(t, buf.String(), colorMap["yellow"]+"WARN"+colorReset)
	assert.Contains(t, buf.String(), "boxlayout.")
}

func TestNew_BadLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	l := New(testConfig("json", "loud"), zapcore.AddSync(&buf))

	l.Info("quiet")
	l.Warn("loud")
	require.NoError(t, l.Sync())

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_DebugEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(EnvVar, path)

	var buf bytes.Buffer
	l := New(testConfig("json", "error"), zapcore.AddSync(&buf))
	l.Debug("traced")
	require.NoError(t, l.Sync())

	assert.Empty(t, buf.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "traced"))
}

func TestInitializeOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var first, second bytes.Buffer
	a := Initialize(testConfig("json", "info"), zapcore.AddSync(&first))
	b := Initialize(testConfig("json", "info"), zapcore.AddSync(&second))
	assert.Same(t, a, b)
	assert.Same(t, a, Logger())

	Logger().Info("once")
	Sync()
	assert.Contains(t, first.String(), "once")
	assert.Empty(t, second.String())
}

func TestLoggerBeforeInitialize(t *testing.T) {
	ResetForTest()
	assert.NotNil(t, Logger())
}
