package devserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "serve.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nroot: dist\nlog_format: json\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "dist", cfg.Root)
	assert.Equal(t, "index.html", cfg.Index, "unset keys keep their defaults")
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "serve.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\n"), 0o644))
	t.Setenv("NOJS_SERVE_ADDR", ":7000")
	t.Setenv("NOJS_SERVE_ROOT", "/srv/bundle")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "/srv/bundle", cfg.Root)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadConfig_MissingDefaultFileIsFine(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serve.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parse")
}

func TestConfig_Validate(t *testing.T) {
	root := writeBundle(t)

	cfg := DefaultConfig()
	cfg.Root = root
	assert.NoError(t, cfg.Validate())

	cfg.Index = "missing.html"
	assert.ErrorContains(t, cfg.Validate(), "index")

	cfg = DefaultConfig()
	cfg.Root = ""
	assert.ErrorContains(t, cfg.Validate(), "root is empty")

	cfg = DefaultConfig()
	cfg.Root = filepath.Join(root, "index.html")
	assert.ErrorContains(t, cfg.Validate(), "not a directory")
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	logger := NewLogger(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.LogLevel = "nonsense"
	assert.Equal(t, logrus.InfoLevel, NewLogger(cfg, WithOutput(os.Stdout)).GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger(cfg, WithLevel(logrus.WarnLevel)).GetLevel())
}
