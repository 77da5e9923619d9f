package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every CV_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"CV_LOCALE", "CV_OUTPUT_DIR", "CV_TEMPLATE", "CV_CONVERTER", "CV_CHROME_TIMEOUT", "CV_SHARE_DIR", "CV_VIEWER", "CV_VERBOSE"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"locale": "en",
		"output_dir": "build",
		"converter": "latex",
		"chrome_timeout": "45s",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.Equal(t, "latex", cfg.Converter)
	assert.Equal(t, 45*time.Second, cfg.Timeout())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"locale": "en", "output_dir": "from-file", "viewer": "evince"}`)
	t.Setenv("CV_OUTPUT_DIR", "from-env")
	t.Setenv("CV_CONVERTER", "latex")
	t.Setenv("CV_VERBOSE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "from-env", cfg.OutputDir)
	assert.Equal(t, "latex", cfg.Converter)
	assert.Equal(t, "evince", cfg.Viewer)
	assert.Equal(t, "30s", cfg.ChromeTimeout)
	assert.True(t, cfg.Verbose)
}

func TestLoad_InvalidEnvBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("CV_VERBOSE", "quizás")

	_, err := Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Defaults(), ""},
		{"empty", Config{}, ""},
		{"unsupported locale", Config{Locale: "xx-invalid-tag-!"}, "unsupported locale"},
		{"unknown converter", Config{Converter: "word"}, "'converter' must be"},
		{"bad timeout", Config{ChromeTimeout: "soon"}, "invalid 'chrome_timeout'"},
		{"negative timeout", Config{ChromeTimeout: "-5s"}, "must be positive"},
		{"missing template", Config{Template: "/nonexistent/cv.html"}, "template file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Locale: "en", Verbose: true}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "en", merged.Locale)
	assert.Equal(t, "output", merged.OutputDir)
	assert.Equal(t, "chrome", merged.Converter)
	assert.Equal(t, "xdg-open", merged.Viewer)
	assert.True(t, merged.Verbose)
	assert.Equal(t, "", cfg.OutputDir, "receiver is not modified")
}
