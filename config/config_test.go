package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir switches to dir for the rest of the test and restores Config after it.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origConfig := Config
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		Config = origConfig
		os.Chdir(origDir)
	})
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
}

// TestConfig_LoadFromFile tests loading the main config.yml
func TestConfig_LoadFromFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	chdir(t, "..")

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("Failed to load config.yml: %v", err)
	}
	if Config.Server.Port != 16181 {
		t.Errorf("port = %d, want 16181", Config.Server.Port)
	}
	if Config.Routing.BusVelocity != 40 || Config.Routing.BusWaitTime != 6 {
		t.Errorf("routing = %+v", Config.Routing)
	}
	if len(Config.Render.ColorPalette) != 3 || Config.Render.ColorPalette[1].String() != "rgb(255,160,0)" {
		t.Errorf("palette = %v", Config.Render.ColorPalette)
	}

	t.Logf("✓ Loaded config with port: %d", Config.Server.Port)
}

// TestConfig_MissingFile tests error handling for missing config
func TestConfig_MissingFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	chdir(t, t.TempDir())

	err := LoadAppConfig()
	if !errors.Is(err, ErrNoConfigFile) {
		t.Errorf("err = %v, want ErrNoConfigFile", err)
	}
}

// TestConfig_MissingEnvPath tests that a file named by the environment must exist
func TestConfig_MissingEnvPath(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	t.Setenv(EnvConfigPath, filepath.Join(tmpDir, "typo.yml"))

	err := LoadAppConfig()
	if err == nil {
		t.Fatal("Loading a missing $" + EnvConfigPath + " file should return error")
	}
	if errors.Is(err, ErrNoConfigFile) {
		t.Errorf("err = %v, should not read as a missing default config", err)
	}
	if !strings.Contains(err.Error(), "typo.yml") {
		t.Errorf("err = %v, should name the path", err)
	}
}

// TestConfig_InvalidYAML tests error handling for invalid YAML
func TestConfig_InvalidYAML(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yml"), []byte("invalid: yaml: content: [[["), 0644); err != nil {
		t.Fatal(err)
	}
	if err := LoadAppConfig(); err == nil {
		t.Error("Loading invalid YAML should return error")
	}
}

// TestConfig_EnvPath tests that the environment variable selects the file
func TestConfig_EnvPath(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	path := filepath.Join(tmpDir, "custom.yml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", Config.Server.Port)
	}
	// untouched sections keep their defaults
	if Config.Routing != Default().Routing || Config.Cache.Size != 1024 {
		t.Errorf("defaults lost: routing %+v, cache %+v", Config.Routing, Config.Cache)
	}
}

// TestConfig_DotEnv tests that a .env file in the working directory is loaded
func TestConfig_DotEnv(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	path := filepath.Join(tmpDir, "from-dotenv.yml")
	if err := os.WriteFile(path, []byte("cache:\n  size: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(EnvConfigPath+"="+path+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// registers cleanup of the variable godotenv is about to set
	t.Setenv(EnvConfigPath, "")
	os.Unsetenv(EnvConfigPath)

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Cache.Size != 7 {
		t.Errorf("cache size = %d, want 7", Config.Cache.Size)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"port out of range", "server:\n  port: 70000\n", "Port"},
		{"unknown log level", "logging:\n  level: loud\n", "Level"},
		{"zero velocity", "routing:\n  busVelocity: 0\n", "BusVelocity"},
		{"negative cache", "cache:\n  size: -1\n", "Size"},
		{"padding too large", "render:\n  width: 100\n  height: 100\n  padding: 60\n", "padding"},
		{"bad color", "render:\n  underlayerColor: [1, 2]\n", "components"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("catalogue:\n  strictStops: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.Catalogue.StrictStops {
		t.Error("strictStops should be true")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}
