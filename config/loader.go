package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
	"github.com/theoremus-urban-solutions/transit-catalogue/svg"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "TRANSIT_CATALOGUE_CONFIG"

// ErrNoConfigFile is returned by LoadAppConfig when none of the default
// config paths exist.
var ErrNoConfigFile = errors.New("no config file found")

// Config is the global application configuration
var Config = Default()

// Default returns the configuration used for settings a file leaves out.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{
			Level:      "info",
			Pretty:     true,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Server: ServerConfig{
			Port:              16181,
			AllowedOrigins:    []string{"*"},
			ShutdownTimeoutMS: 5000,
		},
		Routing: router.Settings{BusVelocity: 40, BusWaitTime: 6},
		Render: renderer.Settings{
			Width:             1200,
			Height:            1200,
			Padding:           50,
			LineWidth:         14,
			StopRadius:        5,
			BusLabelFontSize:  20,
			BusLabelOffset:    [2]float64{7, 15},
			StopLabelFontSize: 20,
			StopLabelOffset:   [2]float64{7, -3},
			UnderlayerColor:   svg.RGBA(255, 255, 255, 0.85),
			UnderlayerWidth:   3,
			ColorPalette: []svg.Color{
				svg.Named("green"),
				svg.RGB(255, 160, 0),
				svg.Named("red"),
			},
		},
		Cache: CacheConfig{Size: 1024},
		Fetch: FetchConfig{TimeoutMS: 10000, RetryCount: 2},
	}
}

// LoadAppConfig loads .env files, then the first config file found among
// $TRANSIT_CATALOGUE_CONFIG, config.yml and ./configs/config.yml, and stores
// the validated result in Config. A file named by the environment variable
// must exist; ErrNoConfigFile means no default path exists.
func LoadAppConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	var data []byte
	var err error
	if p := os.Getenv(EnvConfigPath); p != "" {
		data, err = os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("config from $%s: %w", EnvConfigPath, err)
		}
	} else {
		data, err = readFirst(defaultPaths)
		if err != nil {
			return err
		}
	}

	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

var defaultPaths = []string{"config.yml", "./configs/config.yml"}

func readFirst(paths []string) ([]byte, error) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w in %v", ErrNoConfigFile, paths)
}

// LoadFile reads and validates one config file without touching Config.
func LoadFile(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Render.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
