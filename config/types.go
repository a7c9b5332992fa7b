package config

import (
	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Pretty     bool   `yaml:"pretty"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"maxAgeDays" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port              int      `yaml:"port" validate:"gt=0,lte=65535"`
	AllowedOrigins    []string `yaml:"allowedOrigins"`
	ShutdownTimeoutMS int      `yaml:"shutdownTimeoutMS" validate:"gte=0"`
}

// CatalogueConfig contains catalogue loading rules
type CatalogueConfig struct {
	StrictStops bool `yaml:"strictStops"`
}

// CacheConfig contains responder cache configuration
type CacheConfig struct {
	Size int `yaml:"size" validate:"gte=0"`
}

// FetchConfig contains settings for fetching input documents over HTTP
type FetchConfig struct {
	TimeoutMS  int `yaml:"timeoutMS" validate:"gte=0"`
	RetryCount int `yaml:"retryCount" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Logging   LoggingConfig     `yaml:"logging"`
	Server    ServerConfig      `yaml:"server" validate:"required"`
	Routing   router.Settings   `yaml:"routing"`
	Render    renderer.Settings `yaml:"render"`
	Catalogue CatalogueConfig   `yaml:"catalogue"`
	Cache     CacheConfig       `yaml:"cache"`
	Fetch     FetchConfig       `yaml:"fetch"`
}
