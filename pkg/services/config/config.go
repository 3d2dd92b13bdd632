package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Report ReportConfig `mapstructure:"report"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ReportConfig struct {
	AssetsDir   string `mapstructure:"assets_dir"`
	Tagline     string `mapstructure:"tagline"`
	DefaultLogo string `mapstructure:"default_logo"`
}

// Load reads the YAML config at path. An empty path returns the defaults;
// a named file that cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("report.assets_dir", "assets")
	v.SetDefault("report.tagline", "Property Investment Report")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
