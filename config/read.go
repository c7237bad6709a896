package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configFormat = "yaml"
	envPrefix    = "HOSPITAL"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(configName)
	viper.SetConfigType(configFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. HOSPITAL_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Read the config file (optional in Docker environments)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only fail if it's not a "file not found" error
			if os.Getenv(envPrefix+"_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("server.environment", "development")

	// Consultations run 11:00 to 17:00 in half-hour slots.
	viper.SetDefault("scheduling.start_hour", 11)
	viper.SetDefault("scheduling.end_hour", 17)
	viper.SetDefault("scheduling.slot_minutes", 30)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output.stdout", true)

	viper.SetDefault("authorization.casbin_model_path", "casbin_model.conf")
	viper.SetDefault("authorization.enable_audit", true)
	viper.SetDefault("authorization.superadmin_bypass", true)
}

// Validate checks invariants that would otherwise only surface at runtime.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}

	s := c.Scheduling
	if s.StartHour < 0 || s.StartHour > 23 || s.EndHour < 1 || s.EndHour > 24 {
		return fmt.Errorf("scheduling window hours out of range: start=%d end=%d", s.StartHour, s.EndHour)
	}
	if s.EndHour <= s.StartHour {
		return fmt.Errorf("scheduling.end_hour must be after scheduling.start_hour")
	}
	if s.SlotMinutes <= 0 || 60%s.SlotMinutes != 0 {
		return fmt.Errorf("scheduling.slot_minutes must evenly divide an hour, got %d", s.SlotMinutes)
	}

	if c.Authentication.EncryptionKey != "" && len(c.Authentication.EncryptionKey) != 64 {
		return fmt.Errorf("authentication.encryption_key must be 64 hex chars (32 bytes)")
	}

	return nil
}
