package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port        string `mapstructure:"PORT"`
	GinMode     string `mapstructure:"GIN_MODE"`
	Environment string `mapstructure:"ENVIRONMENT"`

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// JWT
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	AccessTokenExpireMin int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	// Bootstrap admin account seeded on first start
	BootstrapAdminEmail    string `mapstructure:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapAdminPassword string `mapstructure:"BOOTSTRAP_ADMIN_PASSWORD"`
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Defaults. The 7-day token lifetime is a deliberate product choice
	// for an admin tool; tune ACCESS_TOKEN_EXPIRE_MINUTES per deployment.
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 10080)
	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "admin123")

	_ = viper.ReadInConfig()

	cfg := &Config{}
	for _, key := range []string{
		"PORT", "GIN_MODE", "ENVIRONMENT", "DATABASE_URL",
		"JWT_SECRET", "ACCESS_TOKEN_EXPIRE_MINUTES",
		"BOOTSTRAP_ADMIN_EMAIL", "BOOTSTRAP_ADMIN_PASSWORD",
	} {
		if val := os.Getenv(key); val != "" {
			viper.Set(key, val)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
