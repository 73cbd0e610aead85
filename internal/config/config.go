package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type AppSubConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppSubConfig   `mapstructure:"app"`
}

// TokenTTL 返回签发 token 的有效期，默认 1 小时。
func (c *Config) TokenTTL() time.Duration {
	hours := c.JWT.ExpireHours
	if hours <= 0 {
		hours = 1
	}
	return time.Duration(hours) * time.Hour
}

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
//
// 签名密钥只允许来自环境变量 FT_JWT_SECRET，不放在配置文件里。
func Load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	// environment overrides, e.g. FT_SERVER_PORT=9000
	v.SetEnvPrefix("FT")
	v.AutomaticEnv()
	if err := v.BindEnv("jwt.secret", "FT_JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Unmarshal 不一定能带出仅存在于环境变量的键，这里再兜一次
	if c.JWT.Secret == "" {
		c.JWT.Secret = v.GetString("jwt.secret")
	}

	if c.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required: set FT_JWT_SECRET")
	}

	return &c, nil
}
