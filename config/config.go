package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Log        LogConfig        `mapstructure:"log"`
	Payroll    PayrollConfig    `mapstructure:"payroll"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// RedisConfig configures the shared execution log, run lock and rate limiter.
// When Enabled is false the server keeps everything in process memory.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type PayrollConfig struct {
	PayerChain  string        `mapstructure:"payer_chain"`
	Testnet     bool          `mapstructure:"testnet"`
	RunLockTTL  time.Duration `mapstructure:"run_lock_ttl"`
	MaxLogLines int           `mapstructure:"max_log_lines"` // 0 = unbounded
}

// SettlementConfig tunes the sandbox settlement adapters.
type SettlementConfig struct {
	Latency        time.Duration `mapstructure:"latency"`
	BridgeSlippage string        `mapstructure:"bridge_slippage"`
	BridgeFee      string        `mapstructure:"bridge_fee"`
}

type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	ExecuteLimit  int64         `mapstructure:"execute_limit"`
	ExecuteWindow time.Duration `mapstructure:"execute_window"`
	WriteLimit    int64         `mapstructure:"write_limit"`
	WriteWindow   time.Duration `mapstructure:"write_window"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// WebhookConfig configures the run-completion webhook. An empty URL disables it.
type WebhookConfig struct {
	URL     string        `mapstructure:"url"`
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PAYFLOW_.
// Nested keys use underscore: PAYFLOW_REDIS_HOST, PAYFLOW_PAYROLL_PAYER_CHAIN, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "payflow")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("payroll.payer_chain", "ethereum")
	v.SetDefault("payroll.testnet", false)
	v.SetDefault("payroll.run_lock_ttl", "15m")
	v.SetDefault("payroll.max_log_lines", 5000)
	v.SetDefault("settlement.latency", "0s")
	v.SetDefault("settlement.bridge_slippage", "0.003")
	v.SetDefault("settlement.bridge_fee", "0.001")
	v.SetDefault("ratelimit.execute_limit", 10)
	v.SetDefault("ratelimit.execute_window", "1m")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.write_limit", 120)
	v.SetDefault("ratelimit.write_window", "1m")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("webhook.url", "")
	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.timeout", "10s")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PAYFLOW_REDIS_HOST -> redis.host
	v.SetEnvPrefix("PAYFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
