package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "payflow", cfg.JWT.Issuer)

	assert.Equal(t, "ethereum", cfg.Payroll.PayerChain)
	assert.False(t, cfg.Payroll.Testnet)
	assert.Equal(t, 15*time.Minute, cfg.Payroll.RunLockTTL)
	assert.Equal(t, 5000, cfg.Payroll.MaxLogLines)

	assert.Equal(t, time.Duration(0), cfg.Settlement.Latency)
	assert.Equal(t, "0.003", cfg.Settlement.BridgeSlippage)
	assert.Equal(t, "0.001", cfg.Settlement.BridgeFee)

	assert.Equal(t, int64(10), cfg.RateLimit.ExecuteLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.ExecuteWindow)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, int64(120), cfg.RateLimit.WriteLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.WriteWindow)
	assert.True(t, cfg.Metrics.Enabled)

	assert.Empty(t, cfg.Webhook.URL)
	assert.Equal(t, 10*time.Second, cfg.Webhook.Timeout)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
redis:
  enabled: true
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
jwt:
  secret: "my-jwt-secret"
  expiry: "2h"
  issuer: "payflow-test"
log:
  level: "debug"
  pretty: true
payroll:
  payer_chain: "base"
  testnet: true
  run_lock_ttl: "5m"
settlement:
  latency: "250ms"
  bridge_slippage: "0.005"
  bridge_fee: "0.002"
ratelimit:
  execute_limit: 3
  execute_window: "30s"
metrics:
  enabled: false
webhook:
  url: "https://ops.example.com/hook"
  secret: "hook-secret"
  timeout: "3s"
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "redispwd", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, "my-jwt-secret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "payflow-test", cfg.JWT.Issuer)

	assert.Equal(t, "base", cfg.Payroll.PayerChain)
	assert.True(t, cfg.Payroll.Testnet)
	assert.Equal(t, 5*time.Minute, cfg.Payroll.RunLockTTL)

	assert.Equal(t, 250*time.Millisecond, cfg.Settlement.Latency)
	assert.Equal(t, "0.005", cfg.Settlement.BridgeSlippage)
	assert.Equal(t, "0.002", cfg.Settlement.BridgeFee)

	assert.Equal(t, int64(3), cfg.RateLimit.ExecuteLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.ExecuteWindow)
	assert.False(t, cfg.Metrics.Enabled)

	assert.Equal(t, "https://ops.example.com/hook", cfg.Webhook.URL)
	assert.Equal(t, "hook-secret", cfg.Webhook.Secret)
	assert.Equal(t, 3*time.Second, cfg.Webhook.Timeout)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PAYFLOW_SERVER_PORT", "3000")
	t.Setenv("PAYFLOW_PAYROLL_PAYER_CHAIN", "arbitrum")
	t.Setenv("PAYFLOW_JWT_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "arbitrum", cfg.Payroll.PayerChain)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestRedisConfig_Addr(t *testing.T) {
	redisCfg := RedisConfig{
		Host: "redis.local",
		Port: 6380,
	}

	assert.Equal(t, "redis.local:6380", redisCfg.Addr())
}
