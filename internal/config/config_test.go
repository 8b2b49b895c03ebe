package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 24*time.Hour, cfg.Security.JWT.Expiry())
	assert.Equal(t, RateLimitConfig{Enabled: true, Requests: 100, Window: 15 * time.Minute, Burst: 100}, cfg.Security.RateLimit)
	assert.Equal(t, []string{"http://localhost"}, cfg.Security.CORS.AllowedOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ANIMA_SERVER_PORT", "4100")
	t.Setenv("ANIMA_DATABASE_DRIVER", "postgres")
	t.Setenv("ANIMA_SECURITY_JWT_SECRET", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4100, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.Security.JWT.Secret)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8088
  mode: debug
database:
  dsn: "file::memory:"
security:
  jwt:
    expire_hours: 2
  rate_limit:
    enabled: false
  cors:
    allowed_origins: ["https://anima.example"]
    max_age: 1h
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, 2*time.Hour, cfg.Security.JWT.Expiry())
	assert.False(t, cfg.Security.RateLimit.Enabled)
	assert.Equal(t, []string{"https://anima.example"}, cfg.Security.CORS.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.Security.CORS.MaxAge)
	// 文件未设置的字段保留默认值
	assert.Equal(t, "anima-counter", cfg.Security.JWT.Issuer)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"端口":   "server:\n  port: 70000\n",
		"运行模式": "server:\n  mode: turbo\n",
		"有效期":  "security:\n  jwt:\n    expire_hours: 0\n",
		"限流":   "security:\n  rate_limit:\n    enabled: true\n    requests: 0\n",
		"密钥":   "security:\n  jwt:\n    secret: \"\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
