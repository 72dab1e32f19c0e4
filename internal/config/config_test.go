package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 8090

[logs]
level = "debug"

[clinic_api]
url = "http://clinic.local/api"
timeout = 3

[cache]
driver = "redis"
ttl = 30

[lock]
driver = "redis"

[calendar]
timezone = "UTC"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileOverDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "http://clinic.local/api", cfg.ClinicAPI.URL)
	assert.Equal(t, 3, cfg.ClinicAPI.Timeout)
	assert.Equal(t, uint32(5), cfg.ClinicAPI.BreakerMaxFailures)
	assert.Equal(t, CacheDriverRedis, cfg.Cache.Driver)
	assert.Equal(t, 30, cfg.Cache.TTL)
	assert.True(t, cfg.UsesRedis())

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AGENDA_CLINIC_API_URL", "http://override")
	t.Setenv("AGENDA_REDIS_ADDR", "redis:6380")
	t.Setenv("AGENDA_CACHE_DRIVER", "none")
	t.Setenv("AGENDA_LOCK_DRIVER", "memory")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "http://override", cfg.ClinicAPI.URL)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, CacheDriverNone, cfg.Cache.Driver)
	assert.False(t, cfg.UsesRedis())
	assert.Equal(t, 8090, cfg.Server.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no clinic url", "[server]\nhttp_port = 8080\n"},
		{"bad cache driver", "[clinic_api]\nurl = \"http://x\"\n[cache]\ndriver = \"memcached\"\n"},
		{"bad timezone", "[clinic_api]\nurl = \"http://x\"\n[calendar]\ntimezone = \"Mars/Olympus\"\n"},
		{"bad rate limit", "[clinic_api]\nurl = \"http://x\"\n[rate_limit]\nenabled = true\nrps = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "agenda", Password: "secret", DBName: "agenda", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=agenda password=secret dbname=agenda sslmode=disable", db.DSN())
}
