package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "amunitsiia-shop", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "shop", cfg.Database.DBName)
		assert.Equal(t, "memory", cfg.Cache.Type)
		assert.Equal(t, 1000*time.Second, cfg.Cache.NavigationTTL)
		assert.Equal(t, 20, cfg.Shop.PageSize)
		assert.Equal(t, 100, cfg.Shop.TopProductsLimit)
		assert.Equal(t, "cart", cfg.Shop.CartCookie)
		assert.Equal(t, "flag", cfg.Shop.FlagCookie)
		assert.True(t, cfg.HTTP.MetricsEnabled)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "localhost:4317", cfg.Telemetry.CollectorEndpoint)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
	})

	t.Run("metrics can be switched off", func(t *testing.T) {
		t.Setenv("SHOP_HTTP_METRICS_ENABLED", "false")

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.HTTP.MetricsEnabled)
	})

	t.Run("telemetry from environment", func(t *testing.T) {
		t.Setenv("SHOP_TELEMETRY_ENABLED", "true")
		t.Setenv("SHOP_TELEMETRY_COLLECTOR_ENDPOINT", "otel-collector:4317")
		t.Setenv("SHOP_TELEMETRY_SAMPLING_RATIO", "0.25")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "otel-collector:4317", cfg.Telemetry.CollectorEndpoint)
		assert.Equal(t, 0.25, cfg.Telemetry.SamplingRatio)
	})

	t.Run("rejects sampling ratio above one", func(t *testing.T) {
		t.Setenv("SHOP_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.sampling_ratio")
	})

	t.Run("loads values from environment variables with SHOP prefix", func(t *testing.T) {
		t.Setenv("SHOP_APP_NAME", "test-app")
		t.Setenv("SHOP_APP_PORT", "9000")
		t.Setenv("SHOP_DATABASE_HOST", "testdb.local")
		t.Setenv("SHOP_DATABASE_PORT", "5433")
		t.Setenv("SHOP_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("SHOP_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("SHOP_CACHE_TYPE", "redis")
		t.Setenv("SHOP_SHOP_PAGE_SIZE", "12")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, "redis", cfg.Cache.Type)
		assert.Equal(t, 12, cfg.Shop.PageSize)
	})

	t.Run("rejects unknown cache type", func(t *testing.T) {
		t.Setenv("SHOP_CACHE_TYPE", "memcached")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cache.type")
	})

	t.Run("production requires a strong jwt secret", func(t *testing.T) {
		t.Setenv("SHOP_APP_ENV", "production")
		t.Setenv("SHOP_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return defaultConfig()
	}

	t.Run("idle conns cannot exceed open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = 30
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})

	t.Run("same_site none requires secure cookies", func(t *testing.T) {
		cfg := base()
		cfg.Cookie.SameSite = "none"
		assert.Error(t, cfg.validate())

		cfg.Cookie.Secure = true
		assert.NoError(t, cfg.validate())
	})

	t.Run("production rejects wildcard cors", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
		cfg.Database.Password = "secret"
		cfg.Database.SSLMode = "require"
		cfg.Cookie.Secure = true
		cfg.HTTP.CORSAllowOrigins = []string{"*"}

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors")

		cfg.HTTP.CORSAllowOrigins = []string{"https://amunitsiia.ua"}
		assert.NoError(t, cfg.validate())
	})

	t.Run("page size bounds", func(t *testing.T) {
		cfg := base()
		cfg.Shop.PageSize = 500
		assert.Error(t, cfg.validate())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "shop",
		Password: "p@ss/word",
		DBName:   "shop",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://shop:p%40ss%2Fword@db:5432/shop?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "cache:6380", RedisConfig{Host: "cache", Port: 6380}.Addr())
}
