package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("success: defaults applied", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ADMIN_API_KEY", "admin")
		t.Setenv("STORE_DRIVER", StoreDriverMemory)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "24h", cfg.JWT.Duration)
		assert.Equal(t, 10000, cfg.Coupon.MaxPerBatch)
		assert.Equal(t, 5, cfg.Coupon.TokenMaxRetries)
		assert.Empty(t, cfg.Redis.URL)
		assert.Equal(t, 720*time.Hour, cfg.Redis.RedeemedTTL)
	})

	t.Run("error: postgres driver without database", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ADMIN_API_KEY", "admin")
		t.Setenv("STORE_DRIVER", StoreDriverPostgres)
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DB_USER and DB_NAME")
	})

	t.Run("error: unknown driver", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ADMIN_API_KEY", "admin")
		t.Setenv("STORE_DRIVER", "sqlite")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "unknown STORE_DRIVER")
	})
}

func TestNewTestConfig_IsValid(t *testing.T) {
	assert.NoError(t, NewTestConfig().validate())
}
