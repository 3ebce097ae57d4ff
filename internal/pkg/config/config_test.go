package config

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be genuinely unset for
	// envconfig defaults to apply.
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "MONGO_URI", "MONGO_DB", "REDIS_ADDR", "REDIS_DB"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "farmbook", cfg.Mongo.Database)
	// No default: main must be able to tell "unset" from "unreachable".
	assert.Empty(t, cfg.Mongo.URI)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DB", "farm-app")
	t.Setenv("REDIS_ADDR", "cache.internal:6379")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "farm-app", cfg.Mongo.Database)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr)
}
