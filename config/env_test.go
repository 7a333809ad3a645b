package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseFromURI(t *testing.T) {
	assert.Equal(t, "food-delivery", databaseFromURI("mongodb://localhost:27017/food-delivery"))
	assert.Equal(t, "shop", databaseFromURI("mongodb://u:p@db:27017/shop?authSource=admin"))
	assert.Equal(t, defaultMongoDatabase, databaseFromURI("mongodb://localhost:27017"))
}

func TestLoadFromFiles_DotEnvOverridesJSON(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("STORE_DRIVER", "")

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	envPath := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"port": 7000, "frontend_url": "http://json.local"}`), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("# comment\nexport FRONTEND_URL='http://admin.local'\nSTORE_DRIVER=memory\n"), 0o644))

	require.NoError(t, loadFromFiles(jsonPath, envPath))
	t.Cleanup(func() { _ = loadFromFiles(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.env")) })

	assert.Equal(t, "7000", get("PORT", ""))
	assert.Equal(t, "http://admin.local", get("FRONTEND_URL", ""))
	assert.Equal(t, "memory", get("STORE_DRIVER", ""))
}

func TestGet_EnvironmentWins(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "42")
	assert.Equal(t, 42, RateLimitPerMinute())

	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	assert.Equal(t, defaultRateLimit, RateLimitPerMinute())
}

func TestStoreDriver_FallsBackOnUnknown(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	assert.Equal(t, "mongo", StoreDriver())

	t.Setenv("STORE_DRIVER", "MEMORY")
	assert.Equal(t, "memory", StoreDriver())
}

func TestBool(t *testing.T) {
	t.Setenv("LOG_MONGO", "yes")
	assert.True(t, LogToMongo())
	t.Setenv("LOG_MONGO", "off")
	assert.False(t, LogToMongo())
}
