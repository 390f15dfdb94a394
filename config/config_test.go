package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_PUBLICBASEURL", "https://cdn.override.test")

	cfg, err := LoadWithEnv[Config]("test", "testdata")
	require.NoError(t, err)

	assert.Equal(t, "teka", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "test-access-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, "https://cdn.override.test", cfg.Storage.PublicBaseURL)
	require.NotNil(t, cfg.Catalog)
	assert.Equal(t, []string{"Kinshasa", "Goma"}, cfg.Catalog.Cities)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", "testdata")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Catalog: &CatalogConfig{MaxPhotos: 9}}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultMaxPhotos, cfg.Catalog.MaxPhotos)
	require.NotNil(t, cfg.Migration)
	assert.False(t, cfg.Migration.AutoMigrate)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"maxRequestBodySize": "10MB",
			"allowedOrigins":     []any{"http://localhost:5173"},
		},
		"catalog": map[string]any{
			"maxPhotos":  4,
			"webBaseUrl": "",
		},
		"migration": map[string]any{
			"autoMigrate": true,
		},
		"postgres": map[string]any{
			"master": map[string]any{"userName": "teka"},
		},
		"secretKey": map[string]any{"access": ""},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "CATALOG_WEBBASEURL", want: "catalog.webBaseUrl"},
		{envKey: "MIGRATION_AUTOMIGRATE", want: "migration.autoMigrate"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		// a scalar leaf stops the walk
		{envKey: "CATALOG_MAXPHOTOS_EXTRA", want: "catalog.maxPhotos.extra"},
		{envKey: "QRCODE_SIZE", want: "qrcode.size"},
		{envKey: "CATALOG__MAXPHOTOS", want: "catalog.maxPhotos"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")
	// replica 1 has no port, the scan stops there

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
