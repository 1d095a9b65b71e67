package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	body := `{
		"endpoint_addr_http": ":8080",
		"database_dsn": "postgres://localhost/authgate",
		"secret_key": "json-secret",
		"token_validity_duration": "2h",
		"bcrypt_cost": 10
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", path}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, ":8080", config.EndpointAddrHTTP)
	assert.Equal(t, "postgres://localhost/authgate", config.DatabaseDSN)
	assert.Equal(t, "json-secret", config.SecretKey)
	assert.Equal(t, 2*time.Hour, config.TokenValidityDuration)
	assert.Equal(t, 10, config.BcryptCost)
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, ":3000", config.EndpointAddrHTTP)
	assert.Equal(t, 1*time.Hour, config.TokenValidityDuration)
}
