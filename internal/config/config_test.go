package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIndexerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *IndexerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: indexer
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_BLOCKS"
  consumer_name: "test-consumer"
  subject: "blocks.near.test"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
contracts:
  base_account_id: "potlock.testnet"
  factory_root: "potfactory"
  registry_account_id: "registry.potlock.testnet"
  donate_account_id: "donate.potlock.testnet"
pricing:
  coingecko_url: "https://api.coingecko.com/api/v3"
  http_timeout: "15s"
worker:
  pool_size: 4
  queue_size: 64
`,
			expectError: false,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "indexer", cfg.Database.DBName)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_BLOCKS", cfg.NATS.StreamName)
				assert.Equal(t, "blocks.near.test", cfg.NATS.Subject)
				assert.Equal(t, 5*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, "potlock.testnet", cfg.Contracts.BaseAccountID)
				assert.Equal(t, "donate.potlock.testnet", cfg.Contracts.DonateAccountID)
				assert.Equal(t, 15*time.Second, cfg.Pricing.HTTPTimeout)
				assert.Equal(t, 4, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 64, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: indexer
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.MaxOpenConns)
				assert.Equal(t, 5, cfg.Database.MaxIdleConns)
				assert.Equal(t, "NEAR_BLOCKS", cfg.NATS.StreamName)
				assert.Equal(t, "potlock-indexer", cfg.NATS.ConsumerName)
				assert.Equal(t, "blocks.near.finalized", cfg.NATS.Subject)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Equal(t, "potlock.near", cfg.Contracts.BaseAccountID)
				assert.Equal(t, "potfactory", cfg.Contracts.FactoryRoot)
				assert.Equal(t, "registry.potlock.near", cfg.Contracts.RegistryAccountID)
				assert.Equal(t, "donate.potlock.near", cfg.Contracts.DonateAccountID)
				assert.Equal(t, "https://api.coingecko.com/api/v3", cfg.Pricing.CoingeckoURL)
				assert.Equal(t, 10, cfg.Worker.WorkerPoolSize)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  user: testuser
  dbname: indexer
nats:
  url: "nats://localhost:4222"
`,
			expectError: true,
		},
		{
			name: "missing nats url",
			configFile: `
database:
  host: localhost
  dbname: indexer
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadIndexerConfig(configFile, tmpDir)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadIndexerConfig_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(`
database:
  host: localhost
  dbname: indexer
nats:
  url: "nats://localhost:4222"
`), 0600)
	require.NoError(t, err)

	t.Setenv("POTLOCK_INDEXER_DATABASE_HOST", "db.internal")
	t.Setenv("POTLOCK_INDEXER_CONTRACTS_DONATE_ACCOUNT_ID", "donate.potlock.testnet")

	cfg, err := LoadIndexerConfig(configFile, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "donate.potlock.testnet", cfg.Contracts.DonateAccountID)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "indexer",
		Password: "secret",
		DBName:   "potlock",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=indexer password=secret dbname=potlock sslmode=disable",
		cfg.DSN())
}
