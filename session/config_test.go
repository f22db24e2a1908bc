package session

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "QUORUM", cfg.Consistency)
	require.Equal(t, "", cfg.SerialConsistency)
	require.Equal(t, time.Duration(0), cfg.Timeout)
	require.False(t, cfg.Idempotent)
	require.NoError(t, cfg.Validate())
}

func TestConfig_RegisterFlags(t *testing.T) {
	var cfg Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	err := fs.Parse([]string{
		"-cql.consistency=LOCAL_QUORUM",
		"-cql.serial-consistency=LOCAL_SERIAL",
		"-cql.timeout=2s",
		"-cql.idempotent",
		"-cql.keyspace=shop",
	})
	require.NoError(t, err)

	require.Equal(t, Config{
		Consistency:       "LOCAL_QUORUM",
		SerialConsistency: "LOCAL_SERIAL",
		Timeout:           2 * time.Second,
		Idempotent:        true,
		Keyspace:          "shop",
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestConfig_RegisterFlagsWithPrefix(t *testing.T) {
	var cfg Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlagsWithPrefix("events.cql.", fs)

	require.NotNil(t, fs.Lookup("events.cql.consistency"))
	require.Nil(t, fs.Lookup("cql.consistency"))
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
consistency: ONE
timeout: 1500ms
keyspace: shop
`))
	require.NoError(t, err)
	require.Equal(t, "ONE", cfg.Consistency)
	require.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	require.Equal(t, "shop", cfg.Keyspace)
	require.False(t, cfg.Idempotent)
}

func TestParseConfig_KeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("idempotent: true\n"))
	require.NoError(t, err)
	require.Equal(t, "QUORUM", cfg.Consistency)
	require.True(t, cfg.Idempotent)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{name: "consistency", yaml: "consistency: SOMETIMES\n", errMsg: "invalid consistency"},
		{name: "serial consistency", yaml: "serial_consistency: QUORUM\n", errMsg: "invalid serial consistency"},
		{name: "negative timeout", yaml: "timeout: -1s\n", errMsg: "invalid timeout"},
		{name: "malformed", yaml: "consistency: [\n", errMsg: "parsing cql config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
