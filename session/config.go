// Package session executes astcql statements and batches through gocql.
//
// It does not manage connections: callers own the *gocql.Session (or any
// other Querier) and hand it to New.
package session

import (
	"flag"
	"time"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config for an Executor.
type Config struct {
	Consistency       string        `yaml:"consistency"`
	SerialConsistency string        `yaml:"serial_consistency"`
	Timeout           time.Duration `yaml:"timeout"`
	Idempotent        bool          `yaml:"idempotent"`
	Keyspace          string        `yaml:"keyspace"`
}

// RegisterFlags adds the flags required to config this to the given FlagSet
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("cql.", f)
}

// RegisterFlagsWithPrefix adds the flags required to config this to the given FlagSet, with prefix.
func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.StringVar(&cfg.Consistency, prefix+"consistency", "QUORUM", "Consistency level for executed statements.")
	f.StringVar(&cfg.SerialConsistency, prefix+"serial-consistency", "", "Serial consistency level for conditional statements (SERIAL or LOCAL_SERIAL). Empty uses the session default.")
	f.DurationVar(&cfg.Timeout, prefix+"timeout", 0, "Per-statement timeout. 0 disables it.")
	f.BoolVar(&cfg.Idempotent, prefix+"idempotent", false, "Mark executed statements as idempotent so the driver may retry them.")
	f.StringVar(&cfg.Keyspace, prefix+"keyspace", "", "Keyspace reported for statements that do not name one.")
}

// DefaultConfig returns a Config holding the flag defaults.
func DefaultConfig() Config {
	var cfg Config
	cfg.RegisterFlags(flag.NewFlagSet("", flag.PanicOnError))
	return cfg
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing cql config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the consistency levels and the timeout.
func (cfg *Config) Validate() error {
	if _, err := cfg.consistency(); err != nil {
		return err
	}
	if _, _, err := cfg.serialConsistency(); err != nil {
		return err
	}
	if cfg.Timeout < 0 {
		return errors.Errorf("invalid timeout %s: must not be negative", cfg.Timeout)
	}
	return nil
}

func (cfg *Config) consistency() (gocql.Consistency, error) {
	c, err := gocql.ParseConsistencyWrapper(cfg.Consistency)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid consistency %q", cfg.Consistency)
	}
	return c, nil
}

// serialConsistency reports false when no serial consistency is configured.
func (cfg *Config) serialConsistency() (gocql.SerialConsistency, bool, error) {
	if cfg.SerialConsistency == "" {
		return 0, false, nil
	}
	var s gocql.SerialConsistency
	if err := s.UnmarshalText([]byte(cfg.SerialConsistency)); err != nil {
		return 0, false, errors.Wrapf(err, "invalid serial consistency %q", cfg.SerialConsistency)
	}
	return s, true, nil
}
