package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	dbm "github.com/cosmos/cosmos-db"

	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

const (
	FlagHome      = "home"
	FlagAuthority = "authority"
	FlagLogLevel  = "log_level"
	FlagLogFormat = "log_format"
	FlagDBBackend = "db_backend"

	EnvPrefix      = "OFTD"
	ConfigFileName = "oftd.yaml"

	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

// DefaultNodeHome is the default home directory of oftd.
var DefaultNodeHome = defaultNodeHome()

func defaultNodeHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".oftd"
	}
	return filepath.Join(home, ".oftd")
}

// Config holds the settings of a single oftd invocation, read in order of
// increasing precedence from defaults, <home>/config/oftd.yaml, OFTD_*
// environment variables and command line flags.
type Config struct {
	Home      string `mapstructure:"home"`
	Authority string `mapstructure:"authority"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	DBBackend string `mapstructure:"db_backend"`

	authority types.PrincipalID
	logLevel  zerolog.Level
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(FlagHome, DefaultNodeHome)
	v.SetDefault(FlagLogLevel, zerolog.InfoLevel.String())
	v.SetDefault(FlagLogFormat, LogFormatPlain)
	v.SetDefault(FlagDBBackend, string(dbm.GoLevelDBBackend))
}

// LoadConfig builds the configuration from flags, environment and the config
// file found under the resolved home directory.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configPath := filepath.Join(v.GetString(FlagHome), "config", ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// Validate checks the configuration and resolves the parsed authority and log level.
func (c *Config) Validate() error {
	if c.Home == "" {
		return errors.New("home cannot be empty")
	}

	if c.Authority == "" {
		return fmt.Errorf("authority must be set with --%s, %s_AUTHORITY or in %s", FlagAuthority, EnvPrefix, ConfigFileName)
	}
	authority, err := types.ParsePrincipalID(c.Authority)
	if err != nil {
		return fmt.Errorf("invalid authority: %w", err)
	}
	c.authority = authority

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	c.logLevel = level

	switch c.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q, expected %s or %s", c.LogFormat, LogFormatPlain, LogFormatJSON)
	}

	switch dbm.BackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend, dbm.MemDBBackend:
	default:
		return fmt.Errorf("unsupported db backend %q", c.DBBackend)
	}

	return nil
}

// DataDir is the directory holding the database.
func (c *Config) DataDir() string {
	return filepath.Join(c.Home, "data")
}
