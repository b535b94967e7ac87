// Package config loads bignum settings from defaults, an optional config
// file, BIGNUM_ environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/bignum/bigmath"
	"github.com/calebcase/bignum/decimal"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// EnvPrefix is prepended to environment variable names. The key
// decimal.scale is read from BIGNUM_DECIMAL_SCALE.
const EnvPrefix = "BIGNUM"

// Config holds all settings.
type Config struct {
	Decimal DecimalConfig `mapstructure:"decimal"`
	Numeral NumeralConfig `mapstructure:"numeral"`
	BigMath BigMathConfig `mapstructure:"bigmath"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DecimalConfig holds the decimal context defaults.
type DecimalConfig struct {
	Scale      int `mapstructure:"scale"`
	FloorProbe int `mapstructure:"floor_probe"`
}

// NumeralConfig selects conversion paths and extra named systems. Keys of
// Systems are lower cased by the loader; Named keeps names as written.
type NumeralConfig struct {
	Native      bool              `mapstructure:"native"`
	Accelerated bool              `mapstructure:"accelerated"`
	Systems     map[string]string `mapstructure:"systems"`
	Named       []SystemConfig    `mapstructure:"named"`
}

// SystemConfig is one named numeral system.
type SystemConfig struct {
	Name  string `mapstructure:"name"`
	Chars string `mapstructure:"chars"`
}

// BigMathConfig selects the integer backend.
type BigMathConfig struct {
	Strategy string `mapstructure:"strategy"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// Flags maps command line flag names to configuration keys.
var Flags = map[string]string{
	"scale":       "decimal.scale",
	"floor-probe": "decimal.floor_probe",
	"strategy":    "bigmath.strategy",
	"log-level":   "logging.level",
	"log-format":  "logging.format",
}

// Load reads the configuration. An empty path searches for bignum.yaml in
// the working directory and skips it when missing; an explicit path must
// exist. Flags listed in Flags are bound when present in fs, which may be
// nil.
func Load(path string, fs *pflag.FlagSet) (_ *Config, err error) {
	defer Error.WrapP(&err)

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("bignum")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if fs != nil {
		for name, key := range Flags {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}

			err = v.BindPFlag(key, flag)
			if err != nil {
				return nil, err
			}
		}
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, Error.New("failed to read config: %v", err)
		}
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, Error.New("failed to unmarshal config: %v", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("decimal.scale", decimal.DefaultScale)
	v.SetDefault("decimal.floor_probe", decimal.DefaultFloorProbe)

	v.SetDefault("numeral.native", true)
	v.SetDefault("numeral.accelerated", true)
	v.SetDefault("numeral.systems", map[string]string{})

	v.SetDefault("bigmath.strategy", string(bigmath.Auto))

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Decimal.Scale < 0 {
		return Error.New("decimal.scale must not be negative: %d", c.Decimal.Scale)
	}

	if c.Decimal.FloorProbe < 1 {
		return Error.New("decimal.floor_probe must be at least 1: %d", c.Decimal.FloorProbe)
	}

	for i, sys := range c.Numeral.Named {
		if sys.Name == "" {
			return Error.New("numeral.named[%d] has no name", i)
		}
	}

	switch s := bigmath.Strategy(c.BigMath.Strategy); s {
	case bigmath.Auto, bigmath.Decimal, bigmath.BigInt, bigmath.Pure:
	default:
		return Error.New("unknown bigmath.strategy: %q", s)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return Error.New("unknown logging.level: %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return Error.New("unknown logging.format: %q", c.Logging.Format)
	}

	return nil
}
