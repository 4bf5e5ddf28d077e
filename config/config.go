// Package config loads solver settings from flags, SIMPLEX_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"q.log/tableau-simplex/report"
	"q.log/tableau-simplex/tableau"
)

const (
	KeyEpsilon       = "epsilon"
	KeyMaxIterations = "max-iterations"
	KeyInputFormat   = "input-format"
	KeyOutput        = "output"
	KeyLogLevel      = "log-level"

	InputText = "text"
	InputMPS  = "mps"
)

type Config struct {
	Epsilon       float64
	MaxIterations int
	InputFormat   string
	Output        report.Format
	LogLevel      logrus.Level
}

// AddFlags registers the solver flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.Float64(KeyEpsilon, tableau.Epsilon, "tolerance of every sign and zero test")
	fs.Int(KeyMaxIterations, 0, "maximum number of pivots, 0 for no limit")
	fs.String(KeyInputFormat, InputText, "input format: text or mps")
	fs.StringP(KeyOutput, "o", string(report.Text), "output format: text, yaml or json")
	fs.String(KeyLogLevel, logrus.WarnLevel.String(), "log level")
}

// New returns a viper instance bound to fs and to the SIMPLEX_ environment.
// A non-empty file is read as a config file.
func New(fs *pflag.FlagSet, file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("simplex")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "config: bind flags")
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", file)
		}
	}
	return v, nil
}

// Load validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault(KeyEpsilon, tableau.Epsilon)
	v.SetDefault(KeyInputFormat, InputText)
	v.SetDefault(KeyOutput, string(report.Text))
	v.SetDefault(KeyLogLevel, logrus.WarnLevel.String())

	c := &Config{
		Epsilon:       v.GetFloat64(KeyEpsilon),
		MaxIterations: v.GetInt(KeyMaxIterations),
		InputFormat:   strings.ToLower(v.GetString(KeyInputFormat)),
	}
	if c.Epsilon <= 0 {
		return nil, errors.Errorf("config: %s must be positive, got %v", KeyEpsilon, c.Epsilon)
	}
	if c.MaxIterations < 0 {
		return nil, errors.Errorf("config: %s must not be negative, got %d", KeyMaxIterations, c.MaxIterations)
	}
	if c.InputFormat != InputText && c.InputFormat != InputMPS {
		return nil, errors.Errorf("config: unknown %s %q", KeyInputFormat, c.InputFormat)
	}

	out, err := report.ParseFormat(v.GetString(KeyOutput))
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	c.Output = out

	lvl, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	c.LogLevel = lvl

	return c, nil
}
