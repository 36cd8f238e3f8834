package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides: PERCEPTRON_MAX_ITERATIONS etc.
const envPrefix = "PERCEPTRON"

const (
	modeTrain = "train"
	modeSweep = "sweep"
)

// errHelp is returned when -h/--help was requested; usage is already printed.
var errHelp = errors.New("help requested")

// Config is the full driver configuration. Precedence, lowest first:
// defaults, config file, environment, command-line flags.
type Config struct {
	Mode          string  `mapstructure:"mode"           validate:"oneof=train sweep"`
	Dataset       string  `mapstructure:"dataset"        validate:"oneof=separable affine xor contradiction"`
	Dims          int     `mapstructure:"dims"           validate:"min=1"`
	Samples       int     `mapstructure:"samples"        validate:"min=1"`
	Margin        float64 `mapstructure:"margin"         validate:"gte=0,lt=1"`
	Offset        float64 `mapstructure:"offset"`
	DataSeed      int64   `mapstructure:"data-seed"`
	TrainSeed     int64   `mapstructure:"train-seed"`
	Bias          bool    `mapstructure:"bias"`
	MaxIterations int     `mapstructure:"max-iterations" validate:"min=0"`
	Runs          int     `mapstructure:"runs"           validate:"min=1"`
	Workers       int     `mapstructure:"workers"        validate:"min=1"`
	Trace         bool    `mapstructure:"trace"`

	LogConfig `mapstructure:",squash"`
}

// LogConfig controls the driver's structured logger.
type LogConfig struct {
	Level      string `mapstructure:"log-level"       validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"log-format"      validate:"oneof=json text"`
	File       string `mapstructure:"log-file"`
	MaxSize    int    `mapstructure:"log-max-size"    validate:"min=0"` // MB
	MaxBackups int    `mapstructure:"log-max-backups" validate:"min=0"`
	MaxAge     int    `mapstructure:"log-max-age"     validate:"min=0"` // days
	Compress   bool   `mapstructure:"log-compress"`
}

// newFlagSet declares every flag together with its default value.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("perceptron", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.String("config", "", "optional config file (yaml, toml or json)")
	fs.String("dataset", "separable", "dataset kind: separable|affine|xor|contradiction")
	fs.Int("dims", 2, "feature dimension d (ignored by xor and contradiction)")
	fs.Int("samples", 100, "number of samples m (ignored by contradiction)")
	fs.Float64("margin", 0.05, "minimum distance of generated samples from the separator, in [0,1)")
	fs.Float64("offset", 0.25, "separator offset for the affine dataset")
	fs.Int64("data-seed", 1, "seed of the dataset generator")
	fs.Int64("train-seed", 0, "seed of the violated-sample source (0 selects the library default)")
	fs.Bool("bias", true, "learn an affine separator by appending a constant-1 feature")
	fs.Int("max-iterations", 1_000_000, "upper bound on update steps")
	fs.Int("runs", 8, "sweep: number of independently seeded runs")
	fs.Int("workers", runtime.NumCPU(), "sweep: maximum concurrent runs")
	fs.Bool("trace", false, "log every update step")

	fs.String("log-level", "info", "log level: debug|info|warn|error")
	fs.String("log-format", "text", "log format: json|text")
	fs.String("log-file", "", "write logs to this file with rotation instead of stdout")
	fs.Int("log-max-size", 100, "log file size limit in MB before rotation")
	fs.Int("log-max-backups", 3, "rotated log files to keep")
	fs.Int("log-max-age", 28, "days to keep rotated log files")
	fs.Bool("log-compress", false, "gzip rotated log files")

	return fs
}

// loadConfig parses args (without the program name) into a validated Config.
// Usage and flag errors are written to stderr.
// The first positional argument selects the mode and defaults to train.
func loadConfig(args []string, stderr io.Writer) (*Config, error) {
	fs := newFlagSet()
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, errHelp
		}
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	mode := modeTrain
	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		mode = rest[0]
	default:
		return nil, fmt.Errorf("unexpected arguments: %v", rest[1:])
	}
	v.Set("mode", mode)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config error: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
