package main

import (
	"flag"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
)

// Config of a workload. Every field can come from the TOML file given by -config or from the flag of the
// same name; flags given on the command line win.
type Config struct {
	Ops         int     `toml:"ops"`
	KeyRange    int     `toml:"key-range"`
	InsertRatio float64 `toml:"insert-ratio"`
	SelectRatio float64 `toml:"select-ratio"`
	VerifyEvery int     `toml:"verify-every"`
	Seed        int64   `toml:"seed"`
	Hint        uint32  `toml:"hint"`
	LogLevel    string  `toml:"log-level"`
}

func defaultConfig() *Config {
	return &Config{
		Ops:         1000000,
		KeyRange:    1 << 18,
		InsertRatio: 0.5,
		SelectRatio: 0.1,
		VerifyEvery: 100000,
		LogLevel:    "info",
	}
}

func parseConfig(args []string) (*Config, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("measure", flag.ContinueOnError)
	path := fs.String("config", "", "path of the TOML workload file")
	fs.IntVar(&cfg.Ops, "ops", cfg.Ops, "number of operations")
	fs.IntVar(&cfg.KeyRange, "key-range", cfg.KeyRange, "keys are drawn uniformly from [0, key-range)")
	fs.Float64Var(&cfg.InsertRatio, "insert-ratio", cfg.InsertRatio, "share of the operations that are inserts")
	fs.Float64Var(&cfg.SelectRatio, "select-ratio", cfg.SelectRatio, "share of the operations that are selects; the rest are deletes")
	fs.IntVar(&cfg.VerifyEvery, "verify-every", cfg.VerifyEvery, "check every invariant after this many operations, 0 to only check at the end")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the random generator")
	var hint uint
	fs.UintVar(&hint, "hint", uint(cfg.Hint), "initial arena capacity")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, errors.WithStack(err)
	}
	if *path != "" {
		meta, err := toml.DecodeFile(*path, cfg)
		if err != nil {
			return nil, errors.Annotatef(err, "load %s", *path)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.Errorf("%s contains undefined items: %s", *path, strings.Join(keys, ", "))
		}
		hint = uint(cfg.Hint)
		// again, so the command line overrides the file.
		if err := fs.Parse(args); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	cfg.Hint = uint32(hint)
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch {
	case c.Ops < 0:
		return errors.Errorf("negative ops %d", c.Ops)
	case c.KeyRange <= 0:
		return errors.Errorf("key-range must be positive, got %d", c.KeyRange)
	case c.InsertRatio < 0 || c.SelectRatio < 0 || c.InsertRatio+c.SelectRatio > 1:
		return errors.Errorf("ratios must be non negative and add up to at most 1, got insert %v select %v", c.InsertRatio, c.SelectRatio)
	case c.VerifyEvery < 0:
		return errors.Errorf("negative verify-every %d", c.VerifyEvery)
	}
	return nil
}
