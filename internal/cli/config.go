package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sugiyama/pkg/pipeline"
)

// configFile is the user config path, following the XDG convention the
// same way cacheDir does.
const configFile = "config.toml"

// Config holds user-level defaults read from
// ~/.config/layoutctl/config.toml, overriding the package defaults but
// themselves overridden by any flag the user actually passes.
type Config struct {
	Direction         string  `toml:"direction"`
	NodeSeparation    float64 `toml:"node_separation"`
	RankSeparation    float64 `toml:"rank_separation"`
	MaxSweeps         int     `toml:"max_sweeps"`
	CrossingHeuristic string  `toml:"crossing_heuristic"`
	ExhaustiveBelow   int     `toml:"exhaustive_below"`
	Formats           string  `toml:"formats"`
	NoCache           bool    `toml:"no_cache"`
	MongoURI          string  `toml:"mongo_uri"`
}

// configDir resolves ~/.config/layoutctl (or $XDG_CONFIG_HOME/layoutctl).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the user config file, if present. A missing file is not
// an error - it simply means the package defaults apply unmodified.
func loadConfig() (Config, error) {
	var cfg Config
	dir, err := configDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyTo overlays non-zero config values onto opts, used before a
// command registers its flags so `--flag` still wins over the config file
// and the config file still wins over the package defaults.
func (cfg Config) applyTo(opts *pipeline.Options) {
	if cfg.Direction != "" {
		opts.Direction = cfg.Direction
	}
	if cfg.NodeSeparation > 0 {
		opts.NodeSeparation = cfg.NodeSeparation
	}
	if cfg.RankSeparation > 0 {
		opts.RankSeparation = cfg.RankSeparation
	}
	if cfg.MaxSweeps > 0 {
		opts.MaxSweeps = cfg.MaxSweeps
	}
	if cfg.CrossingHeuristic != "" {
		opts.CrossingHeuristic = cfg.CrossingHeuristic
	}
	if cfg.ExhaustiveBelow > 0 {
		opts.ExhaustiveBelow = cfg.ExhaustiveBelow
	}
}
