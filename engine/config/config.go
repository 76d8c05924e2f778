// Package config reads experiment configuration files. The format follows
// the file extension: .yaml or .yml for YAML, .toml for TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/keys"
	"github.com/hubastard/stimgrove/engine/logging"
)

// ErrUnknownFormat is returned by Load for files whose extension names no
// supported format.
var ErrUnknownFormat = errors.New("unknown config format")

// Config is the complete experiment configuration.
type Config struct {
	Window     core.Config `yaml:"window" toml:"window"`
	Log        Log         `yaml:"log" toml:"log"`
	Debug      Debug       `yaml:"debug" toml:"debug"`
	Experiment Experiment  `yaml:"experiment" toml:"experiment"`
}

type Log struct {
	Level logging.Level `yaml:"level" toml:"level"`
	// Echo copies log entries to stderr.
	Echo bool `yaml:"echo" toml:"echo"`
	// Store is the path of a bbolt database receiving every entry. Empty
	// disables it.
	Store string `yaml:"store" toml:"store"`
	// Session names the store bucket. Empty means the start time.
	Session string `yaml:"session" toml:"session"`
}

type Debug struct {
	// Profile is the path of a speedscope file written on exit. Empty
	// disables profiling.
	Profile string `yaml:"profile" toml:"profile"`
	// StatsView is the address of the runtime stats page. Empty disables it.
	StatsView string `yaml:"statsview" toml:"statsview"`
}

// Experiment describes a simple choice reaction task. Durations are in
// seconds.
type Experiment struct {
	Trials int `yaml:"trials" toml:"trials"`
	// ResponseKeys are legacy key names or standard codes, eg. "f" or
	// "KeyF". Responses are reported under their legacy names.
	ResponseKeys []string `yaml:"response_keys" toml:"response_keys"`
	// Targets are the texts shown, one per trial in rotation.
	Targets  []string `yaml:"targets" toml:"targets"`
	Fixation float64  `yaml:"fixation" toml:"fixation"`
	Timeout  float64  `yaml:"timeout" toml:"timeout"`
	// TextHeight is the target height in pixels.
	TextHeight float64 `yaml:"text_height" toml:"text_height"`
	// Font is a TTF file in the assets fonts directory. Empty means the
	// built-in face.
	Font string `yaml:"font" toml:"font"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: core.Config{
			Title:  "stimgrove",
			Width:  1280,
			Height: 720,
			VSync:  true,
			Color:  colors.Gray,
		},
		Log: Log{
			Level: logging.Exp,
			Echo:  true,
		},
		Experiment: Experiment{
			Trials:       10,
			ResponseKeys: []string{"f", "j"},
			Targets:      []string{"F", "J"},
			Fixation:     0.5,
			Timeout:      2,
			TextHeight:   64,
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(b), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
		if und := md.Undecoded(); len(und) > 0 {
			return cfg, fmt.Errorf("decode %s: unknown key %q", path, und[0].String())
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	e := c.Experiment
	if e.Trials < 0 {
		return fmt.Errorf("negative trial count %d", e.Trials)
	}
	if len(e.ResponseKeys) == 0 {
		return errors.New("no response keys")
	}
	for _, k := range e.ResponseKeys {
		if !keys.IsKnown(k) {
			return fmt.Errorf("unknown response key %q", k)
		}
	}
	if e.Trials > 0 && len(e.Targets) == 0 {
		return errors.New("no targets")
	}
	if e.Fixation < 0 || e.Timeout < 0 {
		return errors.New("negative duration")
	}
	if e.TextHeight <= 0 {
		return fmt.Errorf("text height %v", e.TextHeight)
	}
	return nil
}
