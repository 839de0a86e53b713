package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultFPS      = 30
	defaultFontSize = 16.0
)

// MaxFPS caps the frame rate from any source: config file, flag or
// runtime command.
const MaxFPS = 120

// General holds the [general] section.
type General struct {
	Effect      string  `toml:"effect"`
	Banner      string  `toml:"banner"`
	FPS         int     `toml:"fps"`
	FontSize    float64 `toml:"font_size"`
	LowPower    bool    `toml:"low_power"`
	PauseOnBlur bool    `toml:"pause_on_blur"`
	Sound       bool    `toml:"sound"`
}

// Memory holds the [memory] section. SoftLimitMB of zero disables the
// pressure watcher.
type Memory struct {
	SoftLimitMB  int `toml:"soft_limit_mb"`
	SampleFrames int `toml:"sample_frames"`
}

// Config is the full config.toml. Keys maps key names to action names
// and overrides the built-in navigation bindings; "none" unbinds.
type Config struct {
	General General           `toml:"general"`
	Keys    map[string]string `toml:"keys"`
	Memory  Memory            `toml:"memory"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		General: General{
			Banner:      "default",
			FPS:         defaultFPS,
			FontSize:    defaultFontSize,
			PauseOnBlur: true,
			Sound:       true,
		},
		Memory: Memory{SampleFrames: 90},
	}
}

// DefaultPath returns the conventional config location, or empty when
// the user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "termfolio", "config.toml")
}

// Load reads the config at path, or the default location when path is
// empty. A missing file is not an error; a file that fails to parse
// returns defaults alongside the error so the caller can log and keep
// going.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.General.FPS <= 0 {
		c.General.FPS = defaultFPS
	}
	if c.General.FPS > MaxFPS {
		c.General.FPS = MaxFPS
	}
	if c.General.FontSize <= 0 {
		c.General.FontSize = defaultFontSize
	}
	if c.Memory.SampleFrames <= 0 {
		c.Memory.SampleFrames = 90
	}
}

// FrameInterval converts the configured FPS into a tick interval,
// doubled in low power mode.
func (c Config) FrameInterval() time.Duration {
	fps := c.General.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	interval := time.Second / time.Duration(fps)
	if c.General.LowPower {
		interval *= 2
	}
	return interval
}

// SoftLimitBytes converts the memory soft limit into bytes.
func (m Memory) SoftLimitBytes() uint64 {
	if m.SoftLimitMB <= 0 {
		return 0
	}
	return uint64(m.SoftLimitMB) * 1024 * 1024
}
