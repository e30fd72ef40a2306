// Package config loads runtime settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/abcedion/audio"
	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/engine"
	"github.com/lixenwraith/abcedion/locale"
	"github.com/lixenwraith/abcedion/persist"
)

// Environment variable names
const (
	EnvSavePath      = "ABCEDION_SAVE_PATH"
	EnvLogPath       = "ABCEDION_LOG_PATH"
	EnvLogLevel      = "ABCEDION_LOG_LEVEL"
	EnvAudioEnabled  = "ABCEDION_AUDIO_ENABLED"
	EnvMasterVolume  = "ABCEDION_MASTER_VOLUME"
	EnvSFXVolumes    = "ABCEDION_SFX_VOLUMES"
	EnvGenAIKey      = "ABCEDION_GENAI_API_KEY"
	EnvGeminiKey     = "GEMINI_API_KEY"
	EnvInviteBaseURL = "ABCEDION_INVITE_BASE_URL"
)

// Color modes
const (
	ColorAuto = "auto"
	ColorMono = "mono"
)

// DefaultLogoModel is the image model used for logo generation
const DefaultLogoModel = "gemini-2.5-flash-image"

// Config is the full runtime configuration
type Config struct {
	SavePath          string `toml:"save_path"`
	LogPath           string `toml:"log_path"`
	LogLevel          string `toml:"log_level"`
	Language          string `toml:"language"`
	Color             string `toml:"color"`
	InviteBaseURL     string `toml:"invite_base_url"`
	TaskResetSchedule string `toml:"task_reset_schedule"`
	TickMs            int    `toml:"tick_ms"`
	FrameMs           int    `toml:"frame_ms"`
	Keymap            string `toml:"keymap"` // Optional key binding overrides

	Audio AudioSection `toml:"audio"`
	Logo  LogoSection  `toml:"logo"`
}

// AudioSection configures sound cues
type AudioSection struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume int                `toml:"master_volume"` // 0-100
	SFXVolumes   map[string]float64 `toml:"sfx_volumes"`
}

// LogoSection configures startup logo generation
type LogoSection struct {
	Enabled bool   `toml:"enabled"`
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
}

// Default returns the configuration used when no file or environment is given
func Default() *Config {
	dataDir := persist.DataDir()
	return &Config{
		SavePath:          filepath.Join(dataDir, persist.FileName),
		LogPath:           filepath.Join(dataDir, "abcedion.log"),
		LogLevel:          "info",
		Color:             ColorAuto,
		InviteBaseURL:     "https://t.me/abcedion_bot?start=",
		TaskResetSchedule: constants.DefaultTaskResetSchedule,
		TickMs:            int(constants.TickInterval.Milliseconds()),
		FrameMs:           int(constants.FrameInterval.Milliseconds()),
		Audio: AudioSection{
			Enabled:      true,
			MasterVolume: int(constants.DefaultMasterVolume * 100),
		},
		Logo: LogoSection{
			Enabled: true,
			Model:   DefaultLogoModel,
		},
	}
}

// DefaultPath is the config file looked up when -config is not given
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "abcedion", "config.toml")
	}
	return "config.toml"
}

// Load reads defaults, then the file at path, then the environment
// A missing file is only an error when required is set
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read through getenv
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvSavePath); v != "" {
		c.SavePath = v
	}
	if v := getenv(EnvLogPath); v != "" {
		c.LogPath = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvInviteBaseURL); v != "" {
		c.InviteBaseURL = v
	}

	if v := getenv(EnvAudioEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = enabled
	}
	if v := getenv(EnvMasterVolume); v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = vol
	}
	if v := getenv(EnvSFXVolumes); v != "" {
		vols, err := audio.ParseEffectVolumes(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSFXVolumes, err)
		}
		if c.Audio.SFXVolumes == nil {
			c.Audio.SFXVolumes = make(map[string]float64, len(vols))
		}
		for k, vol := range vols {
			c.Audio.SFXVolumes[k] = vol
		}
	}

	if v := getenv(EnvGenAIKey); v != "" {
		c.Logo.APIKey = v
	} else if v := getenv(EnvGeminiKey); v != "" && c.Logo.APIKey == "" {
		c.Logo.APIKey = v
	}
	return nil
}

// Validate rejects out-of-range values
func (c *Config) Validate() error {
	if c.SavePath == "" {
		return errors.New("save_path must not be empty")
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		return fmt.Errorf("audio.master_volume %d outside 0-100", c.Audio.MasterVolume)
	}
	for name, v := range c.Audio.SFXVolumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			return fmt.Errorf("audio.sfx_volumes: unknown sound %q", name)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("audio.sfx_volumes.%s %v outside 0-1", name, v)
		}
	}
	if c.Language != "" && !locale.Language(c.Language).Valid() {
		return fmt.Errorf("language %q not supported", c.Language)
	}
	if c.Color != ColorAuto && c.Color != ColorMono {
		return fmt.Errorf("color %q must be %s or %s", c.Color, ColorAuto, ColorMono)
	}
	if c.TickMs <= 0 || c.FrameMs <= 0 {
		return fmt.Errorf("tick_ms and frame_ms must be positive")
	}
	if _, err := engine.ParseResetSchedule(c.TaskResetSchedule); err != nil {
		return err
	}
	return nil
}

// AudioConfig converts the audio section for the sound manager
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.MasterVolume) / 100
	// Names were checked by Validate
	_ = ac.SetEffectVolumes(c.Audio.SFXVolumes)
	return ac
}

// LogoEnabled reports whether a generation request may be made
func (c *Config) LogoEnabled() bool {
	return c.Logo.Enabled && c.Logo.APIKey != ""
}
