package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/abcedion/config"
	"github.com/lixenwraith/abcedion/locale"
)

// cliFlags holds command-line overrides; empty strings leave config values alone
type cliFlags struct {
	ConfigPath string
	SavePath   string
	Language   string
	Color      string
	Mute       bool
}

// parseFlags reads args (without the program name)
func parseFlags(args []string, output io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("abcedion", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.ConfigPath, "config", "", "Config file path (default "+config.DefaultPath()+")")
	fs.StringVar(&f.SavePath, "save", "", "Save file path")
	fs.StringVar(&f.Language, "lang", "", "Interface language: ar, en")
	fs.StringVar(&f.Color, "color", "", "Color mode: auto, mono")
	fs.BoolVar(&f.Mute, "mute", false, "Start with sound muted")
	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if f.Language != "" && !locale.Language(f.Language).Valid() {
		return cliFlags{}, fmt.Errorf("-lang %q: must be ar or en", f.Language)
	}
	return f, nil
}

// apply overrides cfg with the flags that were set and revalidates
func (f cliFlags) apply(cfg *config.Config) error {
	if f.SavePath != "" {
		cfg.SavePath = f.SavePath
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}
	if f.Color != "" {
		cfg.Color = f.Color
	}
	return cfg.Validate()
}

// configPath returns the file to load and whether it must exist
func (f cliFlags) configPath() (string, bool) {
	if f.ConfigPath != "" {
		return f.ConfigPath, true
	}
	return config.DefaultPath(), false
}
