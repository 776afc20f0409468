package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the per-project configuration file, read from the
// working directory once at startup.
const ConfigFile = "config.toml"

// Script choices accepted in config.toml. Anything else falls back to
// ChoiceMacZsh, which maps to the tested default script.
const (
	ChoiceMacZsh  = "mac_zsh"
	ChoiceMacBash = "mac_bash"
	ChoiceWindows = "windows"
)

// Config holds the user configuration.
type Config struct {
	FilecountScript string `toml:"filecount_script"`
}

// Default returns the configuration used when no config.toml exists.
func Default() Config {
	return Config{FilecountScript: ChoiceMacZsh}
}

// Load reads config.toml from the working directory. A missing file is
// not an error and yields Default(); a file that exists but does not
// parse is.
func Load() (Config, error) {
	contents, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}
	return cfg, nil
}

// ScriptForChoice resolves a script choice to the script file name that
// gets staged into the analysis workspace. The mapping is total:
// unrecognized choices resolve to the default script, never an error.
func ScriptForChoice(choice string) string {
	switch choice {
	case ChoiceMacBash:
		return "mac_linux_bash_filecount.sh"
	case ChoiceWindows:
		return "windows_filecount.ps1"
	default:
		return "filecount.sh"
	}
}

// ScriptFile resolves this configuration's script choice.
func (c Config) ScriptFile() string {
	return ScriptForChoice(c.FilecountScript)
}
