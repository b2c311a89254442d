package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "iconforge.toml"

// defaultBaseName is the fixed artifact base name; only the extension
// varies with the packaging outcome.
const defaultBaseName = "app_icon"

// Config controls where artifacts are written and which platform strategy
// runs. Precedence is defaults < config file < flags.
type Config struct {
	Output   string `toml:"output"`    // output directory
	BaseName string `toml:"base_name"` // artifact base name
	Platform string `toml:"platform"`  // GOOS value selecting the strategy
}

// defaultConfig returns the built-in defaults: artifacts land next to the
// invocation, named app_icon.*, for the host platform.
func defaultConfig() Config {
	return Config{Output: ".", BaseName: defaultBaseName, Platform: runtime.GOOS}
}

// loadConfig reads the TOML file at path on top of the built-in defaults.
// An empty path means "use iconforge.toml if it exists"; a missing file is
// only an error when it was named explicitly.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
