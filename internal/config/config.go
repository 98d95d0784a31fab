/*
Package config loads the optional mrya.yaml project file: the install root
used for `package:` imports (spec §4.5), a REPL prompt, and a server port.
The CLI reads only the install root; the prompt and port are parsed but not
used by the repl or server commands.
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	InstallRoot string     `yaml:"install_root"`
	REPL        REPL       `yaml:"repl"`
	Server      ServerSpec `yaml:"server"`
}

type REPL struct {
	Prompt string `yaml:"prompt"`
}

type ServerSpec struct {
	Port int `yaml:"port"`
}

// Default returns the configuration used when no mrya.yaml is present.
func Default() *Config {
	return &Config{
		InstallRoot: defaultInstallRoot(),
		REPL:        REPL{Prompt: "mrya> "},
		Server:      ServerSpec{Port: 8080},
	}
}

func defaultInstallRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mrya"
	}
	return home + "/.mrya"
}

// Load reads path (typically "mrya.yaml" in the current directory) and
// overlays it onto Default(). A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
