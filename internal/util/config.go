package util

import (
	"github.com/BurntSushi/toml"
)

type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	DBDriver string `toml:"db_driver"`
	DBConn   string `toml:"db_conn"`
	DBTable  string `toml:"db_table"`
}

// LoadConfiguration overlays values from a TOML file onto cfg. Flags parsed
// by the caller win over file values, so callers apply this first.
func LoadConfiguration(path string, cfg *Configuration) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}
