package config

import "github.com/spf13/pflag"

const (
	FlagBase       = "base"
	FlagArtist     = "artist"
	FlagTheme      = "theme"
	FlagMaxVersion = "max-version"
	FlagLock       = "lock"
	FlagLogLevel   = "log-level"
	FlagLogFile    = "log-file"
)

// Overrides holds flag values that take precedence over the config file, but
// only for flags the user actually set.
type Overrides struct {
	flags  *pflag.FlagSet
	values Config
}

func BindFlags(flags *pflag.FlagSet) *Overrides {
	overrides := &Overrides{flags: flags}
	defaults := DefaultConfig()
	flags.StringVarP(&overrides.values.BasePath, FlagBase, "b", "", "Base directory shot trees are created under")
	flags.StringVarP(&overrides.values.Artist, FlagArtist, "a", "", "Artist name for mid/<artist>")
	flags.StringVar(&overrides.values.Theme, FlagTheme, defaults.Theme, "UI theme (dark or light)")
	flags.IntVar(&overrides.values.MaxVersion, FlagMaxVersion, defaults.MaxVersion, "Highest version number allowed (0 = unlimited)")
	flags.BoolVar(&overrides.values.Lock.Enabled, FlagLock, defaults.Lock.Enabled, "Hold an advisory lock while picking a version")
	flags.StringVar(&overrides.values.Logging.Level, FlagLogLevel, defaults.Logging.Level, "Log level (debug, info, warn, error)")
	flags.StringVar(&overrides.values.Logging.File, FlagLogFile, "", "Write logs to this file")
	return overrides
}

// Apply copies every changed flag into cfg, then normalizes and validates it.
func (overrides *Overrides) Apply(cfg *Config) error {
	if overrides != nil && overrides.flags != nil {
		changed := overrides.flags.Changed
		if changed(FlagBase) {
			cfg.BasePath = overrides.values.BasePath
		}
		if changed(FlagArtist) {
			cfg.Artist = overrides.values.Artist
		}
		if changed(FlagTheme) {
			cfg.Theme = overrides.values.Theme
		}
		if changed(FlagMaxVersion) {
			cfg.MaxVersion = overrides.values.MaxVersion
		}
		if changed(FlagLock) {
			cfg.Lock.Enabled = overrides.values.Lock.Enabled
		}
		if changed(FlagLogLevel) {
			cfg.Logging.Level = overrides.values.Logging.Level
		}
		if changed(FlagLogFile) {
			cfg.Logging.File = overrides.values.Logging.File
		}
	}
	cfg.normalize()
	return cfg.Validate()
}
