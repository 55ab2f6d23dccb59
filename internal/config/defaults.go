package config

const (
	defaultDirectory     = "~/Downloads"
	defaultStateDir      = "~/.local/share/tidy"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultRetentionDays = 30
	defaultConfigPath    = "~/.config/tidy/config.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DefaultDirectory: defaultDirectory,
			StateDir:         defaultStateDir,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultRetentionDays,
		},
		Journal: Journal{
			Enabled: true,
		},
	}
}
