package config

const (
	defaultConfigPath       = "~/.config/assparse/config.toml"
	defaultLogDir           = "~/.local/share/assparse/logs"
	defaultAPIBind          = "127.0.0.1:7488"
	defaultWorkers          = 4
	defaultMaxInputBytes    = 64 * 1024
	defaultMemoryTTLSeconds = 600
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogMaxSizeMB     = 10
	defaultLogMaxBackups    = 5
	defaultLogMaxAgeDays    = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir(),
			LogDir:   defaultLogDir,
		},
		API: API{
			Bind: defaultAPIBind,
		},
		Parser: Parser{
			Workers:       defaultWorkers,
			MaxInputBytes: defaultMaxInputBytes,
		},
		Cache: Cache{
			Enabled:          true,
			MemoryTTLSeconds: defaultMemoryTTLSeconds,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
