package config

const (
	defaultMarkerPrefix       = "::"
	defaultBridgeSocket       = "~/.local/share/titlesync/bridge.sock"
	defaultBridgeDialTimeout  = 2
	defaultLogDir             = "~/.local/share/titlesync/logs"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultJournalEnabled     = true
	defaultSkipHiddenTextAttr = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Markers: Markers{
			Prefix: defaultMarkerPrefix,
		},
		Bridge: Bridge{
			Socket:             defaultBridgeSocket,
			DialTimeoutSeconds: defaultBridgeDialTimeout,
		},
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Journal: Journal{
			Enabled: defaultJournalEnabled,
		},
		Overlays: Overlays{
			SkipHiddenTextAttributes: defaultSkipHiddenTextAttr,
		},
	}
}
