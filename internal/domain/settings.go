package domain

// Settings documents are singletons keyed by a type discriminator.
const (
	SettingsTypeRetention   = "retention"
	SettingsTypeLiveConsole = "live_console"
)

type RetentionSettings struct {
	RetentionPeriod   string `json:"retentionPeriod"`
	AutoDeleteOldLogs bool   `json:"autoDeleteOldLogs"`
}

type LiveConsoleSettings struct {
	AutoRefreshInterval string `json:"autoRefreshInterval"`
	MaxLogsToDisplay    string `json:"maxLogsToDisplay"`
}
