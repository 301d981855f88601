package config

// this holds the resolved configuration values from CLI
var (
	URL             string // URL of the telemetry relay (websocket)
	RefreshInterval string // display refresh interval
	WaitForRelay    string // duration to wait for the relay to be reachable
	LogLevel        string // sets the log level (zap log level values)
	LogFormat       string // text vs json
	ReplayFile      string // path of a recorded feed (replay command)
	ReplaySpeed     int    // replay speed (0 means: go as fast as possible)
)
