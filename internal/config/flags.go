package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s/-server vault server base URL
//	-d local database path (SQLite DSN)
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-session-policy session timeout policy: never | instant | after
//	-session-timeout session lifetime under the "after" policy (e.g., "15m")
//	-sync-interval background sync interval (e.g., "5m")
//	-log-file log file path
func ParseFlags() *StructuredConfig {
	var serverBaseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var sessionPolicy string
	var sessionTimeout time.Duration
	var syncInterval time.Duration
	var logFilePath string

	flag.StringVar(&serverBaseURL, "s", "", "Vault server base URL")
	flag.StringVar(&serverBaseURL, "server", "", "Vault server base URL (alias)")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&sessionPolicy, "session-policy", "", "Session timeout policy: never | instant | after")
	flag.DurationVar(&sessionTimeout, "session-timeout", 0, "Session lifetime under the 'after' policy (e.g., 15m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.StringVar(&logFilePath, "log-file", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			BaseURL:        serverBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Session: Session{
			TimeoutPolicy: sessionPolicy,
			Timeout:       sessionTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Log: Log{
			FilePath: logFilePath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
