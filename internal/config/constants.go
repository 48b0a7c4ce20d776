package config

import "time"

const (
	// AI request timeout
	RequestTimeout = 90 * time.Second

	// Recent sessions shown in the sidebar
	RecentSessionsLimit = 3

	// Default persona substituted into the system prompt
	DefaultPersona = "编程高手"

	// Server shutdown grace period
	ShutdownTimeout = 10 * time.Second

	// Log rotation
	LogMaxSizeMB  = 50
	LogMaxBackups = 3
	LogMaxAgeDays = 14
)
