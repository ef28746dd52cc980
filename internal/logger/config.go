// internal/logger/config.go
package logger

type Config struct {
	LogFile     string
	MaxSize     int  // megabytes
	MaxAge      int  // days
	MaxBackups  int  // rotated files kept
	Compress    bool // gzip rotated files
	Development bool
	RecentSize  int // entries kept for the activity pane
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() *Config {
	return &Config{
		LogFile:     "logs/dashboard.log",
		MaxSize:     10,
		MaxAge:      7,
		MaxBackups:  3,
		Compress:    true,
		Development: false,
		RecentSize:  50,
	}
}
