package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "webwatch"

	// DefaultWindowMinutes is the staleness window in minutes. A watched
	// URL checked within this window is skipped on the next run, so a
	// cron schedule tighter than the window does not cause extra fetches.
	DefaultWindowMinutes = 60

	// DefaultTimeout bounds each HTTP request. Monitored pages are
	// ordinary clearnet sites, so 30 seconds covers slow servers without
	// letting one dead host stall a whole sequential run.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies webwatch in HTTP requests so that page
	// operators can recognize monitor traffic in their access logs.
	DefaultUserAgent = "webwatch/1.0 (+https://github.com/sonodak/webwatch)"

	// DefaultMaxBodyBytes limits the response body size read per fetch.
	// 5MB is ample for HTML pages; anything larger is truncated before
	// hashing and storage.
	DefaultMaxBodyBytes = 5 * 1024 * 1024 // 5MB

	// DefaultDBFile is the SQLite database file name inside the XDG data
	// directory.
	DefaultDBFile = "webwatch.db"

	// DefaultServeAddr is the listen address for the read-only HTTP
	// browser. Loopback only; webwatch serves stored page content and is
	// not meant to be exposed.
	DefaultServeAddr = "127.0.0.1:8383"
)

// Config holds all configuration options for webwatch.
// It is populated from defaults, then the configuration file, then CLI
// flags, and passed through the application via dependency injection
// rather than global state.
type Config struct {
	// DBPath is the SQLite database file path. The parent directory is
	// created on open if it does not exist.
	DBPath string

	// WindowMinutes is the staleness window in minutes. URLs whose last
	// check is within the window are skipped without a fetch. Zero means
	// every watched URL is fetched on every run.
	WindowMinutes int

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// MaxBodyBytes is the maximum response body size in bytes to read.
	// Larger responses are truncated. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .webwatch in the current directory and then
	// in the XDG config directory.
	ConfigFilePath string

	// AddURLs are URLs to add to the watch list before the run.
	AddURLs []string

	// RemoveURLs are URLs to remove from the watch list before the run.
	RemoveURLs []string

	// JSONReport switches the run report to JSON output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport switches the run report to Markdown output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the run report. When set,
	// the report is written to this file instead of stdout.
	ReportFile string

	// Pages holds the loaded configuration file, including per-URL
	// staleness window overrides. Nil when no file was found.
	Pages *File
}

// NewConfig creates a new Config with default values.
// Callers overlay configuration file values and CLI flags afterwards.
func NewConfig() *Config {
	return &Config{
		DBPath:        DefaultDBPath(),
		WindowMinutes: DefaultWindowMinutes,
		Timeout:       DefaultTimeout,
		UserAgent:     DefaultUserAgent,
		MaxBodyBytes:  DefaultMaxBodyBytes,
	}
}

// XDGDataDir returns the XDG data directory for webwatch.
// On Linux: ~/.local/share/webwatch
// On macOS: ~/Library/Application Support/webwatch
// On Windows: %LOCALAPPDATA%\webwatch
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for webwatch.
// On Linux: ~/.config/webwatch
// On macOS: ~/Library/Application Support/webwatch
// On Windows: %APPDATA%\webwatch
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultDBPath returns the default SQLite database path inside the XDG
// data directory.
func DefaultDBPath() string {
	return filepath.Join(XDGDataDir(), DefaultDBFile)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes later
// ones irrelevant.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return ErrNoDatabasePath
	}

	// Zero is allowed: it disables the staleness window entirely.
	if c.WindowMinutes < 0 {
		return ErrInvalidWindow
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodyBytes < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
