package mcpserver

import "time"

// serverConfig holds the MCP server's operational limits and cache tuning.
// There is no external configuration surface; tests adjust cfg directly.
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// MaxInlineSize caps inline spec content, in bytes.
	MaxInlineSize int64

	// MaxFetchSize caps URL-fetched spec documents, in bytes.
	MaxFetchSize int64

	// AllowPrivateIPs disables the SSRF guard on URL fetches. Tests set it
	// to reach loopback servers.
	AllowPrivateIPs bool
}

// cfg is the active server configuration.
var cfg = defaultConfig()

func defaultConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       true,
		CacheMaxSize:       10,
		CacheFileTTL:       15 * time.Minute,
		CacheURLTTL:        5 * time.Minute,
		CacheContentTTL:    15 * time.Minute,
		CacheSweepInterval: 60 * time.Second,
		MaxInlineSize:      10 << 20,
		MaxFetchSize:       50 << 20,
	}
}
