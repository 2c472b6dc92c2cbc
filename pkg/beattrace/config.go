package beattrace

import "time"

type Config struct {
	LookupURL     string
	LookupAPIKey  string
	LookupTimeout time.Duration
	CatalogPath   string
	MaxResults    int
	Logger        Logger
	Deriver       Deriver
	Sources       []Source
}

type Option func(*Config)

func WithLookupURL(url string) Option {
	return func(c *Config) {
		c.LookupURL = url
	}
}

func WithLookupAPIKey(key string) Option {
	return func(c *Config) {
		c.LookupAPIKey = key
	}
}

func WithLookupTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.LookupTimeout = timeout
	}
}

// WithCatalogPath sets the sqlite file backing the local catalog. Empty
// means the built-in seed catalog without persistence.
func WithCatalogPath(path string) Option {
	return func(c *Config) {
		c.CatalogPath = path
	}
}

func WithMaxResults(n int) Option {
	return func(c *Config) {
		c.MaxResults = n
	}
}

func WithLogger(log Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func WithDeriver(d Deriver) Option {
	return func(c *Config) {
		c.Deriver = d
	}
}

// WithSources replaces the default source chain. Order is priority order.
func WithSources(sources ...Source) Option {
	return func(c *Config) {
		c.Sources = sources
	}
}

func defaultConfig() *Config {
	return &Config{
		MaxResults: 10,
	}
}
