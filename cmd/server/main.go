package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/beattrace/beattrace/internal/config"
	"github.com/beattrace/beattrace/pkg/beattrace"
	"github.com/beattrace/beattrace/pkg/beattrace/catalog"
	"github.com/beattrace/beattrace/pkg/beattrace/source"
	"github.com/beattrace/beattrace/pkg/logger"
)

var (
	configPath string
	port       string
	dbPath     string
	lookupURL  string
	apiKey     string
	origins    string
)

func init() {
	flag.StringVar(&configPath, "config", "", "Path to YAML config file")
	flag.StringVar(&port, "port", "", "HTTP server port (overrides config)")
	flag.StringVar(&dbPath, "db", getEnvOrDefault("BEATTRACE_DB_PATH", ""), "Path to the sqlite catalog file")
	flag.StringVar(&lookupURL, "lookup-url", "", "Fingerprint lookup endpoint (overrides config)")
	flag.StringVar(&apiKey, "api-key", getEnvOrDefault("BEATTRACE_API_KEY", ""), "Lookup service API key")
	flag.StringVar(&origins, "origins", "", "Comma-separated allowed CORS origins (use * for all)")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	flag.Parse()

	log := logger.GetLogger()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags win over the config file.
	if port != "" {
		cfg.Server.Port = port
	}
	if dbPath != "" {
		cfg.Catalog.Path = dbPath
	}
	if lookupURL != "" {
		cfg.Lookup.URL = lookupURL
	}
	if apiKey != "" {
		cfg.Lookup.APIKey = apiKey
	}
	if origins != "" {
		parts := strings.Split(origins, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.Server.AllowedOrigins = parts
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	service, err := beattrace.NewService(
		beattrace.WithLogger(log),
		beattrace.WithSources(
			source.NewRemote(cfg.Lookup.URL, cfg.Lookup.APIKey, time.Duration(cfg.Lookup.TimeoutSeconds)*time.Second),
			source.NewLocal(cat),
		),
	)
	if err != nil {
		log.Fatalf("Failed to create service: %v", err)
	}

	server := NewServer(service, cat, cfg)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
