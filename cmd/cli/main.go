package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/beattrace/beattrace/pkg/beattrace"
	"github.com/beattrace/beattrace/pkg/logger"
	"github.com/beattrace/beattrace/pkg/models"
)

var (
	filePath  string
	dbPath    string
	lookupURL string
	apiKey    string
	timeout   time.Duration
)

func init() {
	flag.StringVar(&filePath, "file", "", "Audio file to analyze (required)")
	flag.StringVar(&dbPath, "db", os.Getenv("BEATTRACE_DB_PATH"), "Path to the sqlite catalog file")
	flag.StringVar(&lookupURL, "lookup-url", "", "Fingerprint lookup endpoint")
	flag.StringVar(&apiKey, "api-key", os.Getenv("BEATTRACE_API_KEY"), "Lookup service API key")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Overall analysis timeout")
}

func main() {
	flag.Parse()

	log := logger.GetLogger()

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: beattrace -file <audio file> [flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", filePath, err)
	}

	service, err := beattrace.NewService(
		beattrace.WithLogger(log),
		beattrace.WithCatalogPath(dbPath),
		beattrace.WithLookupURL(lookupURL),
		beattrace.WithLookupAPIKey(apiKey),
	)
	if err != nil {
		log.Fatalf("Failed to create service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	matches := service.Analyze(ctx, &models.AudioAsset{
		Content:   content,
		FileName:  filepath.Base(filePath),
		SizeBytes: int64(len(content)),
	})

	out, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode matches: %v", err)
	}
	fmt.Println(string(out))
}
