package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/beattrace/beattrace/pkg/models"
)

const (
	// DefaultLookupURL is the fingerprint lookup endpoint queried by the
	// remote source when no other endpoint is configured.
	DefaultLookupURL = "https://api.acoustid.org/v2/lookup"

	// DefaultTimeout bounds the remote call so an unreachable lookup
	// service can never hang an analysis.
	DefaultTimeout = 5 * time.Second

	lookupMeta = "recordings recordingids releaseids releases tracks"
)

// RemoteLookup queries an external fingerprint lookup service. It is
// best-effort: network failures, non-2xx responses and unparseable bodies
// all collapse to "no results" so the orchestrator can fall through.
type RemoteLookup struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewRemote(endpoint, apiKey string, timeout time.Duration) *RemoteLookup {
	if endpoint == "" {
		endpoint = DefaultLookupURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RemoteLookup{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (r *RemoteLookup) Name() string { return "remote" }

func (r *RemoteLookup) Lookup(ctx context.Context, fp models.Fingerprint, _ string) ([]models.MatchRecord, error) {
	params := url.Values{}
	params.Set("client", r.apiKey)
	params.Set("meta", lookupMeta)
	params.Set("duration", strconv.Itoa(fp.DurationSeconds))
	params.Set("fingerprint", fp.ID)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, nil
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, nil
	}
	if body.Status != "ok" || len(body.Results) == 0 {
		return nil, nil
	}

	return normalizeResults(body.Results), nil
}

// Wire shapes of the lookup service response.

type lookupResponse struct {
	Status  string         `json:"status"`
	Results []lookupResult `json:"results"`
}

type lookupResult struct {
	ID         string      `json:"id"`
	Score      float64     `json:"score"`
	Recordings []recording `json:"recordings"`
}

type recording struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Artists  []artist  `json:"artists"`
	Releases []release `json:"releases"`
}

type artist struct {
	Name string `json:"name"`
}

type release struct {
	Title string       `json:"title"`
	Date  *releaseDate `json:"date"`
}

type releaseDate struct {
	Year int `json:"year"`
}
