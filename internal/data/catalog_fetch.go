package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
)

const maxCatalogBytes = 64 << 20

// CatalogFetcher downloads the catalog file when it is not present locally.
type CatalogFetcher struct {
	Endpoint string
	Client   *http.Client
}

// NewCatalogFetcher returns a fetcher with a client bounded by timeout.
func NewCatalogFetcher(endpoint string, timeout time.Duration) *CatalogFetcher {
	return &CatalogFetcher{Endpoint: endpoint, Client: &http.Client{Timeout: timeout}}
}

// EnsureLocal downloads the catalog to path unless the file already exists.
// It reports whether a download happened.
func (f *CatalogFetcher) EnsureLocal(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, apperrors.CatalogLoad(path, err)
	}
	if f.Endpoint == "" {
		return false, apperrors.CatalogLoad(path, errors.New("file missing and no catalog endpoint configured"))
	}

	body, err := f.fetch(ctx)
	if err != nil {
		return false, apperrors.CatalogLoad(path, err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return false, apperrors.CatalogLoad(path, fmt.Errorf("write: %w", err))
	}
	return true, nil
}

func (f *CatalogFetcher) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if !json.Valid(body) {
		return nil, errors.New("fetch catalog: response is not JSON")
	}
	return body, nil
}
