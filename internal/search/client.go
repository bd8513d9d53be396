package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

var (
	// ErrUnavailable marks connection-level failures; the HTTP layer turns
	// it into a 503.
	ErrUnavailable = errors.New("search_api_unavailable")
	// ErrUpstream marks a non-2xx answer from the search service.
	ErrUpstream = errors.New("search_api_error")
)

// Client is a thin proxy to the external vector-search service. It only
// translates payloads; search semantics live upstream.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		log:     log.Named("search.client"),
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("search api request", zap.String("method", method), zap.String("endpoint", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode search api response: %w", err)
	}
	return nil
}

// Health probes the upstream health endpoint, retrying transient connection
// failures with exponential backoff for a few seconds.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	err := backoff.Retry(func() error {
		err := c.do(ctx, http.MethodGet, "/health", nil, &status)
		if err != nil && !errors.Is(err, ErrUnavailable) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/collections", nil, &raw); err != nil {
		return nil, err
	}

	var bare []collectionName
	if err := json.Unmarshal(raw, &bare); err == nil {
		return collectionNames(bare), nil
	}

	var wrapped collectionList
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode collection list: %w", err)
	}
	if wrapped.Collections != nil {
		return collectionNames(wrapped.Collections), nil
	}
	return collectionNames(wrapped.Result), nil
}

func collectionNames(items []collectionName) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func (c *Client) GetCollectionInfo(ctx context.Context, collection string) (CollectionInfo, error) {
	var info CollectionInfo
	err := c.do(ctx, http.MethodGet, "/collections/"+url.PathEscape(collection), nil, &info)
	if err != nil {
		return CollectionInfo{}, err
	}
	if info.Name == "" {
		info.Name = collection
	}
	return info, nil
}

func (c *Client) Search(ctx context.Context, collection string, req SearchRequest) (SearchResponse, error) {
	var resp SearchResponse
	endpoint := "/collections/" + url.PathEscape(collection) + "/search"
	if err := c.do(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

func (c *Client) TextSearch(ctx context.Context, collection string, req TextSearchRequest) (SearchResponse, error) {
	var resp SearchResponse
	endpoint := "/collections/" + url.PathEscape(collection) + "/search/text"
	if err := c.do(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

func (c *Client) Recommend(ctx context.Context, collection string, req RecommendRequest) (SearchResponse, error) {
	var resp SearchResponse
	endpoint := "/collections/" + url.PathEscape(collection) + "/search/recommend"
	if err := c.do(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

func (c *Client) BatchSearch(ctx context.Context, collection string, req BatchSearchRequest) (BatchSearchResponse, error) {
	var resp BatchSearchResponse
	endpoint := "/collections/" + url.PathEscape(collection) + "/search/batch"
	if err := c.do(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return BatchSearchResponse{}, err
	}
	return resp, nil
}
