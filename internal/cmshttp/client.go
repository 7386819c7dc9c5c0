// Package cmshttp implements the content store against the headless CMS HTTP
// API. Requests authenticate with a bearer token and responses arrive in a
// {"data": ...} envelope where items are either flat objects or
// {"id": ..., "attributes": {...}} pairs.
package cmshttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/veloura/go-storefront/internal/logging"
	"github.com/veloura/go-storefront/internal/store"
	"github.com/veloura/go-storefront/pkg/interfaces"
	"github.com/veloura/go-storefront/schema"
)

var (
	ErrBaseURLRequired  = errors.New("cmshttp: base url is required")
	ErrRequestFailed    = errors.New("cmshttp: request failed")
	ErrUnexpectedStatus = errors.New("cmshttp: unexpected response status")
	ErrMalformedPayload = errors.New("cmshttp: malformed response payload")
)

const (
	globalSettingsPath   = "/api/global-setting"
	pagesPath            = "/api/pages"
	dictionaryPath       = "/api/dictionary-entries"
	mediaPath            = "/api/media-assets"
	defaultTimeout       = 10 * time.Second
	authorizationHeader  = "Authorization"
	bearerPrefix         = "Bearer "
	contentTypeJSON      = "application/json"
)

// Client talks to the CMS content API. It satisfies store.Store.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	logger  interfaces.Logger
}

// Option configures optional client collaborators.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout overrides the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// New builds a client rooted at baseURL. The token may be empty for CMS
// instances with public read permissions.
func New(baseURL string, token string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, ErrBaseURLRequired
	}
	parsed, err := url.Parse(strings.TrimRight(trimmed, "/"))
	if err != nil {
		return nil, fmt.Errorf("cmshttp: parse base url: %w", err)
	}

	client := &Client{
		baseURL: parsed,
		token:   strings.TrimSpace(token),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

func (c *Client) GetGlobalSettings(ctx context.Context) (*schema.GlobalSettings, error) {
	query := url.Values{}
	query.Set("populate", "deep")

	raw, err := c.getDocument(ctx, globalSettingsPath, query)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, &store.NotFoundError{Resource: "global settings"}
	}

	settings := schema.GlobalSettings{}
	if err := decodeItem(raw, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) GetPageBySlug(ctx context.Context, slug string) (*schema.Page, error) {
	query := url.Values{}
	query.Set("populate", "deep")
	query.Set("filters[slug][$eq]", slug)
	query.Set("pagination[pageSize]", "1")

	items, err := c.getCollection(ctx, pagesPath, query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &store.NotFoundError{Resource: "page", Key: slug}
	}

	page := schema.Page{}
	if err := decodeItem(items[0], &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) ListDictionaryEntries(ctx context.Context, limit int) ([]schema.DictionaryEntry, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("pagination[pageSize]", strconv.Itoa(limit))
	}

	items, err := c.getCollection(ctx, dictionaryPath, query)
	if err != nil {
		return nil, err
	}

	entries := make([]schema.DictionaryEntry, 0, len(items))
	for _, item := range items {
		entry := schema.DictionaryEntry{}
		if err := decodeItem(item, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *Client) ListMediaAssets(ctx context.Context, limit int) ([]schema.MediaAsset, error) {
	query := url.Values{}
	query.Set("populate", "file")
	if limit > 0 {
		query.Set("pagination[pageSize]", strconv.Itoa(limit))
	}

	items, err := c.getCollection(ctx, mediaPath, query)
	if err != nil {
		return nil, err
	}

	assets := make([]schema.MediaAsset, 0, len(items))
	for _, item := range items {
		asset := schema.MediaAsset{}
		if err := decodeItem(item, &asset); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func (c *Client) CountGlobalSettings(ctx context.Context) (int, error) {
	_, err := c.GetGlobalSettings(ctx)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

func (c *Client) CreateGlobalSettings(ctx context.Context, settings schema.GlobalSettings) error {
	return c.post(ctx, globalSettingsPath, settings, "global settings", settings.SiteName)
}

func (c *Client) CreatePage(ctx context.Context, page schema.Page) error {
	return c.post(ctx, pagesPath, page, "page", page.Slug)
}

func (c *Client) GetDictionaryEntry(ctx context.Context, key string) (*schema.DictionaryEntry, error) {
	query := url.Values{}
	query.Set("filters[key][$eq]", key)
	query.Set("pagination[pageSize]", "1")

	items, err := c.getCollection(ctx, dictionaryPath, query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &store.NotFoundError{Resource: "dictionary entry", Key: key}
	}

	entry := schema.DictionaryEntry{}
	if err := decodeItem(items[0], &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) CreateDictionaryEntry(ctx context.Context, entry schema.DictionaryEntry) error {
	return c.post(ctx, dictionaryPath, entry, "dictionary entry", entry.Key)
}

func (c *Client) GetMediaAsset(ctx context.Context, key string) (*schema.MediaAsset, error) {
	query := url.Values{}
	query.Set("populate", "file")
	query.Set("filters[key][$eq]", key)
	query.Set("pagination[pageSize]", "1")

	items, err := c.getCollection(ctx, mediaPath, query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &store.NotFoundError{Resource: "media asset", Key: key}
	}

	asset := schema.MediaAsset{}
	if err := decodeItem(items[0], &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *Client) CreateMediaAsset(ctx context.Context, asset schema.MediaAsset) error {
	return c.post(ctx, mediaPath, asset, "media asset", asset.Key)
}

// getDocument fetches a single-type endpoint. A 404 or a null data envelope
// both mean the record does not exist yet, so nil is returned without error.
func (c *Client) getDocument(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	body, status, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrUnexpectedStatus, path, status)
	}

	envelope := documentEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrMalformedPayload, path, err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, nil
	}
	return envelope.Data, nil
}

func (c *Client) getCollection(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	body, status, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrUnexpectedStatus, path, status)
	}

	envelope := collectionEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrMalformedPayload, path, err)
	}
	return envelope.Data, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, resource string, key string) error {
	encoded, err := json.Marshal(documentRequest{Data: payload})
	if err != nil {
		return fmt.Errorf("cmshttp: encode %s %q: %w", resource, key, err)
	}

	_, status, err := c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	if status == http.StatusConflict {
		return &store.ConflictError{Resource: resource, Key: key}
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("%w: POST %s returned %d", ErrUnexpectedStatus, path, status)
	}

	c.logger.Debug("cms.create", "resource", resource, "key", key)
	return nil
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body io.Reader) ([]byte, int, error) {
	endpoint := *c.baseURL
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + path
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, 0, fmt.Errorf("cmshttp: build request: %w", err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if c.token != "" {
		req.Header.Set(authorizationHeader, bearerPrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s %s: read body: %v", ErrRequestFailed, method, path, err)
	}
	return payload, resp.StatusCode, nil
}

var _ store.Store = (*Client)(nil)
