package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Config holds the content-source connection settings
type Config struct {
	SpaceID     string
	AccessToken string
	// BaseURL overrides the delivery API endpoint; used by tests. When
	// empty, the public CDN URL for SpaceID is used.
	BaseURL string
	Timeout time.Duration
}

// Client fetches entries and assets from the content delivery API.
//
// Every operation is fail-soft: missing configuration, transport errors and
// non-200 responses all degrade to StatusUnavailable, an empty result set to
// StatusEmpty. No operation returns an error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	configured bool
	log        *zap.Logger
}

// New creates a content client with the given configuration
func New(cfg Config, log *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" && cfg.SpaceID != "" {
		baseURL = "https://cdn.contentful.com/spaces/" + cfg.SpaceID
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      cfg.AccessToken,
		configured: baseURL != "" && cfg.AccessToken != "",
		log:        log,
	}
}

// Entry fetches a single entry by ID with its asset links resolved
func (c *Client) Entry(ctx context.Context, entryID string) (Entry, Status) {
	if !c.configured {
		return Entry{}, StatusUnavailable
	}

	var resp entryResponse
	// include=2 resolves linked assets into the includes manifest
	if err := c.getJSON(ctx, "/entries/"+url.PathEscape(entryID), url.Values{"include": {"2"}}, &resp); err != nil {
		c.log.Debug("entry fetch failed", zap.String("entry_id", entryID), zap.Error(err))
		return Entry{}, StatusUnavailable
	}

	c.resolveAssetLinks(ctx, resp.Fields, resp.Includes.Asset)
	return Entry{Sys: resp.Sys, Fields: resp.Fields}, StatusOK
}

// Entries fetches all entries of a content type, up to limit, with asset
// links resolved against the response's shared includes manifest
func (c *Client) Entries(ctx context.Context, contentType string, limit int) ([]Entry, Status) {
	if !c.configured {
		return nil, StatusUnavailable
	}

	params := url.Values{
		"content_type": {contentType},
		"include":      {"10"},
		"limit":        {strconv.Itoa(limit)},
	}

	var resp entriesResponse
	if err := c.getJSON(ctx, "/entries", params, &resp); err != nil {
		c.log.Debug("entries fetch failed", zap.String("content_type", contentType), zap.Error(err))
		return nil, StatusUnavailable
	}

	if len(resp.Items) == 0 {
		return []Entry{}, StatusEmpty
	}

	entries := make([]Entry, 0, len(resp.Items))
	for _, item := range resp.Items {
		c.resolveAssetLinks(ctx, item.Fields, resp.Includes.Asset)
		entries = append(entries, Entry{Sys: item.Sys, Fields: item.Fields})
	}
	return entries, StatusOK
}

// Asset fetches a single asset by ID and returns its absolute URL
func (c *Client) Asset(ctx context.Context, assetID string) (string, Status) {
	if !c.configured {
		return "", StatusUnavailable
	}

	var asset Asset
	if err := c.getJSON(ctx, "/assets/"+url.PathEscape(assetID), nil, &asset); err != nil {
		c.log.Debug("asset fetch failed", zap.String("asset_id", assetID), zap.Error(err))
		return "", StatusUnavailable
	}

	if asset.Fields.File.URL == "" {
		return "", StatusEmpty
	}
	return AbsoluteURL(asset.Fields.File.URL), StatusOK
}

// AssetsByQuery searches assets by full-text query and returns their
// absolute URLs. Assets without a file URL are skipped.
func (c *Client) AssetsByQuery(ctx context.Context, query string, limit int) ([]string, Status) {
	if !c.configured {
		return nil, StatusUnavailable
	}

	params := url.Values{"limit": {strconv.Itoa(limit)}}
	if query != "" {
		params.Set("query", query)
	}

	var resp assetsResponse
	if err := c.getJSON(ctx, "/assets", params, &resp); err != nil {
		c.log.Debug("asset search failed", zap.String("query", query), zap.Error(err))
		return nil, StatusUnavailable
	}

	urls := make([]string, 0, len(resp.Items))
	for _, asset := range resp.Items {
		if asset.Fields.File.URL == "" {
			continue
		}
		urls = append(urls, AbsoluteURL(asset.Fields.File.URL))
	}

	if len(urls) == 0 {
		return []string{}, StatusEmpty
	}
	return urls, StatusOK
}

// DistinctCategoryKeys scans all product entries and returns the sorted set
// of category values observed across them
func (c *Client) DistinctCategoryKeys(ctx context.Context) ([]string, Status) {
	if !c.configured {
		return nil, StatusUnavailable
	}

	params := url.Values{
		"content_type": {"product"},
		"limit":        {"100"},
	}

	var resp entriesResponse
	if err := c.getJSON(ctx, "/entries", params, &resp); err != nil {
		c.log.Debug("category scan failed", zap.Error(err))
		return nil, StatusUnavailable
	}

	seen := make(map[string]struct{})
	for _, item := range resp.Items {
		if category, ok := item.Fields["category"].(string); ok && category != "" {
			seen[category] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return []string{}, StatusEmpty
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, StatusOK
}

// resolveAssetLinks replaces asset-reference links in fields, single or
// slice-valued, with absolute URLs. Links present in the includes manifest
// are resolved locally; anything else falls back to one asset fetch per
// link. Unresolvable links are left untouched, as are non-asset fields.
func (c *Client) resolveAssetLinks(ctx context.Context, fields map[string]any, manifest []Asset) {
	for key, value := range fields {
		if assetID, ok := assetLinkID(value); ok {
			if resolved, ok := c.resolveOne(ctx, assetID, manifest); ok {
				fields[key] = resolved
			}
			continue
		}

		if slice, ok := value.([]any); ok {
			for i, item := range slice {
				assetID, ok := assetLinkID(item)
				if !ok {
					continue
				}
				if resolved, ok := c.resolveOne(ctx, assetID, manifest); ok {
					slice[i] = resolved
				}
			}
		}
	}
}

func (c *Client) resolveOne(ctx context.Context, assetID string, manifest []Asset) (string, bool) {
	for _, asset := range manifest {
		if asset.Sys.ID == assetID && asset.Fields.File.URL != "" {
			return AbsoluteURL(asset.Fields.File.URL), true
		}
	}

	// Not in the manifest: one direct fetch before giving up
	resolved, status := c.Asset(ctx, assetID)
	if status != StatusOK {
		return "", false
	}
	return resolved, true
}

// assetLinkID reports whether value is an asset-reference link and returns
// the referenced asset ID
func assetLinkID(value any) (string, bool) {
	m, ok := value.(map[string]any)
	if !ok {
		return "", false
	}
	sys, ok := m["sys"].(map[string]any)
	if !ok {
		return "", false
	}
	if sys["type"] != "Link" || sys["linkType"] != "Asset" {
		return "", false
	}
	id, ok := sys["id"].(string)
	return id, ok && id != ""
}

// AbsoluteURL normalizes the delivery API's protocol-relative file URLs
func AbsoluteURL(raw string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https:" + raw
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, target any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
