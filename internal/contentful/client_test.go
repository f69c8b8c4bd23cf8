package contentful

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func assetLink(id string) map[string]any {
	return map[string]any{
		"sys": map[string]any{"type": "Link", "linkType": "Asset", "id": id},
	}
}

func manifestAsset(id, fileURL string) map[string]any {
	return map[string]any{
		"sys":    map[string]any{"id": id},
		"fields": map[string]any{"file": map[string]any{"url": fileURL}},
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New(Config{
		BaseURL:     srv.URL,
		AccessToken: "test-token",
	}, zap.NewNop())
	return client, srv
}

func TestEntryResolvesAssetLinkFromManifest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/entries/e1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		json.NewEncoder(w).Encode(map[string]any{
			"sys": map[string]any{"id": "e1"},
			"fields": map[string]any{
				"name":      "Glam Starter Kit",
				"heroImage": assetLink("a1"),
			},
			"includes": map[string]any{
				"Asset": []any{manifestAsset("a1", "//images.example.net/hero.jpg")},
			},
		})
	})

	client, _ := newTestClient(t, mux)

	entry, status := client.Entry(context.Background(), "e1")
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "e1", entry.Sys.ID)
	assert.Equal(t, "Glam Starter Kit", entry.Fields["name"])
	assert.Equal(t, "https://images.example.net/hero.jpg", entry.Fields["heroImage"])
}

func TestEntryFallsBackToDirectAssetFetch(t *testing.T) {
	var assetFetches int32

	mux := http.NewServeMux()
	mux.HandleFunc("/entries/e1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"sys":    map[string]any{"id": "e1"},
			"fields": map[string]any{"heroImage": assetLink("a2")},
		})
	})
	mux.HandleFunc("/assets/a2", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&assetFetches, 1)
		json.NewEncoder(w).Encode(manifestAsset("a2", "//images.example.net/fallback.png"))
	})

	client, _ := newTestClient(t, mux)

	entry, status := client.Entry(context.Background(), "e1")
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "https://images.example.net/fallback.png", entry.Fields["heroImage"])
	assert.Equal(t, int32(1), atomic.LoadInt32(&assetFetches))
}

func TestEntryLeavesUnresolvableLinksUntouched(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/entries/e1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"sys": map[string]any{"id": "e1"},
			"fields": map[string]any{
				"galleryImages": []any{assetLink("a1"), assetLink("gone")},
			},
			"includes": map[string]any{
				"Asset": []any{manifestAsset("a1", "//images.example.net/1.jpg")},
			},
		})
	})
	// No /assets/gone route: the fallback fetch 404s

	client, _ := newTestClient(t, mux)

	entry, status := client.Entry(context.Background(), "e1")
	require.Equal(t, StatusOK, status)

	images, ok := entry.Fields["galleryImages"].([]any)
	require.True(t, ok)
	require.Len(t, images, 2)
	assert.Equal(t, "https://images.example.net/1.jpg", images[0])
	_, stillLink := images[1].(map[string]any)
	assert.True(t, stillLink, "unresolvable link should stay a link")
}

func TestEntryUnavailableOnServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, status := client.Entry(context.Background(), "e1")
	assert.Equal(t, StatusUnavailable, status)
}

func TestEntriesResolveAgainstSharedManifest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/entries", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "product", r.URL.Query().Get("content_type"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]any{
			"items": []any{
				map[string]any{
					"sys":    map[string]any{"id": "p1"},
					"fields": map[string]any{"name": "One", "product_image": assetLink("a1")},
				},
				map[string]any{
					"sys":    map[string]any{"id": "p2"},
					"fields": map[string]any{"name": "Two", "product_image": assetLink("a2")},
				},
			},
			"includes": map[string]any{
				"Asset": []any{
					manifestAsset("a1", "//images.example.net/1.jpg"),
					manifestAsset("a2", "//images.example.net/2.jpg"),
				},
			},
		})
	})

	client, _ := newTestClient(t, mux)

	entries, status := client.Entries(context.Background(), "product", 100)
	require.Equal(t, StatusOK, status)
	require.Len(t, entries, 2)
	assert.Equal(t, "https://images.example.net/1.jpg", entries[0].Fields["product_image"])
	assert.Equal(t, "https://images.example.net/2.jpg", entries[1].Fields["product_image"])
}

func TestEntriesEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	}))

	entries, status := client.Entries(context.Background(), "testimonial", 100)
	assert.Equal(t, StatusEmpty, status)
	assert.Empty(t, entries)
}

func TestAssetNormalizesProtocolRelativeURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/assets/a1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(manifestAsset("a1", "//images.example.net/x.jpg"))
	})

	client, _ := newTestClient(t, mux)

	url, status := client.Asset(context.Background(), "a1")
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "https://images.example.net/x.jpg", url)
}

func TestAssetsByQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/assets", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GalleryImage", r.URL.Query().Get("query"))
		json.NewEncoder(w).Encode(map[string]any{
			"items": []any{
				manifestAsset("a1", "https://images.example.net/full.jpg"),
				manifestAsset("a2", "//images.example.net/relative.jpg"),
				manifestAsset("a3", ""), // no file, skipped
			},
		})
	})

	client, _ := newTestClient(t, mux)

	urls, status := client.AssetsByQuery(context.Background(), "GalleryImage", 50)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, []string{
		"https://images.example.net/full.jpg",
		"https://images.example.net/relative.jpg",
	}, urls)
}

func TestDistinctCategoryKeysSortedUnique(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/entries", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"items": []any{
				map[string]any{"sys": map[string]any{"id": "p1"}, "fields": map[string]any{"category": "spa"}},
				map[string]any{"sys": map[string]any{"id": "p2"}, "fields": map[string]any{"category": "birthday"}},
				map[string]any{"sys": map[string]any{"id": "p3"}, "fields": map[string]any{"category": "spa"}},
				map[string]any{"sys": map[string]any{"id": "p4"}, "fields": map[string]any{}},
			},
		})
	})

	client, _ := newTestClient(t, mux)

	keys, status := client.DistinctCategoryKeys(context.Background())
	require.Equal(t, StatusOK, status)
	assert.Equal(t, []string{"birthday", "spa"}, keys)
}

func TestUnconfiguredClientShortCircuits(t *testing.T) {
	// No credentials: every operation is unavailable without touching the
	// network
	client := New(Config{}, zap.NewNop())
	ctx := context.Background()

	_, status := client.Entry(ctx, "e1")
	assert.Equal(t, StatusUnavailable, status)
	_, status = client.Entries(ctx, "product", 100)
	assert.Equal(t, StatusUnavailable, status)
	_, status = client.Asset(ctx, "a1")
	assert.Equal(t, StatusUnavailable, status)
	_, status = client.AssetsByQuery(ctx, "x", 10)
	assert.Equal(t, StatusUnavailable, status)
	_, status = client.DistinctCategoryKeys(ctx)
	assert.Equal(t, StatusUnavailable, status)
}
