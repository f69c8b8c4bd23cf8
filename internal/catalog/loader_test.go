package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shahhardik4599/creatively-yours/internal/contentful"
	"github.com/shahhardik4599/creatively-yours/pkg/config"
)

func fakeCDN(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/entries", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("content_type") {
		case "product":
			json.NewEncoder(w).Encode(map[string]any{
				"items": []any{
					map[string]any{
						"sys": map[string]any{"id": "p1"},
						"fields": map[string]any{
							"name":     "Glam Starter Kit",
							"price":    float64(999),
							"category": "womensday",
						},
					},
					map[string]any{
						"sys": map[string]any{"id": "p2"},
						"fields": map[string]any{
							"name":     "Spa Day Box",
							"price":    float64(1299),
							"category": "spa",
						},
					},
				},
			})
		case "testimonial":
			json.NewEncoder(w).Encode(map[string]any{
				"items": []any{
					map[string]any{
						"sys":    map[string]any{"id": "t1"},
						"fields": map[string]any{"customerName": "Asha", "quote": "Lovely!"},
					},
				},
			})
		default:
			json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
		}
	})
	mux.HandleFunc("/entries/home", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"sys":    map[string]any{"id": "home"},
			"fields": map[string]any{"maintitle1": "Creatively", "maintitle2": "Yours"},
		})
	})
	mux.HandleFunc("/entries/byo", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"sys": map[string]any{"id": "byo"},
			"fields": map[string]any{
				"byoBase":  []any{map[string]any{"name": "Wooden Box", "price": float64(1200)}},
				"byoItems": []any{"Candle"},
			},
		})
	})
	mux.HandleFunc("/assets", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"items": []any{
				map[string]any{
					"sys":    map[string]any{"id": "a1"},
					"fields": map[string]any{"file": map[string]any{"url": "//images.example.net/g1.jpg"}},
				},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoaderPopulatesEverySlice(t *testing.T) {
	srv := fakeCDN(t)

	client := contentful.New(contentful.Config{
		BaseURL:     srv.URL,
		AccessToken: "test-token",
	}, zap.NewNop())

	cfg := &config.Config{}
	cfg.Contentful.HomeEntryID = "home"
	cfg.Contentful.BYOEntryID = "byo"
	cfg.Contentful.GalleryQuery = "GalleryImage"

	store := NewStore()
	NewLoader(client, cfg, store, zap.NewNop()).Load(context.Background())

	products := store.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "Glam Starter Kit", products[0].Name)

	// Categories built from the distinct keys observed in products
	categories := store.Categories()
	require.Len(t, categories, 3)
	assert.Equal(t, AllCategoryKey, categories[0].Key)
	assert.Equal(t, "spa", categories[1].Key)
	assert.Equal(t, "womensday", categories[2].Key)

	testimonials := store.Testimonials()
	require.Len(t, testimonials, 1)
	assert.Equal(t, "Asha", testimonials[0].Name)
	assert.Equal(t, 5, testimonials[0].Rating)

	hero, loaded := store.Hero()
	require.True(t, loaded)
	assert.Equal(t, "Creatively", hero.MainTitle1)

	// No gallery entry configured: asset search fallback was used
	assert.Equal(t, []string{"https://images.example.net/g1.jpg"}, store.Gallery())

	bases := store.CustomBases()
	require.Len(t, bases, 1)
	assert.Equal(t, "Wooden Box", bases[0].Name)
	items := store.CustomItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Candle", items[0].Name)
}

func TestLoaderAppliesConfiguredFetchLimit(t *testing.T) {
	var (
		mu     sync.Mutex
		limits = map[string][]string{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		ct := r.URL.Query().Get("content_type")
		limits[ct] = append(limits[ct], r.URL.Query().Get("limit"))
		mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	}))
	t.Cleanup(srv.Close)

	client := contentful.New(contentful.Config{
		BaseURL:     srv.URL,
		AccessToken: "test-token",
	}, zap.NewNop())

	cfg := &config.Config{}
	cfg.Contentful.FetchLimit = 25

	store := NewStore()
	NewLoader(client, cfg, store, zap.NewNop()).Load(context.Background())

	mu.Lock()
	defer mu.Unlock()
	// The category scan also reads product entries with its own limit, so
	// the product fetch shows up as one of possibly two requests
	assert.Contains(t, limits["product"], "25")
	assert.Equal(t, []string{"25"}, limits["testimonial"])
}

func TestLoaderFetchLimitFallsBack(t *testing.T) {
	l := NewLoader(nil, &config.Config{}, NewStore(), zap.NewNop())
	assert.Equal(t, defaultFetchLimit, l.fetchLimit())
}

func TestLoaderLeavesSlicesEmptyWhenSourceUnavailable(t *testing.T) {
	// Unconfigured client: every fetch is unavailable
	client := contentful.New(contentful.Config{}, zap.NewNop())

	cfg := &config.Config{}
	cfg.Contentful.HomeEntryID = "home"
	cfg.Contentful.BYOEntryID = "byo"

	store := NewStore()
	NewLoader(client, cfg, store, zap.NewNop()).Load(context.Background())

	assert.Empty(t, store.Products())
	assert.Empty(t, store.Testimonials())
	assert.Empty(t, store.Gallery())
	_, loaded := store.Hero()
	assert.False(t, loaded)

	// Defaults survive: categories and customizer options stay usable
	assert.NotEmpty(t, store.Categories())
	assert.NotEmpty(t, store.CustomBases())
	assert.NotEmpty(t, store.CustomItems())
}
