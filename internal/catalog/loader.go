package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/shahhardik4599/creatively-yours/internal/contentful"
	"github.com/shahhardik4599/creatively-yours/internal/model"
	"github.com/shahhardik4599/creatively-yours/pkg/config"
	"github.com/shahhardik4599/creatively-yours/prometheus"
)

const defaultFetchLimit = 100

// Loader populates a Store from the content source
type Loader struct {
	client *contentful.Client
	cfg    *config.Config
	store  *Store
	log    *zap.Logger
}

// NewLoader creates a loader writing into store
func NewLoader(client *contentful.Client, cfg *config.Config, store *Store, log *zap.Logger) *Loader {
	return &Loader{client: client, cfg: cfg, store: store, log: log}
}

// Load runs the independent content fetches concurrently. Each branch
// writes only its own store slice, so no cross-branch ordering matters.
// A failed or empty fetch leaves its slice as it was; nothing is surfaced
// to callers beyond an empty section.
func (l *Loader) Load(ctx context.Context) {
	var wg sync.WaitGroup

	branches := []func(context.Context){
		l.loadCategories,
		l.loadProducts,
		l.loadTestimonials,
		l.loadHero,
		l.loadGallery,
		l.loadCustomOptions,
	}

	wg.Add(len(branches))
	for _, branch := range branches {
		go func(fn func(context.Context)) {
			defer wg.Done()
			fn(ctx)
		}(branch)
	}
	wg.Wait()

	l.log.Info("catalog load finished",
		zap.Int("products", len(l.store.Products())),
		zap.Int("categories", len(l.store.Categories())),
		zap.Int("testimonials", len(l.store.Testimonials())),
		zap.Int("gallery_images", len(l.store.Gallery())))
}

func (l *Loader) fetchLimit() int {
	if limit := l.cfg.Contentful.FetchLimit; limit > 0 {
		return limit
	}
	return defaultFetchLimit
}

func (l *Loader) loadCategories(ctx context.Context) {
	keys, status := l.client.DistinctCategoryKeys(ctx)
	prometheus.RecordContentFetch("categories", status.String())
	if status != contentful.StatusOK {
		l.log.Warn("category scan yielded nothing", zap.Stringer("status", status))
		return
	}
	l.store.SetCategories(BuildCategories(keys))
}

func (l *Loader) loadProducts(ctx context.Context) {
	entries, status := l.client.Entries(ctx, "product", l.fetchLimit())
	prometheus.RecordContentFetch("products", status.String())
	if status != contentful.StatusOK {
		l.log.Warn("product fetch yielded nothing", zap.Stringer("status", status))
		return
	}

	products := make([]model.Product, 0, len(entries))
	for _, entry := range entries {
		products = append(products, productFromEntry(entry))
	}
	l.store.SetProducts(products)
}

func (l *Loader) loadTestimonials(ctx context.Context) {
	entries, status := l.client.Entries(ctx, "testimonial", l.fetchLimit())
	prometheus.RecordContentFetch("testimonials", status.String())
	if status != contentful.StatusOK {
		l.log.Warn("testimonial fetch yielded nothing", zap.Stringer("status", status))
		return
	}

	testimonials := make([]model.Testimonial, 0, len(entries))
	for _, entry := range entries {
		testimonials = append(testimonials, testimonialFromEntry(entry))
	}
	l.store.SetTestimonials(testimonials)
}

func (l *Loader) loadHero(ctx context.Context) {
	entryID := l.cfg.Contentful.HomeEntryID
	if entryID == "" {
		return
	}

	entry, status := l.client.Entry(ctx, entryID)
	prometheus.RecordContentFetch("hero", status.String())
	if status != contentful.StatusOK {
		l.log.Warn("hero fetch yielded nothing", zap.Stringer("status", status))
		return
	}
	l.store.SetHero(heroFromEntry(entry))
}

func (l *Loader) loadGallery(ctx context.Context) {
	if entryID := l.cfg.Contentful.GalleryEntryID; entryID != "" {
		entry, status := l.client.Entry(ctx, entryID)
		prometheus.RecordContentFetch("gallery", status.String())
		if status != contentful.StatusOK {
			l.log.Warn("gallery entry fetch yielded nothing", zap.Stringer("status", status))
			return
		}
		if urls := galleryFromEntry(entry); len(urls) > 0 {
			l.store.SetGallery(urls)
		}
		return
	}

	// No gallery entry configured: search the media library instead
	urls, status := l.client.AssetsByQuery(ctx, l.cfg.Contentful.GalleryQuery, 50)
	prometheus.RecordContentFetch("gallery", status.String())
	if status != contentful.StatusOK {
		l.log.Warn("gallery asset search yielded nothing", zap.Stringer("status", status))
		return
	}
	l.store.SetGallery(urls)
}

func (l *Loader) loadCustomOptions(ctx context.Context) {
	entryID := l.cfg.Contentful.BYOEntryID
	if entryID == "" {
		return
	}

	entry, status := l.client.Entry(ctx, entryID)
	prometheus.RecordContentFetch("customizer_options", status.String())
	if status != contentful.StatusOK {
		l.log.Warn("customizer options fetch yielded nothing", zap.Stringer("status", status))
		return
	}

	bases, items := optionsFromEntry(entry)
	l.store.SetCustomOptions(bases, items)
}
