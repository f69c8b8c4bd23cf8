// Package catalog holds the session's read-side content: products,
// categories, testimonials, gallery and hero copy fetched once from the
// content source. Each slice is written only by its own load branch and is
// read-only for the rest of the session.
package catalog

import (
	"sync"

	"github.com/shahhardik4599/creatively-yours/internal/model"
)

// Store is the in-memory catalog for the current server session
type Store struct {
	mu           sync.RWMutex
	products     []model.Product
	categories   []model.CategoryDescriptor
	testimonials []model.Testimonial
	gallery      []string
	hero         *model.HeroContent
	bases        []model.CustomOption
	items        []model.CustomOption
}

// NewStore creates a store seeded with the default categories and
// customizer options. Products, testimonials and gallery start empty and
// stay empty when their fetches fail: there is no bundled sample data.
func NewStore() *Store {
	return &Store{
		categories: DefaultCategories(),
		bases:      defaultBases(),
		items:      defaultItems(),
	}
}

// SetProducts replaces the product list
func (s *Store) SetProducts(products []model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

// SetCategories replaces the category list
func (s *Store) SetCategories(categories []model.CategoryDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
}

// SetTestimonials replaces the testimonial list
func (s *Store) SetTestimonials(testimonials []model.Testimonial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.testimonials = testimonials
}

// SetGallery replaces the gallery image URLs
func (s *Store) SetGallery(urls []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gallery = urls
}

// SetHero replaces the hero content
func (s *Store) SetHero(hero model.HeroContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hero = &hero
}

// SetCustomOptions replaces the customizer base and item option lists.
// Empty lists are ignored so the defaults survive a missing or empty
// configuration entry.
func (s *Store) SetCustomOptions(bases, items []model.CustomOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(bases) > 0 {
		s.bases = bases
	}
	if len(items) > 0 {
		s.items = items
	}
}

// Products returns a copy of the product list
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FilterProducts returns the products matching a category key. The
// synthetic "all" key matches every product.
func (s *Store) FilterProducts(category string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if category == AllCategoryKey || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID looks up a product by its identity
func (s *Store) ProductByID(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Categories returns a copy of the category list
func (s *Store) Categories() []model.CategoryDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CategoryDescriptor, len(s.categories))
	copy(out, s.categories)
	return out
}

// Testimonials returns a copy of the testimonial list
func (s *Store) Testimonials() []model.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out
}

// Gallery returns a copy of the gallery image URLs
func (s *Store) Gallery() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.gallery))
	copy(out, s.gallery)
	return out
}

// Hero returns the hero content and whether it has loaded
func (s *Store) Hero() (model.HeroContent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.hero == nil {
		return model.HeroContent{}, false
	}
	return *s.hero, true
}

// CustomBases returns the customizer base options
func (s *Store) CustomBases() []model.CustomOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CustomOption, len(s.bases))
	copy(out, s.bases)
	return out
}

// CustomItems returns the customizer add-on options
func (s *Store) CustomItems() []model.CustomOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CustomOption, len(s.items))
	copy(out, s.items)
	return out
}

// FindBase looks up a base option by name
func (s *Store) FindBase(name string) (model.CustomOption, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.bases {
		if o.Name == name {
			return o, true
		}
	}
	return model.CustomOption{}, false
}

// FindItem looks up an add-on option by name
func (s *Store) FindItem(name string) (model.CustomOption, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.items {
		if o.Name == name {
			return o, true
		}
	}
	return model.CustomOption{}, false
}
