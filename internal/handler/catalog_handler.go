package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shahhardik4599/creatively-yours/internal/catalog"
	"github.com/shahhardik4599/creatively-yours/internal/checkout"
	"github.com/shahhardik4599/creatively-yours/pkg/config"
	"github.com/shahhardik4599/creatively-yours/pkg/logger"
)

// CatalogHandler serves the read-only content sections. A section whose
// fetch failed simply comes back empty; there is no error state to render.
type CatalogHandler struct {
	store   *catalog.Store
	contact config.ContactConfig
}

// NewCatalogHandler creates a catalog handler over the session store
func NewCatalogHandler(store *catalog.Store, contact config.ContactConfig) *CatalogHandler {
	return &CatalogHandler{store: store, contact: contact}
}

// ListProducts handles retrieving products with optional category filtering
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	category := c.QueryParam("category")
	if category == "" {
		category = catalog.AllCategoryKey
	}

	products := h.store.FilterProducts(category)
	log.Info("Products retrieved",
		zap.String("category", category),
		zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	product, ok := h.store.ProductByID(id)
	if !ok {
		log.Warn("Product not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	log.Info("Product retrieved",
		zap.String("product_id", id),
		zap.String("product_name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// ListCategories handles retrieving the category descriptors
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Categories())
}

// ListTestimonials handles retrieving the testimonials
func (h *CatalogHandler) ListTestimonials(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Testimonials())
}

// ListGallery handles retrieving the gallery image URLs
func (h *CatalogHandler) ListGallery(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Gallery())
}

// GetHero handles retrieving the hero content. All fields are optional;
// before the content has loaded this is an empty object.
func (h *CatalogHandler) GetHero(c echo.Context) error {
	hero, _ := h.store.Hero()
	return c.JSON(http.StatusOK, hero)
}

// CustomizerOptions handles retrieving the configured bases and add-on items
func (h *CatalogHandler) CustomizerOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"bases": h.store.CustomBases(),
		"items": h.store.CustomItems(),
	})
}

// Links handles retrieving the outbound contact links
func (h *CatalogHandler) Links(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"whatsapp":  checkout.ContactLink(h.contact.WhatsAppNumber),
		"instagram": h.contact.InstagramURL,
	})
}
