package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shahhardik4599/creatively-yours/internal/cart"
	"github.com/shahhardik4599/creatively-yours/internal/catalog"
	"github.com/shahhardik4599/creatively-yours/internal/customizer"
	"github.com/shahhardik4599/creatively-yours/internal/middleware"
	"github.com/shahhardik4599/creatively-yours/internal/model"
	"github.com/shahhardik4599/creatively-yours/pkg/logger"
	"github.com/shahhardik4599/creatively-yours/prometheus"
)

// AddItemRequest defines the structure for cart add requests
type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

// AdjustItemRequest defines the structure for quantity adjustments
type AdjustItemRequest struct {
	Delta int `json:"delta"`
}

// CartResponse is the cart snapshot returned after every cart operation
type CartResponse struct {
	Lines    []model.CartLine `json:"lines"`
	Count    int              `json:"count"`
	Subtotal int              `json:"subtotal"`
}

// CartHandler mutates the session's cart ledger
type CartHandler struct {
	store *catalog.Store
}

// NewCartHandler creates a cart handler backed by the catalog store
func NewCartHandler(store *catalog.Store) *CartHandler {
	return &CartHandler{store: store}
}

// GetCart handles retrieving the session's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var resp CartResponse
	s.Do(func(l *cart.Ledger, _ *customizer.Wizard) {
		resp = snapshotCart(l)
	})
	return c.JSON(http.StatusOK, resp)
}

// AddItem handles adding a catalog product to the cart. Adding a product
// already in the cart bumps its quantity.
func (h *CartHandler) AddItem(c echo.Context) error {
	log := logger.FromContext(c)

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	product, found := h.store.ProductByID(req.ProductID)
	if !found {
		log.Warn("Product not found for cart add", zap.String("product_id", req.ProductID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	var resp CartResponse
	s.Do(func(l *cart.Ledger, _ *customizer.Wizard) {
		l.Add(product)
		resp = snapshotCart(l)
	})

	prometheus.RecordCartOperation("add")
	log.Info("Product added to cart",
		zap.String("product_id", product.ID),
		zap.String("product_name", product.Name),
		zap.Int("cart_count", resp.Count))
	return c.JSON(http.StatusOK, resp)
}

// RemoveItem handles removing a line from the cart. Removing an absent
// product is a no-op, not an error.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var resp CartResponse
	s.Do(func(l *cart.Ledger, _ *customizer.Wizard) {
		l.Remove(id)
		resp = snapshotCart(l)
	})

	prometheus.RecordCartOperation("remove")
	log.Info("Cart line removed", zap.String("product_id", id))
	return c.JSON(http.StatusOK, resp)
}

// AdjustItem handles applying a quantity delta to a cart line. The
// quantity clamps at 1; dropping a line entirely is RemoveItem's job.
func (h *CartHandler) AdjustItem(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var req AdjustItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var resp CartResponse
	s.Do(func(l *cart.Ledger, _ *customizer.Wizard) {
		l.AdjustQuantity(id, req.Delta)
		resp = snapshotCart(l)
	})

	prometheus.RecordCartOperation("adjust")
	log.Info("Cart quantity adjusted",
		zap.String("product_id", id),
		zap.Int("delta", req.Delta))
	return c.JSON(http.StatusOK, resp)
}

func snapshotCart(l *cart.Ledger) CartResponse {
	return CartResponse{
		Lines:    l.Lines(),
		Count:    l.Count(),
		Subtotal: l.Subtotal(),
	}
}
