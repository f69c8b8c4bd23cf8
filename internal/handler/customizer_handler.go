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

// OptionRequest names a configured base or add-on item
type OptionRequest struct {
	Name string `json:"name"`
}

// PersonalizeRequest carries the free-text personalization fields
type PersonalizeRequest struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// WizardResponse is the wizard snapshot returned after every operation
type WizardResponse struct {
	Step      string               `json:"step"`
	Base      *model.CustomOption  `json:"base"`
	Items     []model.CustomOption `json:"items"`
	Recipient string               `json:"recipient"`
	Message   string               `json:"message"`
	Total     int                  `json:"total"`
}

// CustomizerHandler drives the session's build-your-own wizard
type CustomizerHandler struct {
	store *catalog.Store
}

// NewCustomizerHandler creates a customizer handler over the catalog store
func NewCustomizerHandler(store *catalog.Store) *CustomizerHandler {
	return &CustomizerHandler{store: store}
}

// State handles retrieving the current wizard state
func (h *CustomizerHandler) State(c echo.Context) error {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var resp WizardResponse
	s.Do(func(_ *cart.Ledger, w *customizer.Wizard) {
		resp = snapshotWizard(w)
	})
	return c.JSON(http.StatusOK, resp)
}

// SelectBase handles choosing the hamper base. The name must match one of
// the configured base options.
func (h *CustomizerHandler) SelectBase(c echo.Context) error {
	log := logger.FromContext(c)

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var req OptionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	option, found := h.store.FindBase(req.Name)
	if !found {
		log.Warn("Unknown base option", zap.String("name", req.Name))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unknown base option"})
	}

	var resp WizardResponse
	s.Do(func(_ *cart.Ledger, w *customizer.Wizard) {
		w.SelectBase(option)
		resp = snapshotWizard(w)
	})

	log.Info("Base selected", zap.String("base", option.Name), zap.Int("price", option.Price))
	return c.JSON(http.StatusOK, resp)
}

// ToggleItem handles flipping an add-on item in or out of the selection
func (h *CustomizerHandler) ToggleItem(c echo.Context) error {
	log := logger.FromContext(c)

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var req OptionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	option, found := h.store.FindItem(req.Name)
	if !found {
		log.Warn("Unknown add-on item", zap.String("name", req.Name))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unknown add-on item"})
	}

	var resp WizardResponse
	s.Do(func(_ *cart.Ledger, w *customizer.Wizard) {
		w.ToggleItem(option)
		resp = snapshotWizard(w)
	})

	log.Info("Add-on toggled", zap.String("item", option.Name))
	return c.JSON(http.StatusOK, resp)
}

// Personalize handles storing the recipient name and message. Both fields
// are silently truncated to their documented limits.
func (h *CustomizerHandler) Personalize(c echo.Context) error {
	log := logger.FromContext(c)

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var req PersonalizeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var resp WizardResponse
	s.Do(func(_ *cart.Ledger, w *customizer.Wizard) {
		w.SetPersonalization(req.Recipient, req.Message)
		resp = snapshotWizard(w)
	})

	return c.JSON(http.StatusOK, resp)
}

// Advance handles moving to the next wizard step. Leaving the first step
// without a base is rejected.
func (h *CustomizerHandler) Advance(c echo.Context) error {
	log := logger.FromContext(c)

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var resp WizardResponse
	advanced := false
	s.Do(func(_ *cart.Ledger, w *customizer.Wizard) {
		advanced = w.Advance()
		resp = snapshotWizard(w)
	})

	if !advanced {
		log.Warn("Advance rejected", zap.String("step", resp.Step))
		return c.JSON(http.StatusConflict, echo.Map{"error": "Cannot advance from the current step"})
	}
	return c.JSON(http.StatusOK, resp)
}

// Back handles moving to the previous wizard step; accumulated data is kept
func (h *CustomizerHandler) Back(c echo.Context) error {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var resp WizardResponse
	s.Do(func(_ *cart.Ledger, w *customizer.Wizard) {
		w.Back()
		resp = snapshotWizard(w)
	})
	return c.JSON(http.StatusOK, resp)
}

// Complete handles converting the selection into a cart line. On success
// the wizard resets and the response carries the updated cart so the
// client can move straight to the cart view.
func (h *CustomizerHandler) Complete(c echo.Context) error {
	log := logger.FromContext(c)

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var (
		product   model.Product
		completed bool
		cartResp  CartResponse
	)
	s.Do(func(l *cart.Ledger, w *customizer.Wizard) {
		product, completed = w.Complete()
		if completed {
			l.Add(product)
			cartResp = snapshotCart(l)
		}
	})

	if !completed {
		log.Warn("Customizer completion rejected")
		return c.JSON(http.StatusConflict, echo.Map{"error": "Customizer is not ready to complete"})
	}

	prometheus.RecordCustomizerCompletion()
	prometheus.RecordCartOperation("add")
	log.Info("Custom hamper added to cart",
		zap.String("product_id", product.ID),
		zap.Int("price", product.Price))
	return c.JSON(http.StatusOK, echo.Map{
		"product": product,
		"cart":    cartResp,
	})
}

func snapshotWizard(w *customizer.Wizard) WizardResponse {
	return WizardResponse{
		Step:      w.Step().String(),
		Base:      w.Base(),
		Items:     w.Items(),
		Recipient: w.Recipient(),
		Message:   w.Message(),
		Total:     w.Total(),
	}
}
