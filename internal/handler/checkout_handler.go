package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shahhardik4599/creatively-yours/internal/cart"
	"github.com/shahhardik4599/creatively-yours/internal/checkout"
	"github.com/shahhardik4599/creatively-yours/internal/customizer"
	"github.com/shahhardik4599/creatively-yours/internal/middleware"
	"github.com/shahhardik4599/creatively-yours/internal/model"
	"github.com/shahhardik4599/creatively-yours/pkg/config"
	"github.com/shahhardik4599/creatively-yours/pkg/logger"
	"github.com/shahhardik4599/creatively-yours/prometheus"
)

// CheckoutResponse carries the formatted enquiry and its deep link.
// Opening the link is the client's side effect, not the server's.
type CheckoutResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// CheckoutHandler serializes the session's cart into the WhatsApp handoff
type CheckoutHandler struct {
	contact config.ContactConfig
}

// NewCheckoutHandler creates a checkout handler with the contact settings
func NewCheckoutHandler(contact config.ContactConfig) *CheckoutHandler {
	return &CheckoutHandler{contact: contact}
}

// WhatsApp handles building the enquiry message and wa.me deep link from
// the session's cart
func (h *CheckoutHandler) WhatsApp(c echo.Context) error {
	log := logger.FromContext(c)

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
	}

	var (
		lines    []model.CartLine
		subtotal int
	)
	s.Do(func(l *cart.Ledger, _ *customizer.Wizard) {
		lines = l.Lines()
		subtotal = l.Subtotal()
	})

	if len(lines) == 0 {
		log.Warn("Checkout attempted with empty cart")
		return c.JSON(http.StatusConflict, echo.Map{"error": "Cart is empty"})
	}

	message := checkout.FormatWhatsAppMessage(lines, subtotal)
	link := checkout.BuildDeepLink(h.contact.WhatsAppNumber, message)

	prometheus.RecordCheckoutMessage()
	log.Info("Checkout message built",
		zap.Int("lines", len(lines)),
		zap.Int("subtotal", subtotal))
	return c.JSON(http.StatusOK, CheckoutResponse{Message: message, Link: link})
}
