// Package customizer implements the build-your-own gift wizard: a fixed
// four-step linear flow accumulating a priced selection that converts into
// one cart-ready composite product.
package customizer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/shahhardik4599/creatively-yours/internal/model"
)

// Step is a wizard position. Steps advance strictly in order; backward
// navigation to any earlier step keeps later-step data.
type Step int

const (
	StepChooseBase Step = iota
	StepChooseItems
	StepPersonalize
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepChooseBase:
		return "choose_base"
	case StepChooseItems:
		return "choose_items"
	case StepPersonalize:
		return "personalize"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// Pricing fallbacks for options sourced from plain-text configuration
// without explicit prices. Documented behavior, not a bug: a zero price on
// a base or item means "use the default".
const (
	DefaultBasePrice = 1499
	DefaultItemPrice = 150
)

const (
	maxRecipientRunes = 100
	maxMessageRunes   = 500
)

// CustomCategory is the synthetic category of customizer-built products,
// distinct from every catalog category.
const CustomCategory = "hamper"

// CustomCode is the product code carried by customizer-built products
const CustomCode = "CUSTOM"

// Wizard holds one session's customizer state. Like the cart ledger it has
// a single owner and no internal locking.
type Wizard struct {
	step      Step
	base      *model.CustomOption
	items     []model.CustomOption
	recipient string
	message   string
}

// Step returns the current wizard position
func (w *Wizard) Step() Step {
	return w.step
}

// Base returns the selected base, nil until one is chosen
func (w *Wizard) Base() *model.CustomOption {
	return w.base
}

// Items returns the selected add-on items in toggle order
func (w *Wizard) Items() []model.CustomOption {
	out := make([]model.CustomOption, len(w.items))
	copy(out, w.items)
	return out
}

// Recipient returns the personalization recipient name
func (w *Wizard) Recipient() string {
	return w.recipient
}

// Message returns the personalization message
func (w *Wizard) Message() string {
	return w.message
}

// SelectBase sets the chosen base
func (w *Wizard) SelectBase(option model.CustomOption) {
	w.base = &option
}

// ToggleItem flips set membership of an add-on item by name: toggling an
// already-selected item removes it, so a double toggle restores the
// selection to its prior contents.
func (w *Wizard) ToggleItem(option model.CustomOption) {
	for i := range w.items {
		if w.items[i].Name == option.Name {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
	w.items = append(w.items, option)
}

// SetPersonalization stores the recipient name and message, silently
// truncating to 100 and 500 runes respectively
func (w *Wizard) SetPersonalization(recipient, message string) {
	w.recipient = truncateRunes(recipient, maxRecipientRunes)
	w.message = truncateRunes(message, maxMessageRunes)
}

// Advance moves to the next step. It reports false, without changing
// state, when leaving ChooseBase with no base selected or when already on
// Review.
func (w *Wizard) Advance() bool {
	if w.step == StepChooseBase && w.base == nil {
		return false
	}
	if w.step >= StepReview {
		return false
	}
	w.step++
	return true
}

// Back moves to the previous step, keeping all accumulated data. It
// reports false when already on the first step.
func (w *Wizard) Back() bool {
	if w.step == StepChooseBase {
		return false
	}
	w.step--
	return true
}

// Total computes the running price: base price plus the sum of selected
// item prices, with the documented fallback for unpriced options.
func (w *Wizard) Total() int {
	total := 0
	if w.base != nil {
		total += priceOrDefault(w.base.Price, DefaultBasePrice)
	}
	for _, item := range w.items {
		total += priceOrDefault(item.Price, DefaultItemPrice)
	}
	return total
}

// Complete converts the selection into one cart-ready composite product and
// resets the wizard to the first step. It reports false, leaving the state
// intact, unless the wizard is on Review with a base selected.
//
// The product gets a random synthetic identifier, so two completions can
// never collide regardless of timing.
func (w *Wizard) Complete() (model.Product, bool) {
	if w.step != StepReview || w.base == nil {
		return model.Product{}, false
	}

	itemNames := make([]string, len(w.items))
	for i, item := range w.items {
		itemNames[i] = item.Name
	}

	description := "Custom hamper"
	if len(itemNames) > 0 {
		description = strings.Join(itemNames, ", ")
	}

	product := model.Product{
		ID:          "custom-" + uuid.New().String(),
		Name:        "Custom Hamper (" + w.base.Name + ")",
		Code:        CustomCode,
		Description: description,
		Items:       itemNames,
		Price:       w.Total(),
		Category:    CustomCategory,
	}

	w.Reset()
	return product, true
}

// Reset clears the wizard back to an empty first step
func (w *Wizard) Reset() {
	w.step = StepChooseBase
	w.base = nil
	w.items = nil
	w.recipient = ""
	w.message = ""
}

func priceOrDefault(price, fallback int) int {
	if price > 0 {
		return price
	}
	return fallback
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
