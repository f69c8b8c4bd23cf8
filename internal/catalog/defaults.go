package catalog

import (
	"github.com/shahhardik4599/creatively-yours/internal/customizer"
	"github.com/shahhardik4599/creatively-yours/internal/model"
)

// Built-in customizer options, used when the configuration entry is absent
// or empty. Prices here are the documented defaults.

func defaultBases() []model.CustomOption {
	return []model.CustomOption{
		{Name: "Wooden Box", Price: customizer.DefaultBasePrice},
		{Name: "Wicker Basket", Price: customizer.DefaultBasePrice},
		{Name: "Jute Hamper Bag", Price: customizer.DefaultBasePrice},
	}
}

func defaultItems() []model.CustomOption {
	return []model.CustomOption{
		{Name: "Scented Candle", Price: customizer.DefaultItemPrice},
		{Name: "Chocolates", Price: customizer.DefaultItemPrice},
		{Name: "Message Card", Price: customizer.DefaultItemPrice},
		{Name: "Dry Fruits", Price: customizer.DefaultItemPrice},
		{Name: "Scrunchie", Price: customizer.DefaultItemPrice},
	}
}
