package catalog

import (
	"github.com/shahhardik4599/creatively-yours/internal/model"
)

// AllCategoryKey is the synthetic filter value matching every product.
// It never appears in source data.
const AllCategoryKey = "all"

// Display labels per category key for the supported locales
var categoryTranslations = map[string]map[string]string{
	"birthday":  {"en": "Birthday", "hi": "जन्मदिन", "gu": "જન્મદિન"},
	"womensday": {"en": "Women's Day", "hi": "महिला दिवस", "gu": "મહિલા દિવસ"},
	"spa":       {"en": "Spa Hampers", "hi": "स्पा हैम्पर", "gu": "સ્પા હેમ્પર"},
	"wellness":  {"en": "Wellness", "hi": "वेलनेस", "gu": "વેલનેસ"},
	"wedding":   {"en": "Wedding", "hi": "शादी", "gu": "લગ્ન"},
}

var allLabel = map[string]string{"en": "All", "hi": "सभी", "gu": "બધા"}

// BuildCategories turns the category keys observed in the content source
// into the session's category list: the "all" sentinel first, then one
// descriptor per key. Keys without a translation entry keep the raw key as
// their label in every locale.
func BuildCategories(keys []string) []model.CategoryDescriptor {
	categories := []model.CategoryDescriptor{{Key: AllCategoryKey, Label: copyLabel(allLabel)}}

	for _, key := range keys {
		label, ok := categoryTranslations[key]
		if !ok {
			label = map[string]string{"en": key, "hi": key, "gu": key}
		}
		categories = append(categories, model.CategoryDescriptor{Key: key, Label: copyLabel(label)})
	}

	return categories
}

// DefaultCategories is the category list used until the content source has
// been scanned
func DefaultCategories() []model.CategoryDescriptor {
	return BuildCategories([]string{"womensday", "spa", "wellness", "wedding"})
}

func copyLabel(label map[string]string) map[string]string {
	out := make(map[string]string, len(label))
	for locale, text := range label {
		out[locale] = text
	}
	return out
}
