package catalog

import (
	"github.com/shahhardik4599/creatively-yours/internal/contentful"
	"github.com/shahhardik4599/creatively-yours/internal/customizer"
	"github.com/shahhardik4599/creatively-yours/internal/model"
)

// Field-name candidates per attribute. The content source has been
// authored with inconsistent casings and spellings, so each attribute
// lists every variant observed in real data.

var productMapping = map[string][]string{
	"name":        {"name"},
	"code":        {"code"},
	"description": {"description"},
	"items":       {"items"},
	"price":       {"price"},
	"category":    {"category"},
	"featured":    {"featured"},
	"image":       {"product_image", "productImage"},
}

var testimonialMapping = map[string][]string{
	"name":     {"cutomername", "customername", "customerName", "Customer Name"},
	"location": {"location", "Location"},
	"text":     {"quote", "Quote", "testimonial", "Testimonial"},
	"rating":   {"rating", "Rating"},
}

var heroMapping = map[string][]string{
	"main_title_1": {"maintitle1"},
	"main_title_2": {"maintitle2"},
	"subtext":      {"subtext"},
	"small_text":   {"smalltext"},
	"hero_image":   {"heroImage"},
}

var galleryMapping = map[string][]string{
	"images": {"galleryImages", "images"},
}

func productFromEntry(entry contentful.Entry) model.Product {
	norm := contentful.NormalizeFields(entry.Fields, productMapping)

	category := contentful.String(norm, "category")
	if category == "" {
		category = "default"
	}

	return model.Product{
		ID:          entry.Sys.ID,
		Name:        contentful.String(norm, "name"),
		Code:        contentful.String(norm, "code"),
		Description: contentful.String(norm, "description"),
		Items:       contentful.Strings(norm, "items"),
		Price:       contentful.Int(norm, "price"),
		Category:    category,
		Featured:    contentful.Bool(norm, "featured"),
		Image:       contentful.String(norm, "image"),
	}
}

func testimonialFromEntry(entry contentful.Entry) model.Testimonial {
	norm := contentful.NormalizeFields(entry.Fields, testimonialMapping)

	rating := contentful.Int(norm, "rating")
	if rating == 0 {
		rating = 5
	}

	return model.Testimonial{
		ID:       entry.Sys.ID,
		Name:     contentful.String(norm, "name"),
		Location: contentful.String(norm, "location"),
		Text:     contentful.String(norm, "text"),
		Rating:   rating,
	}
}

func heroFromEntry(entry contentful.Entry) model.HeroContent {
	norm := contentful.NormalizeFields(entry.Fields, heroMapping)

	return model.HeroContent{
		MainTitle1: contentful.String(norm, "main_title_1"),
		MainTitle2: contentful.String(norm, "main_title_2"),
		Subtext:    contentful.String(norm, "subtext"),
		SmallText:  contentful.String(norm, "small_text"),
		HeroImage:  contentful.String(norm, "hero_image"),
	}
}

// galleryFromEntry pulls the image URL list out of a gallery entry. Asset
// links are already resolved to URL strings by the client; anything that
// is not a string by now is skipped.
func galleryFromEntry(entry contentful.Entry) []string {
	norm := contentful.NormalizeFields(entry.Fields, galleryMapping)

	raw, ok := norm["images"].([]any)
	if !ok {
		return nil
	}

	urls := make([]string, 0, len(raw))
	for _, item := range raw {
		s, isString := item.(string)
		if !isString || s == "" {
			continue
		}
		urls = append(urls, contentful.AbsoluteURL(s))
	}
	return urls
}

// optionsFromEntry parses the build-your-own configuration entry. Option
// lists may hold plain strings (name only) or objects with name/title and
// price; options without an explicit price get the documented default.
func optionsFromEntry(entry contentful.Entry) (bases, items []model.CustomOption) {
	bases = parseOptions(entry.Fields["byoBase"], customizer.DefaultBasePrice)
	items = parseOptions(entry.Fields["byoItems"], customizer.DefaultItemPrice)
	return bases, items
}

func parseOptions(raw any, defaultPrice int) []model.CustomOption {
	slice, ok := raw.([]any)
	if !ok {
		return nil
	}

	options := make([]model.CustomOption, 0, len(slice))
	for _, item := range slice {
		switch v := item.(type) {
		case string:
			options = append(options, model.CustomOption{Name: v, Price: defaultPrice})
		case map[string]any:
			name, _ := v["name"].(string)
			if name == "" {
				name, _ = v["title"].(string)
			}
			if name == "" {
				continue
			}
			price := 0
			if f, isNumber := v["price"].(float64); isNumber {
				price = int(f)
			}
			if price == 0 {
				price = defaultPrice
			}
			options = append(options, model.CustomOption{Name: name, Price: price})
		}
	}
	return options
}
