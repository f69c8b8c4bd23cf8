package model

// Product represents one catalog entry as served to the storefront.
// Products are immutable once fetched; identity is the entry ID.
// Prices are whole rupees.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	Price       int      `json:"price"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
	Image       string   `json:"image,omitempty"`
}

// CategoryDescriptor is a filterable category with per-locale labels.
// The "all" key is synthetic: it matches every product and never comes
// from the content source.
type CategoryDescriptor struct {
	Key   string            `json:"key"`
	Label map[string]string `json:"label"`
}

// Testimonial is read-only display data
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
}

// HeroContent holds the hero section copy. Every field is optional;
// consumers must tolerate the not-yet-loaded state.
type HeroContent struct {
	MainTitle1 string `json:"main_title_1,omitempty"`
	MainTitle2 string `json:"main_title_2,omitempty"`
	Subtext    string `json:"subtext,omitempty"`
	SmallText  string `json:"small_text,omitempty"`
	HeroImage  string `json:"hero_image,omitempty"`
}

// CustomOption is a selectable base or add-on item in the customizer
type CustomOption struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}
