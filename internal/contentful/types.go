package contentful

// Status is the tagged outcome of a content fetch. The content source is
// fail-soft: callers never see transport or configuration errors, only one
// of these three outcomes.
type Status int

const (
	// StatusOK means the fetch succeeded and returned data
	StatusOK Status = iota
	// StatusEmpty means the fetch succeeded but the source had nothing
	StatusEmpty
	// StatusUnavailable means configuration was missing or transport failed
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// Sys carries the delivery API's system metadata for entries, assets and links
type Sys struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	LinkType string `json:"linkType,omitempty"`
}

// Entry is a normalized content entry. Fields is the raw field map with
// asset links already resolved to absolute URLs.
type Entry struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// Asset mirrors the delivery API's asset shape
type Asset struct {
	Sys    Sys         `json:"sys"`
	Fields AssetFields `json:"fields"`
}

// AssetFields holds the subset of asset fields the storefront uses
type AssetFields struct {
	Title string    `json:"title,omitempty"`
	File  AssetFile `json:"file"`
}

// AssetFile holds the file reference of an asset. URL may be
// protocol-relative in responses.
type AssetFile struct {
	URL string `json:"url"`
}

type includes struct {
	Asset []Asset `json:"Asset"`
}

type entryResponse struct {
	Sys      Sys            `json:"sys"`
	Fields   map[string]any `json:"fields"`
	Includes includes       `json:"includes"`
}

type entriesResponse struct {
	Items    []entryResponse `json:"items"`
	Includes includes        `json:"includes"`
}

type assetsResponse struct {
	Items []Asset `json:"items"`
}
