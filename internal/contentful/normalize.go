package contentful

// NormalizeFields projects arbitrary source field names onto the fixed
// attribute names declared by the caller. The content source's field naming
// is inconsistent (several casings and spellings per attribute have been
// observed), so each target attribute carries a list of candidate source
// names and the first present, non-empty one wins. Attributes with no match
// map to nil, never to a default and never to an error.
func NormalizeFields(fields map[string]any, mapping map[string][]string) map[string]any {
	result := make(map[string]any, len(mapping))
	for attr, candidates := range mapping {
		result[attr] = nil
		for _, name := range candidates {
			value, ok := fields[name]
			if !ok || value == nil {
				continue
			}
			if s, isString := value.(string); isString && s == "" {
				continue
			}
			result[attr] = value
			break
		}
	}
	return result
}

// String returns the named attribute as a string, or empty when absent or
// not a string
func String(normalized map[string]any, attr string) string {
	s, _ := normalized[attr].(string)
	return s
}

// Int returns the named attribute as an integer. JSON numbers decode as
// float64; whole-rupee prices and ratings are truncated from that.
func Int(normalized map[string]any, attr string) int {
	f, _ := normalized[attr].(float64)
	return int(f)
}

// Bool returns the named attribute as a bool, false when absent
func Bool(normalized map[string]any, attr string) bool {
	b, _ := normalized[attr].(bool)
	return b
}

// Strings returns the named attribute as a string slice, keeping only
// string elements of a JSON array
func Strings(normalized map[string]any, attr string) []string {
	slice, ok := normalized[attr].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(slice))
	for _, item := range slice {
		if s, isString := item.(string); isString {
			out = append(out, s)
		}
	}
	return out
}
