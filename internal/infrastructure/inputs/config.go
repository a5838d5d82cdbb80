package inputs

// Config carries the settings of one input instance. Keys are defined by the
// input type; see its ConfigSpec.
type Config map[string]any

// String returns the string value for key, or "" when unset or not a string.
func (c Config) String(key string) string {
	s, _ := c[key].(string)
	return s
}

// Has reports whether key is set to a non-nil, non-empty value.
func (c Config) Has(key string) bool {
	v, ok := c[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString {
		return s != ""
	}
	return true
}

// Clone returns a shallow copy with room for extra keys.
func (c Config) Clone(extra int) Config {
	out := make(Config, len(c)+extra)
	for k, v := range c {
		out[k] = v
	}
	return out
}
