package inputs

// Config field types.
const (
	FieldString = "string"
	FieldNumber = "number"
	FieldBool   = "bool"
)

// ConfigField is one configuration key an input type understands.
type ConfigField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

// InputTypeInfo is what `msgdecode inputs` prints for one input type.
type InputTypeInfo struct {
	Type        string        `json:"type"`
	Description string        `json:"description"`
	Fields      []ConfigField `json:"fields"`
}

// MissingFields lists the required fields that cfg leaves unset or empty,
// in declaration order.
func (info InputTypeInfo) MissingFields(cfg Config) []string {
	var missing []string
	for _, f := range info.Fields {
		if f.Required && !cfg.Has(f.Name) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
