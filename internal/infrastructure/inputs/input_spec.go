package inputs

// InputSpec names an input type and the config to build it from.
// The decode command builds one per path argument and hands them to Registry.Run.
type InputSpec struct {
	Type        string
	Description string // stored as Config["description"] when set
	Config      Config
}

// ConfigWithDescription returns the config to create the input with. Config
// itself is left untouched.
func (s InputSpec) ConfigWithDescription() Config {
	cfg := s.Config.Clone(1)
	if s.Description != "" {
		cfg["description"] = s.Description
	}
	return cfg
}
