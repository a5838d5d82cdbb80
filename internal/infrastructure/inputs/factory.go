package inputs

// Factory builds inputs of one type. Input packages implement it and
// register with a Registry from init().
type Factory interface {
	Name() string
	ConfigSpec() InputTypeInfo
	Create(cfg Config, buffer InputBuffer) (MessageInput, error)
}

// ConfigValidator is implemented by factories whose config needs checks
// beyond the required fields listed in ConfigSpec.
type ConfigValidator interface {
	ValidateConfig(cfg Config) error
}
