package inputs

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps input type names to their factories. Input packages such as
// fileinput register into GlobalRegistry from init().
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// GlobalRegistry is the registry populated by input packages at init time.
var GlobalRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory, replacing any earlier one of the same name.
func (r *Registry) Register(factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[factory.Name()] = factory
}

func (r *Registry) factory(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown input type: %s", name)
	}
	return f, nil
}

// Create builds a MessageInput for the given type and config.
func (r *Registry) Create(name string, cfg Config, buffer InputBuffer) (MessageInput, error) {
	f, err := r.factory(name)
	if err != nil {
		return nil, err
	}
	return f.Create(cfg, buffer)
}

// ValidateConfig checks cfg against the required fields of the type and,
// when the factory is a ConfigValidator, its own rules.
func (r *Registry) ValidateConfig(typeName string, cfg Config) error {
	f, err := r.factory(typeName)
	if err != nil {
		return err
	}
	if missing := f.ConfigSpec().MissingFields(cfg); len(missing) > 0 {
		return fmt.Errorf("%s input: missing %s", typeName, strings.Join(missing, ", "))
	}
	if v, ok := f.(ConfigValidator); ok {
		return v.ValidateConfig(cfg)
	}
	return nil
}

// ListRegistered returns the registered type names, sorted.
func (r *Registry) ListRegistered() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetTypeInfo returns the config spec for the given input type. ok is false if the type is not registered.
func (r *Registry) GetTypeInfo(name string) (info InputTypeInfo, ok bool) {
	f, err := r.factory(name)
	if err != nil {
		return InputTypeInfo{}, false
	}
	return f.ConfigSpec(), true
}

// AllTypesInfo returns the config spec of every registered type, sorted by type.
func (r *Registry) AllTypesInfo() []InputTypeInfo {
	names := r.ListRegistered()
	out := make([]InputTypeInfo, 0, len(names))
	for _, name := range names {
		if info, ok := r.GetTypeInfo(name); ok {
			out = append(out, info)
		}
	}
	return out
}

// Run builds the inputs described by specs and runs them one after another.
// It stops at the first failing input or once ctx is cancelled.
func (r *Registry) Run(ctx context.Context, specs []InputSpec, buffer InputBuffer) error {
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		cfg := spec.ConfigWithDescription()
		if err := r.ValidateConfig(spec.Type, cfg); err != nil {
			return err
		}
		input, err := r.Create(spec.Type, cfg, buffer)
		if err != nil {
			return err
		}
		if err := runInput(ctx, input); err != nil {
			return err
		}
	}
	return nil
}

// runInput drives one input to completion and always stops it.
func runInput(ctx context.Context, input MessageInput) error {
	startErr := input.Start(ctx)
	return errors.Join(startErr, input.Stop())
}
