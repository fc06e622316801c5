package filter

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds named filter presets and applies filters to result rows
type Manager struct {
	compiler Compiler
	presets  map[string]CompiledFilter
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewExprCompiler(WithCache(100)),
		presets:  make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterPreset registers a named filter or replaces an existing one
func (m *Manager) RegisterPreset(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile preset '%s': %w", name, err)
	}

	m.mu.Lock()
	m.presets[name] = filter
	m.mu.Unlock()

	return nil
}

// RegisterPresets registers several presets. Nothing is registered when
// any of them fails to compile.
func (m *Manager) RegisterPresets(presets map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(presets))

	for _, name := range slices.Sorted(maps.Keys(presets)) {
		filter, err := m.compiler.Compile(presets[name])
		if err != nil {
			return fmt.Errorf("failed to compile preset '%s': %w", name, err)
		}
		compiled[name] = filter
	}

	m.mu.Lock()
	maps.Copy(m.presets, compiled)
	m.mu.Unlock()

	return nil
}

// Preset returns a registered filter by name
func (m *Manager) Preset(name string) (CompiledFilter, error) {
	m.mu.RLock()
	filter, ok := m.presets[name]
	m.mu.RUnlock()

	if !ok {
		return nil, &UnknownPresetError{Name: name}
	}
	return filter, nil
}

// Presets returns the registered preset names in sorted order
func (m *Manager) Presets() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.presets))
}

// Resolve picks the filter for a command line: an inline expression wins
// over a preset name. It returns nil when neither is given.
func (m *Manager) Resolve(expression, preset string) (CompiledFilter, error) {
	switch {
	case expression != "":
		return m.compiler.Compile(expression)
	case preset != "":
		return m.Preset(preset)
	default:
		return nil, nil
	}
}

// Apply returns the rows matching filter, in their original order. A nil
// filter keeps every row. The first evaluation error aborts.
func Apply(filter CompiledFilter, rows []Row) ([]Row, error) {
	if filter == nil {
		return rows, nil
	}

	matched := make([]Row, 0, len(rows))
	for _, row := range rows {
		ok, err := filter.Match(row)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return matched, nil
}
