// Package typesystem implements the type registry the reader consults to
// resolve a type name to a TypeDescr (spec §1's external "Type registry"
// collaborator, and spec §3's TypeDescr metatype).
package typesystem

import (
	"fmt"

	"github.com/xo-lang/schematica/internal/config"
)

// TypeDescr is an opaque handle to a type's metadata, as seen by the
// reader. The reader never inspects its fields; it only passes it along
// (to ConvertExpr.Dest, Variable.Type, …).
type TypeDescr struct {
	name string
}

// Name returns the type's registered name.
func (td *TypeDescr) Name() string { return td.name }

func (td *TypeDescr) String() string { return td.name }

// Registry resolves type names to TypeDescr values. The zero value is not
// usable; construct with NewRegistry.
type Registry struct {
	byName map[string]*TypeDescr
}

// NewRegistry returns a registry pre-populated with config.BuiltinTypeNames.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*TypeDescr)}
	for _, name := range config.BuiltinTypeNames {
		r.byName[name] = &TypeDescr{name: name}
	}
	return r
}

// Register adds a user-defined type alias. It is a no-op if the name is
// already registered (built-ins cannot be shadowed).
func (r *Registry) Register(name string) *TypeDescr {
	if td, ok := r.byName[name]; ok {
		return td
	}
	td := &TypeDescr{name: name}
	r.byName[name] = td
	return td
}

// ErrUnknownType is returned by Resolve when name has not been registered.
type ErrUnknownType struct{ Name string }

func (e *ErrUnknownType) Error() string { return fmt.Sprintf("unknown type name: %q", e.Name) }

// Resolve looks up name, returning ErrUnknownType if it is not registered.
func (r *Registry) Resolve(name string) (*TypeDescr, error) {
	if td, ok := r.byName[name]; ok {
		return td, nil
	}
	return nil, &ErrUnknownType{Name: name}
}
