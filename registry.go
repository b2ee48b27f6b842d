package slyr

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Factory creates a fresh, unpopulated object
type Factory func() Object

type GuidStatus uint8

const (
	GuidUnknown GuidStatus = iota
	GuidImplemented
	GuidNotImplemented
)

func (s GuidStatus) String() string {
	switch s {
	case GuidImplemented:
		return "implemented"
	case GuidNotImplemented:
		return "not implemented"
	}
	return "unknown"
}

// Registry maps class ids to object factories
//
// a Registry is populated once before decoding starts and is read-only afterwards,
// so it can be shared by concurrent decodes
type Registry struct {
	implemented    map[Guid]registration
	notImplemented map[Guid]string
}

type registration struct {
	factory  Factory
	typeName string
	goType   reflect.Type
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		implemented:    make(map[Guid]registration),
		notImplemented: make(map[Guid]string),
	}
}

// Register adds an object factory for a guid
//
// registering the same type again is a no-op. Registering a different type under a
// known guid, or a guid listed as not implemented, panics
func (r *Registry) Register(guid Guid, factory Factory) {
	if guid.IsNull() {
		panic("cannot register the null guid")
	}
	sample := factory()
	goType := reflect.TypeOf(sample)
	if existing, ok := r.implemented[guid]; ok {
		if existing.goType == goType {
			return
		}
		panic(fmt.Sprintf("guid %s already registered to %s (attempted %s)", guid, existing.typeName, sample.TypeName()))
	}
	if name, ok := r.notImplemented[guid]; ok {
		panic(fmt.Sprintf("guid %s already registered as not implemented %q", guid, name))
	}
	r.implemented[guid] = registration{
		factory:  factory,
		typeName: sample.TypeName(),
		goType:   goType,
	}
}

// RegisterNotImplemented records a known object type which is deliberately not decoded
func (r *Registry) RegisterNotImplemented(guid Guid, name string) {
	if existing, ok := r.implemented[guid]; ok {
		panic(fmt.Sprintf("guid %s already registered to %s", guid, existing.typeName))
	}
	if existing, ok := r.notImplemented[guid]; ok && existing != name {
		panic(fmt.Sprintf("guid %s already registered as not implemented %q", guid, existing))
	}
	r.notImplemented[guid] = name
}

// Create returns a new, unpopulated object for the guid
//
// the null guid yields (nil, nil)
func (r *Registry) Create(guid Guid) (Object, error) {
	if guid.IsNull() {
		return nil, nil
	}
	if reg, ok := r.implemented[guid]; ok {
		return reg.factory(), nil
	}
	if name, ok := r.notImplemented[guid]; ok {
		return nil, &DecodeError{Kind: ErrNotImplemented, Guid: guid, Name: name}
	}
	return nil, &DecodeError{Kind: ErrUnknownGuid, Guid: guid}
}

// Lookup returns the display name and status of a guid
func (r *Registry) Lookup(guid Guid) (name string, status GuidStatus) {
	if reg, ok := r.implemented[guid]; ok {
		return reg.typeName, GuidImplemented
	}
	if name, ok := r.notImplemented[guid]; ok {
		return name, GuidNotImplemented
	}
	return "", GuidUnknown
}

// Guids returns every known guid (implemented or not), sorted by textual form
func (r *Registry) Guids() []Guid {
	result := make([]Guid, 0, len(r.implemented)+len(r.notImplemented))
	for g := range r.implemented {
		result = append(result, g)
	}
	for g := range r.notImplemented {
		result = append(result, g)
	}
	slices.SortFunc(result, func(a, b Guid) int {
		return strings.Compare(a.String(), b.String())
	})
	return result
}

// Exclusive verifies that no guid is both implemented and not implemented
func (r *Registry) Exclusive() error {
	for g, name := range r.notImplemented {
		if reg, ok := r.implemented[g]; ok {
			return fmt.Errorf("guid %s is both %s and not implemented %q", g, reg.typeName, name)
		}
	}
	return nil
}
