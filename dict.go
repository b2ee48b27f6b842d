package slyr

import (
	"reflect"
)

// Dict is the plain-data projection of an object, see ToDict
type Dict map[string]any

// ToDict projects an object to nested maps, slices and scalars
//
// every object gets "type" and "version" keys; symbol layers add "enabled", "locked",
// "symbol_level" and "tags" (when not empty). A nil object yields a nil Dict
func ToDict(o Object) Dict {
	if isNil(o) {
		return nil
	}
	d := o.Fields()
	if d == nil {
		d = Dict{}
	}
	d["type"] = o.TypeName()
	d["version"] = int(o.Version())
	if layer, ok := o.(SymbolLayer); ok {
		props := layer.Props()
		d["enabled"] = props.Enabled
		d["locked"] = props.Locked
		d["symbol_level"] = int64(props.SymbolLevel)
		if props.Tags != "" {
			d["tags"] = props.Tags
		}
	}
	return d
}

// dictOf is ToDict for child fields, an absent child projects to an untyped nil
func dictOf(o Object) any {
	if isNil(o) {
		return nil
	}
	return ToDict(o)
}

// isNil reports whether o is nil, including a typed nil pointer held in the interface
func isNil(o any) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
