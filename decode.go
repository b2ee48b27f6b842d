package slyr

import (
	"github.com/rs/zerolog"
)

// DecodeOptions represents the options passed to Decode
type DecodeOptions struct {
	// Registry resolves class ids, defaults to DefaultRegistry
	Registry *Registry
	// ColorLUT overrides the CIELAB to RGB conversion for known values, defaults to DefaultColorLUT
	ColorLUT ColorLUT
	// Logger receives debug tracing of the decode, defaults to a no-op logger
	Logger *zerolog.Logger
	// Offset is the position of the root object within the blob
	Offset int
	// RequireFullConsumption fails the decode if bytes remain after the root object
	RequireFullConsumption bool
}

func (o *DecodeOptions) withDefaults() *DecodeOptions {
	result := DecodeOptions{}
	if o != nil {
		result = *o
	}
	if result.Registry == nil {
		result.Registry = DefaultRegistry()
	}
	if result.ColorLUT == nil {
		result.ColorLUT = DefaultColorLUT()
	}
	if result.Logger == nil {
		nop := zerolog.Nop()
		result.Logger = &nop
	}
	return &result
}

// Decode reads the root object of a blob
//
// if the options supplied is nil, defaults are used. A null root yields (nil, nil)
func Decode(blob []byte, options *DecodeOptions) (Object, error) {
	options = options.withDefaults()
	if options.Offset < 0 || options.Offset > len(blob) {
		return nil, &DecodeError{Kind: ErrTruncated, Offset: options.Offset, Detail: "offset outside blob"}
	}
	s := NewStream(blob, options)
	obj, err := s.ReadObject()
	if err != nil {
		return nil, err
	}
	if options.RequireFullConsumption && s.Remaining() > 0 {
		return nil, s.errorf(ErrUnreadableSymbol, s.Tell(), "%d trailing bytes after %s", s.Remaining(), typeNameOf(obj))
	}
	return obj, nil
}

func typeNameOf(obj Object) string {
	if obj == nil {
		return "null object"
	}
	return obj.TypeName()
}
