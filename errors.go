package slyr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTruncated          = errors.New("truncated data")
	ErrMalformedString    = errors.New("malformed string")
	ErrUnknownGuid        = errors.New("unknown guid")
	ErrNotImplemented     = errors.New("object type not implemented")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrInvalidColor       = errors.New("invalid color")
	ErrUnreadableSymbol   = errors.New("unreadable symbol")
)

// DecodeError is returned for every decode failure
//
// Kind is one of the Err* sentinels, so errors.Is works against it. The remaining
// fields describe where the failure happened, they are filled in once at the point
// of failure and the error is then passed up unchanged
type DecodeError struct {
	Kind error
	// Offset is the byte offset of the failing read
	Offset int
	// TypeName is the innermost object being read, or the display name of a
	// not-implemented object. Empty at top level and for unknown guids
	TypeName string
	// Guid of the innermost object being read, or of the unknown/not-implemented object
	Guid Guid
	// Path is the chain of object type names from the root to the failure
	Path []string
	// Name is the display name of a not-implemented object
	Name string
	// Got and Accepted are set for unsupported versions
	Got      uint16
	Accepted []uint16
	Detail   string
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	switch {
	case errors.Is(e.Kind, ErrNotImplemented):
		fmt.Fprintf(&sb, " %q (%s)", e.Name, e.Guid)
	case errors.Is(e.Kind, ErrUnknownGuid):
		fmt.Fprintf(&sb, " %s", e.Guid)
	case errors.Is(e.Kind, ErrUnsupportedVersion):
		fmt.Fprintf(&sb, " %d for %s (accepted %v)", e.Got, e.TypeName, e.Accepted)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	fmt.Fprintf(&sb, " at 0x%X", e.Offset)
	if len(e.Path) > 0 {
		fmt.Fprintf(&sb, " in %s", strings.Join(e.Path, " > "))
	}
	return sb.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}
