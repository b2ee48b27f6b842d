package slyr

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// cborMode uses Core Deterministic Encoding, so the same object always dumps to identical bytes
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("slyr: CBOR encoder initialization failed: " + err.Error())
	}
}

// DumpJSON renders the plain-data projection of o as indented JSON
func DumpJSON(o Object) ([]byte, error) {
	out, err := json.MarshalIndent(ToDict(o), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s as json: %w", typeNameOf(o), err)
	}
	return out, nil
}

// DumpYAML renders the plain-data projection of o as YAML
func DumpYAML(o Object) ([]byte, error) {
	out, err := yaml.Marshal(ToDict(o))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s as yaml: %w", typeNameOf(o), err)
	}
	return out, nil
}

// DumpCBOR renders the plain-data projection of o as deterministic CBOR
func DumpCBOR(o Object) ([]byte, error) {
	out, err := cborMode.Marshal(ToDict(o))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s as cbor: %w", typeNameOf(o), err)
	}
	return out, nil
}

// Dump renders o in the named format: "json", "yaml" or "cbor"
func Dump(o Object, format string) ([]byte, error) {
	switch format {
	case "json", "":
		return DumpJSON(o)
	case "yaml", "yml":
		return DumpYAML(o)
	case "cbor":
		return DumpCBOR(o)
	}
	return nil, fmt.Errorf("unknown dump format %q", format)
}
