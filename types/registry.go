// Package types maintains the closed sets of command and event
// variants a domain enumerates. Each registered Go type maps to a
// stable name, an optional JSON schema, and a codec, so a hosting
// runtime can move decider inputs and outputs across process
// boundaries without the core ever serializing anything itself.
package types

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/fold-labs/decider/codec"
)

var (
	ErrTypeNotValid      = errors.New("decider: type not valid")
	ErrTypeNotRegistered = errors.New("decider: type not registered")
	ErrNoTypeForStruct   = errors.New("decider: no type for struct")
	ErrSchemaViolation   = errors.New("decider: schema violation")

	nameRegex = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*$`)
)

// Type describes one registered variant.
type Type interface {
	// Init returns a constructor for a new zero value of the type.
	// The constructor must return a pointer to a struct.
	Init() func() any

	// Schema optionally returns a JSON schema document the encoded
	// form of the type must satisfy. Nil means no schema.
	Schema() []byte
}

// Registry resolves between registered names, Go types, and encoded
// representations.
type Registry interface {
	Codec() codec.Codec
	Init(t string) (any, error)
	Lookup(v any) (string, error)
	Marshal(v any) ([]byte, error)
	Unmarshal(b []byte, v any) error
	UnmarshalType(b []byte, t string) (any, error)
}

func validateTypeName(n string) error {
	if !nameRegex.MatchString(n) {
		return fmt.Errorf("%w: name %q has invalid characters", ErrTypeNotValid, n)
	}
	return nil
}
