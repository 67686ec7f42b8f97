package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fold-labs/decider/codec"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// InMemRegistry indexes the registered types in memory and marshals
// values between their native form and their encoded representation.
type InMemRegistry struct {
	// Codec for marshaling and unmarshaling values.
	codec codec.Codec

	// Index of types by registered name.
	types map[string]Type

	// Reflection type to the registered name.
	rtypes map[reflect.Type]string

	// Compiled schemas by registered name, for types that declare one.
	schemas map[string]*jsonschema.Schema
}

func (r *InMemRegistry) Codec() codec.Codec {
	return r.codec
}

// InMemType declares one variant for registration.
type InMemType struct {
	InitFn func() any

	// SchemaDoc is an optional JSON schema the encoded form of the
	// type must satisfy.
	SchemaDoc []byte
}

func (t InMemType) Init() func() any {
	return t.InitFn
}

func (t InMemType) Schema() []byte {
	return t.SchemaDoc
}

func (r *InMemRegistry) validate(name string, typ Type) error {
	if name == "" {
		return fmt.Errorf("%w: missing name", ErrTypeNotValid)
	}

	if err := validateTypeName(name); err != nil {
		return err
	}

	if typ.Init() == nil {
		return fmt.Errorf("%w: %s: missing init func", ErrTypeNotValid, name)
	}
	// Ensure the initialized value is not nil.
	v := typ.Init()()
	if v == nil {
		return fmt.Errorf("%w: %s: init func returns nil", ErrTypeNotValid, name)
	}

	// Get the Go type in order to transparently serialize to the correct name.
	rt := reflect.TypeOf(v)

	// Ensure the initialized type is a pointer so that deserialization works.
	if rt.Kind() != reflect.Ptr {
		return fmt.Errorf("%w: %s: init func must return a pointer value", ErrTypeNotValid, name)
	}

	// Ensure that the pointer value is a struct type.
	if rt.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s: value type must be a struct", ErrTypeNotValid, name)
	}

	// Ensure [de]serialization works in the base case.
	b, err := r.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to marshal with codec: %s", ErrTypeNotValid, name, err)
	}

	err = r.codec.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to unmarshal with codec: %s", ErrTypeNotValid, name, err)
	}

	return nil
}

// compileSchema compiles the schema document declared for a type.
func compileSchema(name string, doc []byte) (*jsonschema.Schema, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: bad schema: %s", ErrTypeNotValid, name, err)
	}

	url := name + ".schema.json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, inst); err != nil {
		return nil, fmt.Errorf("%w: %s: bad schema: %s", ErrTypeNotValid, name, err)
	}

	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: bad schema: %s", ErrTypeNotValid, name, err)
	}
	return sch, nil
}

// validateSchema checks the logical value against the compiled schema.
// The value is normalized through JSON regardless of the registry
// codec so the schema applies to the value, not the encoding.
func validateSchema(sch *jsonschema.Schema, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSchemaViolation, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSchemaViolation, err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %s", ErrSchemaViolation, err)
	}
	return nil
}

func (r *InMemRegistry) addType(name string, typ Type, sch *jsonschema.Schema) {
	r.types[name] = typ

	// Initialize a value, reflect the type to index.
	v := typ.Init()()
	rt := reflect.TypeOf(v)

	r.rtypes[rt] = name
	r.rtypes[rt.Elem()] = name

	if sch != nil {
		r.schemas[name] = sch
	}
}

// Init a value given the registered name of the type.
func (r *InMemRegistry) Init(t string) (any, error) {
	x, ok := r.types[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotRegistered, t)
	}

	v := x.Init()()
	return v, nil
}

// Lookup returns the registered name of the type given a value.
func (r *InMemRegistry) Lookup(v any) (string, error) {
	rt := reflect.TypeOf(v)
	t, ok := r.rtypes[rt]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoTypeForStruct, rt)
	}

	return t, nil
}

// Marshal serializes the value to a byte slice. This call validates
// the type is registered, checks the value against the type's schema
// when one is declared, and delegates to the codec.
func (r *InMemRegistry) Marshal(v any) ([]byte, error) {
	name, err := r.Lookup(v)
	if err != nil {
		return nil, err
	}

	if sch, ok := r.schemas[name]; ok {
		if err := validateSchema(sch, v); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	b, err := r.codec.Marshal(v)
	if err != nil {
		return b, fmt.Errorf("%T: marshal error: %w", v, err)
	}
	return b, nil
}

// Unmarshal deserializes a byte slice into the value. This call
// validates the type is registered and delegates to the codec.
func (r *InMemRegistry) Unmarshal(b []byte, v any) error {
	_, err := r.Lookup(v)
	if err != nil {
		return err
	}

	err = r.codec.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("%T: unmarshal error: %w", v, err)
	}
	return nil
}

// UnmarshalType initializes a new value for the registered type,
// unmarshals the byte slice, and returns it.
func (r *InMemRegistry) UnmarshalType(b []byte, t string) (any, error) {
	v, err := r.Init(t)
	if err != nil {
		return nil, err
	}
	err = r.Unmarshal(b, v)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// NewInMemRegistry builds a registry from the full set of types the
// domain enumerates. The codec defaults to codec.Default when nil.
func NewInMemRegistry(types map[string]Type, c codec.Codec) (Registry, error) {
	if c == nil {
		c = codec.Default
	}

	r := &InMemRegistry{
		codec:   c,
		types:   make(map[string]Type),
		rtypes:  make(map[reflect.Type]string),
		schemas: make(map[string]*jsonschema.Schema),
	}

	for n, t := range types {
		if err := r.validate(n, t); err != nil {
			return nil, err
		}

		var (
			sch *jsonschema.Schema
			err error
		)
		if doc := t.Schema(); doc != nil {
			sch, err = compileSchema(n, doc)
			if err != nil {
				return nil, err
			}
		}

		r.addType(n, t, sch)
	}

	return r, nil
}
