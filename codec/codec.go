// Package codec defines how command, event, and state values are
// encoded and decoded for whatever medium hosts them. The decider core
// itself never performs I/O; these codecs exist for the hosting
// runtime that moves values across process boundaries.
package codec

import (
	"errors"
	"fmt"
)

var (
	ErrCodecNotRegistered = errors.New("decider: codec not registered")

	// Default is the codec used when a host does not choose one.
	Default = JSON

	// Codecs indexes the built-in codecs by name.
	Codecs map[string]Codec
)

func init() {
	Codecs = make(map[string]Codec)
	for _, c := range []Codec{Binary, JSON, MsgPack, ProtoBuf} {
		Codecs[c.Name()] = c
	}
}

// Codec marshals and unmarshals values. The name is stable and can be
// stored alongside encoded data to select the codec on decode.
type Codec interface {
	Name() string
	Marshal(any) ([]byte, error)
	Unmarshal([]byte, any) error
}

// Get returns the codec registered under the given name.
func Get(name string) (Codec, error) {
	c, ok := Codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCodecNotRegistered, name)
	}
	return c, nil
}
