// Package id provides unique identifier generators commonly used to
// back the decider Identity capability, such as deriving aggregate and
// stream identifiers.
package id

import (
	"github.com/google/uuid"
	"github.com/nats-io/nuid"
)

var (
	// NUID generates short, lexicographically sortable identifiers.
	// It is the default choice for event and entity identifiers.
	NUID ID = &nuidGen{}

	// UUID generates RFC 4122 version 4 identifiers.
	UUID ID = &uuidGen{}
)

// ID generates unique string identifiers.
type ID interface {
	New() string
}

type nuidGen struct{}

func (*nuidGen) New() string {
	return nuid.Next()
}

type uuidGen struct{}

func (*uuidGen) New() string {
	return uuid.NewString()
}
