// Package testutil provides small assertion helpers for tests.
package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func NewIs(t *testing.T) *Is {
	return &Is{t}
}

// Is wraps a testing.T with diff-based assertions.
type Is struct {
	t *testing.T
}

// Equal fails the test with a diff when the two values are not equal.
func (is *Is) Equal(a, b any) {
	if d := cmp.Diff(a, b); d != "" {
		is.t.Helper()
		is.t.Fatal(d)
	}
}

// Err fails the test when err is nil or, if baseErr is non-nil, when
// err does not wrap baseErr.
func (is *Is) Err(err error, baseErr error) {
	if err == nil {
		is.t.Helper()
		is.t.Fatal("expected error, got none")
	} else if baseErr != nil {
		if !errors.Is(err, baseErr) {
			is.t.Helper()
			is.t.Fatalf("expected error wrapping %v, got %v", baseErr, err)
		}
	}
}

// NoErr fails the test when err is non-nil.
func (is *Is) NoErr(err error) {
	if err != nil {
		is.t.Helper()
		is.t.Fatal(err)
	}
}

// True fails the test when t is false.
func (is *Is) True(t bool) {
	if !t {
		is.t.Helper()
		is.t.Fatal("expected true")
	}
}
