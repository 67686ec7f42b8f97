package types

import (
	"testing"

	"github.com/fold-labs/decider/codec"
	"github.com/fold-labs/decider/testutil"
)

type FundsDeposited struct {
	Account string
	Amount  int
}

type FundsWithdrawn struct {
	Account string
	Amount  int
}

var depositSchema = []byte(`{
	"type": "object",
	"required": ["Account", "Amount"],
	"properties": {
		"Account": {"type": "string", "minLength": 1},
		"Amount": {"type": "integer", "minimum": 1}
	}
}`)

func newTestRegistry(t *testing.T) Registry {
	t.Helper()

	r, err := NewInMemRegistry(map[string]Type{
		"funds-deposited": InMemType{
			InitFn:    func() any { return &FundsDeposited{} },
			SchemaDoc: depositSchema,
		},
		"funds-withdrawn": InMemType{
			InitFn: func() any { return &FundsWithdrawn{} },
		},
	}, codec.JSON)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestInMemRegistry_Lookup(t *testing.T) {
	is := testutil.NewIs(t)

	r := newTestRegistry(t)

	n, err := r.Lookup(&FundsDeposited{})
	is.NoErr(err)
	is.Equal(n, "funds-deposited")

	// Non-pointer values resolve as well.
	n, err = r.Lookup(FundsWithdrawn{})
	is.NoErr(err)
	is.Equal(n, "funds-withdrawn")

	type unregistered struct{}
	_, err = r.Lookup(&unregistered{})
	is.Err(err, ErrNoTypeForStruct)
}

func TestInMemRegistry_Init(t *testing.T) {
	is := testutil.NewIs(t)

	r := newTestRegistry(t)

	v, err := r.Init("funds-deposited")
	is.NoErr(err)
	is.Equal(v, &FundsDeposited{})

	_, err = r.Init("funds-frozen")
	is.Err(err, ErrTypeNotRegistered)
}

func TestInMemRegistry_RoundTrip(t *testing.T) {
	is := testutil.NewIs(t)

	r := newTestRegistry(t)

	in := &FundsDeposited{Account: "acct-1", Amount: 25}

	b, err := r.Marshal(in)
	is.NoErr(err)

	out, err := r.UnmarshalType(b, "funds-deposited")
	is.NoErr(err)
	is.Equal(out, in)
}

func TestInMemRegistry_SchemaViolation(t *testing.T) {
	is := testutil.NewIs(t)

	r := newTestRegistry(t)

	// Amount below the schema minimum.
	_, err := r.Marshal(&FundsDeposited{Account: "acct-1", Amount: 0})
	is.Err(err, ErrSchemaViolation)

	// No schema declared for withdrawals, so nothing to violate.
	_, err = r.Marshal(&FundsWithdrawn{Account: "acct-1", Amount: 0})
	is.NoErr(err)
}

func TestInMemRegistry_BadSchema(t *testing.T) {
	is := testutil.NewIs(t)

	_, err := NewInMemRegistry(map[string]Type{
		"funds-deposited": InMemType{
			InitFn:    func() any { return &FundsDeposited{} },
			SchemaDoc: []byte(`{`),
		},
	}, codec.JSON)
	is.Err(err, ErrTypeNotValid)
}

func TestInMemRegistry_InvalidTypes(t *testing.T) {
	is := testutil.NewIs(t)

	// Invalid characters in the name.
	_, err := NewInMemRegistry(map[string]Type{
		"funds deposited": InMemType{InitFn: func() any { return &FundsDeposited{} }},
	}, codec.JSON)
	is.Err(err, ErrTypeNotValid)

	// Missing init func.
	_, err = NewInMemRegistry(map[string]Type{
		"funds-deposited": InMemType{},
	}, codec.JSON)
	is.Err(err, ErrTypeNotValid)

	// Init func must return a pointer.
	_, err = NewInMemRegistry(map[string]Type{
		"funds-deposited": InMemType{InitFn: func() any { return FundsDeposited{} }},
	}, codec.JSON)
	is.Err(err, ErrTypeNotValid)

	// Pointer value must be a struct.
	_, err = NewInMemRegistry(map[string]Type{
		"funds-deposited": InMemType{InitFn: func() any { n := 1; return &n }},
	}, codec.JSON)
	is.Err(err, ErrTypeNotValid)
}

func TestInMemRegistry_DefaultCodec(t *testing.T) {
	is := testutil.NewIs(t)

	r, err := NewInMemRegistry(map[string]Type{
		"funds-withdrawn": InMemType{InitFn: func() any { return &FundsWithdrawn{} }},
	}, nil)
	is.NoErr(err)
	is.Equal(r.Codec().Name(), codec.Default.Name())
}
