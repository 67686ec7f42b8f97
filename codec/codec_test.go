package codec

import (
	"testing"

	"github.com/fold-labs/decider/testutil"
)

func TestGet(t *testing.T) {
	is := testutil.NewIs(t)

	for _, name := range []string{"binary", "json", "msgpack", "protobuf"} {
		c, err := Get(name)
		is.NoErr(err)
		is.Equal(c.Name(), name)
	}
}

func TestGet_NotRegistered(t *testing.T) {
	is := testutil.NewIs(t)

	_, err := Get("cbor")
	is.Err(err, ErrCodecNotRegistered)
}

func TestDefault(t *testing.T) {
	is := testutil.NewIs(t)
	is.Equal(Default.Name(), "json")
}
