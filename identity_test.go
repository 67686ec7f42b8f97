package decider

import (
	"strings"
	"testing"

	"github.com/fold-labs/decider/id"
	"github.com/fold-labs/decider/testutil"
)

type accountState struct {
	ID      string
	Balance int64
}

func (accountState) StateTag() {}

// Identity derives the stream identifier for the account aggregate.
func (s accountState) Identity() string {
	return "account." + s.ID
}

var _ Identity[string] = accountState{}

func TestIdentity(t *testing.T) {
	is := testutil.NewIs(t)

	s := accountState{ID: id.NUID.New(), Balance: 100}

	is.True(strings.HasPrefix(s.Identity(), "account."))
	is.Equal(s.Identity(), s.Identity())
}
