package testsuite

import (
	"testing"

	"github.com/chatwire/chat/server/db/common/test_data"
	"github.com/chatwire/chat/server/store/adapter"
	"github.com/chatwire/chat/server/store/types"
)

func RunMessageSave(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	for _, msg := range td.Msgs {
		if err := adp.MessageSave(msg); err != nil {
			t.Fatal(err)
		}
	}

	// IDs are unique.
	if err := adp.MessageSave(td.Msgs[0]); err != types.ErrDuplicate {
		t.Error("Should be duplicate error but got", err)
	}
}
