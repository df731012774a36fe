package testsuite

import (
	"testing"

	"github.com/chatwire/chat/server/db/common/test_data"
	"github.com/chatwire/chat/server/store/adapter"
	"github.com/chatwire/chat/server/store/types"
)

func RunFriendRequestCreate(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	for _, req := range td.Friends {
		if err := adp.FriendRequestCreate(req); err != nil {
			t.Fatal(err)
		}
	}

	// The same pair in the opposite direction is a duplicate.
	reverse := &types.FriendRequest{
		Id:        12345,
		CreatedAt: td.Now,
		From:      td.Friends[0].To,
		To:        td.Friends[0].From,
	}
	if err := adp.FriendRequestCreate(reverse); err != types.ErrDuplicate {
		t.Error("Should be duplicate error but got", err)
	}
}

func RunFriendRequestGet(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	if _, err := adp.FriendRequestGet(12345); !types.IsNotFound(err) {
		t.Error("Expected ErrNotFound, got", err)
	}

	got, err := adp.FriendRequestGet(td.Friends[0].Id)
	if err != nil {
		t.Fatal(err)
	}
	if got.From != td.Friends[0].From || got.To != td.Friends[0].To || got.Accepted {
		t.Errorf("Friend request mismatch: %+v", got)
	}
}

func RunFriendRequestAccept(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	req := td.Friends[0]
	if ok, err := adp.FriendshipExists(req.From, req.To, true); err != nil || ok {
		t.Fatalf("Pending request is not a friendship: %v, %v", ok, err)
	}
	if ok, err := adp.FriendshipExists(req.To, req.From, false); err != nil || !ok {
		t.Fatalf("Pending request must be found in either direction: %v, %v", ok, err)
	}

	if err := adp.FriendRequestAccept(req.Id); err != nil {
		t.Fatal(err)
	}

	if ok, err := adp.FriendshipExists(req.To, req.From, true); err != nil || !ok {
		t.Errorf("Accepted request must be a friendship in either direction: %v, %v", ok, err)
	}
}

func RunFriendRequestDelete(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	req := td.Friends[1]
	if err := adp.FriendRequestDelete(req.Id); err != nil {
		t.Fatal(err)
	}
	if err := adp.FriendRequestDelete(req.Id); !types.IsNotFound(err) {
		t.Error("Deleting a missing request must return ErrNotFound, got", err)
	}
	if ok, _ := adp.FriendshipExists(req.From, req.To, false); ok {
		t.Error("Deleted request still exists")
	}
}
