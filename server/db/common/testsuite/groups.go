package testsuite

import (
	"testing"

	"github.com/chatwire/chat/server/db/common/test_data"
	"github.com/chatwire/chat/server/store/adapter"
	"github.com/chatwire/chat/server/store/types"
	"github.com/google/go-cmp/cmp"
)

func RunGroupCreate(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	for _, grp := range td.Groups {
		if err := adp.GroupCreate(grp); err != nil {
			t.Fatal(err)
		}
	}

	got, err := adp.GroupGet(td.Groups[0].Id)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(td.Groups[0], got, timeEqual); diff != "" {
		t.Errorf("Group mismatch (-want +got):\n%s", diff)
	}

	if _, err = adp.GroupGet(12345); !types.IsNotFound(err) {
		t.Error("Expected ErrNotFound, got", err)
	}
}

func RunGroupMembers(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	gid := td.Groups[0].Id
	alice, bob, carol := td.Users[0].Id, td.Users[1].Id, td.Users[2].Id

	added, err := adp.GroupMembersAdd(gid, []types.Uid{alice, bob})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]types.Uid{alice, bob}, added); diff != "" {
		t.Errorf("Added mismatch (-want +got):\n%s", diff)
	}

	// Existing members are not reported again.
	added, err = adp.GroupMembersAdd(gid, []types.Uid{bob, carol, carol})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]types.Uid{carol}, added); diff != "" {
		t.Errorf("Added mismatch (-want +got):\n%s", diff)
	}

	members, err := adp.GroupMembers(gid)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]types.Uid{alice, bob, carol}, members); diff != "" {
		t.Errorf("Members mismatch (-want +got):\n%s", diff)
	}

	removed, err := adp.GroupMembersRemove(gid, []types.Uid{carol, types.Uid(12345)})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]types.Uid{carol}, removed); diff != "" {
		t.Errorf("Removed mismatch (-want +got):\n%s", diff)
	}

	if ok, err := adp.GroupMemberExists(gid, carol); err != nil || ok {
		t.Errorf("Removed user is still a member: %v, %v", ok, err)
	}
	if ok, err := adp.GroupMemberExists(gid, bob); err != nil || !ok {
		t.Errorf("Member not found: %v, %v", ok, err)
	}
}

func RunGroupRequests(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	for _, req := range td.GroupReqs {
		if err := adp.GroupRequestCreate(req); err != nil {
			t.Fatal(err)
		}
	}

	pending := td.GroupReqs[1]
	got, err := adp.GroupRequestGet(pending.Id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Accepted || got.Group != pending.Group || got.User != pending.User {
		t.Errorf("Group request mismatch: %+v", got)
	}

	if err = adp.GroupRequestAccept(pending.Id); err != nil {
		t.Fatal(err)
	}
	if got, err = adp.GroupRequestGet(pending.Id); err != nil || !got.Accepted {
		t.Errorf("Request must be accepted: %+v, %v", got, err)
	}
}

func RunGroupDelete(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	gid := td.Groups[0].Id
	if err := adp.GroupDelete(gid); err != nil {
		t.Fatal(err)
	}
	if _, err := adp.GroupGet(gid); !types.IsNotFound(err) {
		t.Error("Deleted group still exists:", err)
	}
	members, err := adp.GroupMembers(gid)
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 0 {
		t.Error("Members of a deleted group must be gone, got", members)
	}
	if err = adp.GroupDelete(gid); !types.IsNotFound(err) {
		t.Error("Deleting a missing group must return ErrNotFound, got", err)
	}
}
