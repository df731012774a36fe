package store

import (
	"errors"
	"testing"

	"github.com/chatwire/chat/server/store/mock_store"
	"github.com/chatwire/chat/server/store/types"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
)

func setupMocks(t *testing.T) (*mock_store.MockAdapter, *mock_store.MockHooks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ma := mock_store.NewMockAdapter(ctrl)
	mh := mock_store.NewMockHooks(ctrl)

	if err := idGen.Init(1); err != nil {
		t.Fatal(err)
	}
	UseAdapter(ma)
	SetHooks(mh)
	t.Cleanup(func() {
		UseAdapter(nil)
		SetHooks(nil)
		ctrl.Finish()
	})
	return ma, mh
}

func TestGroupDeleteHooksBeforeDelete(t *testing.T) {
	ma, mh := setupMocks(t)

	grp := &types.Group{Id: 10, Name: "Hikers", Admin: 3}
	members := []types.Uid{3, 5, 7}

	gomock.InOrder(
		ma.EXPECT().GroupGet(int64(10)).Return(grp, nil),
		ma.EXPECT().GroupMembers(int64(10)).Return(members, nil),
		mh.EXPECT().GroupPreDelete(grp, members),
		ma.EXPECT().GroupDelete(int64(10)).Return(nil),
	)

	if err := Groups.Delete(10); err != nil {
		t.Fatalf("Groups.Delete failed: %v", err)
	}
}

func TestGroupDeleteMissing(t *testing.T) {
	ma, _ := setupMocks(t)

	ma.EXPECT().GroupGet(int64(11)).Return(nil, types.ErrNotFound)

	if err := Groups.Delete(11); !types.IsNotFound(err) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGroupRemoveMembersSkipsAdmin(t *testing.T) {
	ma, mh := setupMocks(t)

	grp := &types.Group{Id: 10, Admin: 3}
	alice := types.User{Id: 5, Username: "alice"}
	bob := types.User{Id: 7, Username: "bob"}

	gomock.InOrder(
		ma.EXPECT().GroupGet(int64(10)).Return(grp, nil),
		ma.EXPECT().UserGetAll(types.Uid(5), types.Uid(7)).Return([]types.User{alice, bob}, nil),
		// Bob was not a member.
		ma.EXPECT().GroupMembersRemove(int64(10), []types.Uid{5, 7}).Return([]types.Uid{5}, nil),
		mh.EXPECT().GroupMembersRemoved(grp, []types.User{alice}),
	)

	removed, err := Groups.RemoveMembers(10, []types.Uid{3, 5, 7})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]types.Uid{5}, removed); diff != "" {
		t.Errorf("Removed mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupRemoveOnlyAdmin(t *testing.T) {
	ma, _ := setupMocks(t)

	ma.EXPECT().GroupGet(int64(10)).Return(&types.Group{Id: 10, Admin: 3}, nil)

	removed, err := Groups.RemoveMembers(10, []types.Uid{3})
	if err != nil || len(removed) != 0 {
		t.Errorf("Admin must be silently kept, got %v, %v", removed, err)
	}
}

func TestGroupCreate(t *testing.T) {
	ma, mh := setupMocks(t)

	ma.EXPECT().UserGet(types.Uid(3)).Return(&types.User{Id: 3, Username: "carol"}, nil)
	var created *types.Group
	ma.EXPECT().GroupCreate(gomock.Any()).DoAndReturn(func(grp *types.Group) error {
		created = grp
		return nil
	})
	ma.EXPECT().GroupGet(gomock.Any()).DoAndReturn(func(id int64) (*types.Group, error) {
		return created, nil
	})
	ma.EXPECT().GroupMembersAdd(gomock.Any(), []types.Uid{3}).Return([]types.Uid{3}, nil)
	mh.EXPECT().GroupMembersAdded(gomock.Any(), []types.Uid{3})
	ma.EXPECT().GroupRequestCreate(gomock.Any()).Return(nil)
	mh.EXPECT().GroupRequestCreated(gomock.Any()).Do(func(req *types.GroupRequest) {
		if !req.Accepted || req.User != 3 {
			t.Errorf("Admin join request must be accepted and owned by admin: %+v", req)
		}
	})

	grp, err := Groups.Create("Hikers", "", 3)
	if err != nil {
		t.Fatal(err)
	}
	if grp.Id <= 0 || grp.Admin != 3 || grp.Name != "Hikers" {
		t.Errorf("Unexpected group %+v", grp)
	}
}

func TestGroupCreateMalformed(t *testing.T) {
	setupMocks(t)

	if _, err := Groups.Create("  ", "", 3); !errors.Is(err, types.ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestGroupAcceptRequest(t *testing.T) {
	ma, mh := setupMocks(t)

	grp := &types.Group{Id: 10, Admin: 3}
	gomock.InOrder(
		ma.EXPECT().GroupRequestGet(int64(20)).Return(&types.GroupRequest{Id: 20, Group: 10, User: 9}, nil),
		ma.EXPECT().GroupRequestAccept(int64(20)).Return(nil),
		ma.EXPECT().GroupGet(int64(10)).Return(grp, nil),
		ma.EXPECT().GroupMembersAdd(int64(10), []types.Uid{9}).Return([]types.Uid{9}, nil),
		mh.EXPECT().GroupMembersAdded(grp, []types.Uid{9}),
	)

	req, err := Groups.AcceptRequest(20)
	if err != nil {
		t.Fatal(err)
	}
	if !req.Accepted {
		t.Error("Request must be marked accepted")
	}
}

func TestFriendRequestNotifiesAfterWrite(t *testing.T) {
	ma, mh := setupMocks(t)

	from := types.User{Id: 3, Username: "carol"}
	to := types.User{Id: 7, Username: "dave"}

	gomock.InOrder(
		ma.EXPECT().UserGetAll(types.Uid(3), types.Uid(7)).Return([]types.User{to, from}, nil),
		ma.EXPECT().FriendRequestCreate(gomock.Any()).Return(nil),
		mh.EXPECT().FriendRequestSaved(gomock.Any(), true).Do(func(req *types.FriendRequest, _ bool) {
			if req.FromUser == nil || req.FromUser.Username != "carol" {
				t.Errorf("FromUser not preloaded: %+v", req.FromUser)
			}
			if req.ToUser == nil || req.ToUser.Username != "dave" {
				t.Errorf("ToUser not preloaded: %+v", req.ToUser)
			}
		}),
	)

	if _, err := Friends.Request(3, 7); err != nil {
		t.Fatal(err)
	}
}

func TestFriendRequestDuplicate(t *testing.T) {
	ma, _ := setupMocks(t)

	ma.EXPECT().UserGetAll(types.Uid(3), types.Uid(7)).
		Return([]types.User{{Id: 3}, {Id: 7}}, nil)
	ma.EXPECT().FriendRequestCreate(gomock.Any()).Return(types.ErrDuplicate)

	if _, err := Friends.Request(3, 7); !errors.Is(err, types.ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
}

func TestFriendRequestSelf(t *testing.T) {
	setupMocks(t)

	if _, err := Friends.Request(3, 3); !errors.Is(err, types.ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestFriendAccept(t *testing.T) {
	ma, mh := setupMocks(t)

	gomock.InOrder(
		ma.EXPECT().FriendRequestGet(int64(30)).Return(&types.FriendRequest{Id: 30, From: 3, To: 7}, nil),
		ma.EXPECT().UserGetAll(types.Uid(3), types.Uid(7)).Return([]types.User{{Id: 3}, {Id: 7}}, nil),
		ma.EXPECT().FriendRequestAccept(int64(30)).Return(nil),
		mh.EXPECT().FriendRequestSaved(gomock.Any(), false).Do(func(req *types.FriendRequest, _ bool) {
			if !req.Accepted {
				t.Error("Hook must receive the accepted request")
			}
		}),
	)

	if _, err := Friends.Accept(30); err != nil {
		t.Fatal(err)
	}
}

func TestFriendDeleteHooksBeforeDelete(t *testing.T) {
	ma, mh := setupMocks(t)

	gomock.InOrder(
		ma.EXPECT().FriendRequestGet(int64(30)).Return(&types.FriendRequest{Id: 30, From: 3, To: 7, Accepted: true}, nil),
		ma.EXPECT().UserGetAll(types.Uid(3), types.Uid(7)).Return([]types.User{{Id: 3}, {Id: 7}}, nil),
		mh.EXPECT().FriendRequestPreDelete(gomock.Any()),
		ma.EXPECT().FriendRequestDelete(int64(30)).Return(nil),
	)

	if err := Friends.Delete(30); err != nil {
		t.Fatal(err)
	}
}

func TestFriendsExistsSelf(t *testing.T) {
	setupMocks(t)

	// No adapter call is expected.
	ok, err := Friends.Exists(3, 3, true)
	if ok || err != nil {
		t.Errorf("Self pair must never be friends: %v, %v", ok, err)
	}
}

func TestMessagesSaveDirect(t *testing.T) {
	ma, _ := setupMocks(t)

	ma.EXPECT().MessageSave(gomock.Any()).Return(nil)

	msg, err := Messages.SaveDirect(3, 7, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if msg.Id <= 0 || msg.CreatedAt.IsZero() {
		t.Errorf("ID and timestamp must be assigned: %+v", msg)
	}
	if msg.IsGroup() || msg.From != 3 || msg.To != 7 || msg.Text != "hello" {
		t.Errorf("Unexpected message %+v", msg)
	}
}

func TestMessagesSaveGroupFailure(t *testing.T) {
	ma, _ := setupMocks(t)

	ma.EXPECT().MessageSave(gomock.Any()).Return(types.ErrInternal)

	if _, err := Messages.SaveGroup(10, 3, "hi"); !errors.Is(err, types.ErrInternal) {
		t.Errorf("Expected ErrInternal, got %v", err)
	}
}

func TestRegisterAdapterTwicePanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	ma := mock_store.NewMockAdapter(ctrl)
	ma.EXPECT().GetName().Return("mock-twice").Times(2)

	RegisterAdapter(ma)
	defer func() {
		delete(availableAdapters, "mock-twice")
		if recover() == nil {
			t.Error("Registering the same adapter twice must panic")
		}
	}()
	RegisterAdapter(ma)
}
