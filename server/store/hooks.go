package store

import (
	"github.com/chatwire/chat/server/store/types"
)

// Hooks receives mutation events from the store. Every object passed to a hook is a
// complete snapshot taken before a destructive operation, so the receiver never needs
// to read the store back.
type Hooks interface {
	// GroupMembersAdded is called after users were added to the group.
	GroupMembersAdded(grp *types.Group, added []types.Uid)
	// GroupMembersRemoved is called after users were removed from the group.
	GroupMembersRemoved(grp *types.Group, removed []types.User)
	// GroupPreDelete is called before the group is deleted.
	GroupPreDelete(grp *types.Group, members []types.Uid)
	// GroupRequestCreated is called after a join request is saved.
	GroupRequestCreated(req *types.GroupRequest)
	// FriendRequestSaved is called after a friend request is created or accepted.
	FriendRequestSaved(req *types.FriendRequest, created bool)
	// FriendRequestPreDelete is called before a friend request or friendship is deleted.
	FriendRequestPreDelete(req *types.FriendRequest)
}

type nilHooks struct{}

func (nilHooks) GroupMembersAdded(*types.Group, []types.Uid) {}
func (nilHooks) GroupMembersRemoved(*types.Group, []types.User) {}
func (nilHooks) GroupPreDelete(*types.Group, []types.Uid) {}
func (nilHooks) GroupRequestCreated(*types.GroupRequest) {}
func (nilHooks) FriendRequestSaved(*types.FriendRequest, bool) {}
func (nilHooks) FriendRequestPreDelete(*types.FriendRequest) {}
