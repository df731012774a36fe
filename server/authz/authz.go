// Package authz decides whether a user may subscribe to a topic.
//
// Decisions are made at join time only and are never cached: every call consults
// the store.
package authz

import (
	"github.com/chatwire/chat/server/store"
	"github.com/chatwire/chat/server/store/types"
	"github.com/chatwire/chat/server/topic"
)

// Gate checks subscription rights.
type Gate struct {
	friends store.FriendsPersistenceInterface
	groups  store.GroupsPersistenceInterface
}

// NewGate creates a gate which reads friendship and membership from the given mappers.
// Nil arguments are replaced by the global store mappers.
func NewGate(friends store.FriendsPersistenceInterface, groups store.GroupsPersistenceInterface) *Gate {
	if friends == nil {
		friends = store.Friends
	}
	if groups == nil {
		groups = store.Groups
	}
	return &Gate{friends: friends, groups: groups}
}

// CanJoinDirect checks if uid may subscribe to the direct topic shared with peer:
// the two must be friends. A user cannot talk to self.
func (g *Gate) CanJoinDirect(uid, peer types.Uid) (bool, error) {
	if uid.IsZero() || peer.IsZero() || uid == peer {
		return false, nil
	}
	return g.friends.Exists(uid, peer, true)
}

// CanJoinGroup checks if uid is a current member of the group.
func (g *Gate) CanJoinGroup(uid types.Uid, gid int64) (bool, error) {
	if uid.IsZero() || gid <= 0 {
		return false, nil
	}
	return g.groups.IsMember(gid, uid)
}

// OwnsNotifyTopic checks if the notification topic belongs to uid.
func (g *Gate) OwnsNotifyTopic(uid types.Uid, name string) bool {
	owner, ok := topic.OwnerOf(name)
	return ok && !uid.IsZero() && owner == uid
}
