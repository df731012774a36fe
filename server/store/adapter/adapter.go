// Package adapter contains the interfaces to be implemented by the database adapter
package adapter

import (
	"encoding/json"

	t "github.com/chatwire/chat/server/store/types"
)

// Adapter is the interface that must be implemented by a database
// adapter. The current schema supports a single connection by database type.
type Adapter interface {
	// General

	// Open and configure the adapter
	Open(config json.RawMessage) error
	// Close the adapter
	Close() error
	// IsOpen checks if the adapter is ready for use
	IsOpen() bool
	// GetDbVersion returns current database version.
	GetDbVersion() (int, error)
	// CheckDbVersion checks if the actual database version matches adapter version.
	CheckDbVersion() error
	// GetName returns the name of the adapter
	GetName() string
	// CreateDb creates the database optionally dropping an existing database first.
	CreateDb(reset bool) error

	// Users

	// UserCreate creates user record. The ID is assigned by the caller.
	UserCreate(user *t.User) error
	// UserGet returns record for a given user ID or types.ErrNotFound.
	UserGet(uid t.Uid) (*t.User, error)
	// UserGetAll returns user records for a given list of user IDs. Missing users are skipped.
	UserGetAll(ids ...t.Uid) ([]t.User, error)

	// Friend requests and friendships

	// FriendRequestCreate saves a new request. Fails with types.ErrDuplicate if the two users
	// already have a request in either direction.
	FriendRequestCreate(req *t.FriendRequest) error
	// FriendRequestGet loads a request by ID or returns types.ErrNotFound.
	FriendRequestGet(id int64) (*t.FriendRequest, error)
	// FriendRequestAccept marks request as accepted.
	FriendRequestAccept(id int64) error
	// FriendRequestDelete deletes the request.
	FriendRequestDelete(id int64) error
	// FriendshipExists checks if a request with the given accepted state exists between two
	// users, in either direction.
	FriendshipExists(a, b t.Uid, accepted bool) (bool, error)

	// Groups

	// GroupCreate saves a new group. The ID is assigned by the caller.
	GroupCreate(grp *t.Group) error
	// GroupGet loads a group by ID or returns types.ErrNotFound.
	GroupGet(id int64) (*t.Group, error)
	// GroupDelete deletes the group together with its members, requests and messages.
	GroupDelete(id int64) error
	// GroupMembers returns IDs of all current members.
	GroupMembers(id int64) ([]t.Uid, error)
	// GroupMemberExists checks if user is a member of the group.
	GroupMemberExists(id int64, uid t.Uid) (bool, error)
	// GroupMembersAdd adds users to the group, returns those which were not members yet.
	GroupMembersAdd(id int64, uids []t.Uid) ([]t.Uid, error)
	// GroupMembersRemove removes users from the group, returns those which were members.
	GroupMembersRemove(id int64, uids []t.Uid) ([]t.Uid, error)

	// Group join requests

	// GroupRequestCreate saves a new join request.
	GroupRequestCreate(req *t.GroupRequest) error
	// GroupRequestGet loads join request by ID or returns types.ErrNotFound.
	GroupRequestGet(id int64) (*t.GroupRequest, error)
	// GroupRequestAccept marks join request as accepted.
	GroupRequestAccept(id int64) error

	// Messages

	// MessageSave appends a direct or a group message. ID and timestamp are assigned by the caller.
	MessageSave(msg *t.Message) error
}
