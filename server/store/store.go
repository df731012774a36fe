// Package store provides methods for registering and accessing database adapters.
// Mutating methods invoke the registered Hooks synchronously so that real-time
// notifications are ordered deterministically relative to the underlying write.
package store

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/chatwire/chat/server/store/adapter"
	"github.com/chatwire/chat/server/store/types"
)

var adp adapter.Adapter
var availableAdapters = make(map[string]adapter.Adapter)

// Unique ID generator
var idGen types.IdGenerator

// Receiver of mutation events, never nil.
var hooks Hooks = nilHooks{}

type configType struct {
	// DB adapter name to use. Should be one of those specified in `Adapters`.
	UseAdapter string `json:"use_adapter"`
	// Configurations for individual adapters.
	Adapters map[string]json.RawMessage `json:"adapters"`
}

func openAdapter(workerID int, jsonconf json.RawMessage) error {
	var config configType
	if err := json.Unmarshal(jsonconf, &config); err != nil {
		return errors.New("store: failed to parse config: " + err.Error() + "(" + string(jsonconf) + ")")
	}

	if adp == nil {
		if len(config.UseAdapter) > 0 {
			// Adapter name specified explicitly.
			if ad, ok := availableAdapters[config.UseAdapter]; ok {
				adp = ad
			} else {
				return errors.New("store: " + config.UseAdapter + " adapter is not available in this binary")
			}
		} else if len(availableAdapters) == 1 {
			// Default to the only entry in availableAdapters.
			for _, v := range availableAdapters {
				adp = v
			}
		} else {
			return errors.New("store: db adapter is not specified. Please set `store_config.use_adapter` in `chat.conf`")
		}
	}

	if adp.IsOpen() {
		return errors.New("store: connection is already opened")
	}

	if workerID < 0 || workerID > 1023 {
		return errors.New("store: invalid worker ID")
	}
	if err := idGen.Init(uint(workerID)); err != nil {
		return errors.New("store: failed to init snowflake: " + err.Error())
	}

	var adapterConfig json.RawMessage
	if config.Adapters != nil {
		adapterConfig = config.Adapters[adp.GetName()]
	}

	return adp.Open(adapterConfig)
}

// PersistentStorageInterface defines methods used for interation with persistent storage.
type PersistentStorageInterface interface {
	Open(workerID int, jsonconf json.RawMessage) error
	Close() error
	IsOpen() bool
	GetAdapterName() string
	GetDbVersion() int
	InitDb(jsonconf json.RawMessage, reset bool) error
	GetId() int64
}

// Store is the main object for interacting with persistent storage.
var Store PersistentStorageInterface

type storeObj struct{}

// Open initializes the persistence system. Adapter holds a connection pool for a database instance.
//
//	workerID - snowflake worker ID of this node
//	jsonconf - configuration string
func (storeObj) Open(workerID int, jsonconf json.RawMessage) error {
	if err := openAdapter(workerID, jsonconf); err != nil {
		return err
	}

	return adp.CheckDbVersion()
}

// Close terminates connection to persistent storage.
func (storeObj) Close() error {
	if adp != nil && adp.IsOpen() {
		return adp.Close()
	}

	return nil
}

// IsOpen checks if persistent storage connection has been initialized.
func (storeObj) IsOpen() bool {
	if adp != nil {
		return adp.IsOpen()
	}

	return false
}

// GetAdapterName returns the name of the current adater.
func (storeObj) GetAdapterName() string {
	if adp != nil {
		return adp.GetName()
	}

	return ""
}

// GetDbVersion returns version of the underlying database.
func (storeObj) GetDbVersion() int {
	if adp != nil {
		vers, _ := adp.GetDbVersion()
		return vers
	}

	return -1
}

// InitDb creates and configures a new database instance. If 'reset' is true it will first
// attempt to drop an existing database. If jsconf is nil it will assume that the adapter is
// already open. If it's non-nil and the adapter is not open, it will use the config string
// to open the adapter first.
func (s storeObj) InitDb(jsonconf json.RawMessage, reset bool) error {
	if !s.IsOpen() {
		if err := openAdapter(1, jsonconf); err != nil {
			return err
		}
	}
	return adp.CreateDb(reset)
}

// GetId generates a unique ID suitable for use as a primary key.
func (storeObj) GetId() int64 {
	return idGen.Get()
}

// RegisterAdapter makes a persistence adapter available.
// If Register is called twice or if the adapter is nil, it panics.
func RegisterAdapter(a adapter.Adapter) {
	if a == nil {
		panic("store: Register adapter is nil")
	}

	adapterName := a.GetName()
	if _, ok := availableAdapters[adapterName]; ok {
		panic("store: adapter '" + adapterName + "' is already registered")
	}
	availableAdapters[adapterName] = a
}

// UseAdapter replaces the current adapter. Intended for tests and tools which
// construct the adapter themselves.
func UseAdapter(a adapter.Adapter) {
	adp = a
}

// SetHooks registers the receiver of mutation events. Passing nil disables events.
func SetHooks(h Hooks) {
	if h == nil {
		h = nilHooks{}
	}
	hooks = h
}

// UsersPersistenceInterface is an interface which defines methods for persistent storage of users.
type UsersPersistenceInterface interface {
	Create(user *types.User) (*types.User, error)
	Get(uid types.Uid) (*types.User, error)
	GetAll(uid ...types.Uid) ([]types.User, error)
}

type usersMapper struct{}

// Users is the ancor for storing/retrieving User objects
var Users UsersPersistenceInterface

// Create inserts User object into a database, assigns an ID if one is not set.
func (usersMapper) Create(user *types.User) (*types.User, error) {
	if strings.TrimSpace(user.Username) == "" {
		return nil, types.ErrMalformed
	}
	if user.Id.IsZero() {
		user.Id = types.Uid(Store.GetId())
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = types.TimeNow()
	}
	if err := adp.UserCreate(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns a user object for the given user id
func (usersMapper) Get(uid types.Uid) (*types.User, error) {
	return adp.UserGet(uid)
}

// GetAll returns a slice of user objects for the given user ids
func (usersMapper) GetAll(uid ...types.Uid) ([]types.User, error) {
	return adp.UserGetAll(uid...)
}

// FriendsPersistenceInterface is an interface which defines methods for persistent storage of
// friend requests and friendships.
type FriendsPersistenceInterface interface {
	Exists(a, b types.Uid, accepted bool) (bool, error)
	Get(id int64) (*types.FriendRequest, error)
	Request(from, to types.Uid) (*types.FriendRequest, error)
	Accept(id int64) (*types.FriendRequest, error)
	Delete(id int64) error
}

type friendsMapper struct{}

// Friends is the anchor for friend requests and friendships.
var Friends FriendsPersistenceInterface

// Exists checks if a request with the given accepted state exists between a and b in either direction.
func (friendsMapper) Exists(a, b types.Uid, accepted bool) (bool, error) {
	if a == b {
		return false, nil
	}
	return adp.FriendshipExists(a, b, accepted)
}

// Get loads the friend request with both users preloaded.
func (friendsMapper) Get(id int64) (*types.FriendRequest, error) {
	req, err := adp.FriendRequestGet(id)
	if err != nil {
		return nil, err
	}
	if err = preloadFriendUsers(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Request creates a new pending friend request and notifies the recipient.
func (friendsMapper) Request(from, to types.Uid) (*types.FriendRequest, error) {
	if from.IsZero() || to.IsZero() || from == to {
		return nil, types.ErrMalformed
	}

	req := &types.FriendRequest{
		Id:        Store.GetId(),
		CreatedAt: types.TimeNow(),
		From:      from,
		To:        to,
	}
	if err := preloadFriendUsers(req); err != nil {
		return nil, err
	}
	if err := adp.FriendRequestCreate(req); err != nil {
		return nil, err
	}

	hooks.FriendRequestSaved(req, true)
	return req, nil
}

// Accept turns a pending request into a friendship and notifies the requester.
func (m friendsMapper) Accept(id int64) (*types.FriendRequest, error) {
	req, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	if req.Accepted {
		return req, nil
	}

	if err = adp.FriendRequestAccept(id); err != nil {
		return nil, err
	}
	req.Accepted = true

	hooks.FriendRequestSaved(req, false)
	return req, nil
}

// Delete rejects a pending request or ends a friendship. The record is snapshotted
// and the pre-delete hook fires before the record is removed.
func (m friendsMapper) Delete(id int64) error {
	req, err := m.Get(id)
	if err != nil {
		return err
	}

	hooks.FriendRequestPreDelete(req)

	return adp.FriendRequestDelete(id)
}

func preloadFriendUsers(req *types.FriendRequest) error {
	if req.FromUser != nil && req.ToUser != nil {
		return nil
	}
	users, err := adp.UserGetAll(req.From, req.To)
	if err != nil {
		return err
	}
	for i := range users {
		switch users[i].Id {
		case req.From:
			req.FromUser = &users[i]
		case req.To:
			req.ToUser = &users[i]
		}
	}
	if req.FromUser == nil || req.ToUser == nil {
		return types.ErrNotFound
	}
	return nil
}

// GroupsPersistenceInterface is an interface which defines methods for persistent storage of
// groups, group membership and join requests.
type GroupsPersistenceInterface interface {
	Create(name, image string, admin types.Uid) (*types.Group, error)
	Get(id int64) (*types.Group, error)
	IsMember(id int64, uid types.Uid) (bool, error)
	Members(id int64) ([]types.Uid, error)
	AddMembers(id int64, uids []types.Uid) ([]types.Uid, error)
	RemoveMembers(id int64, uids []types.Uid) ([]types.Uid, error)
	Delete(id int64) error
	Request(id int64, uid types.Uid) (*types.GroupRequest, error)
	AcceptRequest(reqID int64) (*types.GroupRequest, error)
}

type groupsMapper struct{}

// Groups is the anchor for groups, membership and join requests.
var Groups GroupsPersistenceInterface

// Create makes a new group with the admin as its first member. The admin also gets an
// accepted join request, which does not generate a notification.
func (m groupsMapper) Create(name, image string, admin types.Uid) (*types.Group, error) {
	if strings.TrimSpace(name) == "" || admin.IsZero() {
		return nil, types.ErrMalformed
	}
	if _, err := adp.UserGet(admin); err != nil {
		return nil, err
	}

	grp := &types.Group{
		Id:        Store.GetId(),
		CreatedAt: types.TimeNow(),
		Name:      name,
		Image:     image,
		Admin:     admin,
	}
	if err := adp.GroupCreate(grp); err != nil {
		return nil, err
	}

	if _, err := m.AddMembers(grp.Id, []types.Uid{admin}); err != nil {
		return nil, err
	}

	req := &types.GroupRequest{
		Id:        Store.GetId(),
		CreatedAt: grp.CreatedAt,
		Group:     grp.Id,
		User:      admin,
		Accepted:  true,
		GroupObj:  grp,
	}
	if err := adp.GroupRequestCreate(req); err != nil {
		return nil, err
	}
	hooks.GroupRequestCreated(req)

	return grp, nil
}

// Get returns the group for the given ID.
func (groupsMapper) Get(id int64) (*types.Group, error) {
	return adp.GroupGet(id)
}

// IsMember checks if the user is a current member of the group.
func (groupsMapper) IsMember(id int64, uid types.Uid) (bool, error) {
	return adp.GroupMemberExists(id, uid)
}

// Members returns IDs of all current group members.
func (groupsMapper) Members(id int64) ([]types.Uid, error) {
	return adp.GroupMembers(id)
}

// AddMembers adds users to the group and notifies those actually added.
func (groupsMapper) AddMembers(id int64, uids []types.Uid) ([]types.Uid, error) {
	grp, err := adp.GroupGet(id)
	if err != nil {
		return nil, err
	}
	added, err := adp.GroupMembersAdd(id, uids)
	if err != nil {
		return nil, err
	}
	if len(added) > 0 {
		hooks.GroupMembersAdded(grp, added)
	}
	return added, nil
}

// RemoveMembers removes users from the group and notifies those actually removed.
// The admin cannot be removed from own group and is silently skipped.
func (groupsMapper) RemoveMembers(id int64, uids []types.Uid) ([]types.Uid, error) {
	grp, err := adp.GroupGet(id)
	if err != nil {
		return nil, err
	}

	var victims []types.Uid
	for _, uid := range uids {
		if uid != grp.Admin {
			victims = append(victims, uid)
		}
	}
	if len(victims) == 0 {
		return nil, nil
	}

	// Snapshot the users before the membership rows are gone.
	users, err := adp.UserGetAll(victims...)
	if err != nil {
		return nil, err
	}

	removed, err := adp.GroupMembersRemove(id, victims)
	if err != nil {
		return nil, err
	}

	if len(removed) > 0 {
		gone := types.UidSlice(removed)
		var removedUsers []types.User
		for _, u := range users {
			if gone.Contains(u.Id) {
				removedUsers = append(removedUsers, u)
			}
		}
		hooks.GroupMembersRemoved(grp, removedUsers)
	}
	return removed, nil
}

// Delete deletes the group. Members are snapshotted and notified before the group is removed.
func (groupsMapper) Delete(id int64) error {
	grp, err := adp.GroupGet(id)
	if err != nil {
		return err
	}
	members, err := adp.GroupMembers(id)
	if err != nil {
		return err
	}

	hooks.GroupPreDelete(grp, members)

	return adp.GroupDelete(id)
}

// Request creates a pending request to join a group and notifies the group admin.
func (groupsMapper) Request(id int64, uid types.Uid) (*types.GroupRequest, error) {
	grp, err := adp.GroupGet(id)
	if err != nil {
		return nil, err
	}
	user, err := adp.UserGet(uid)
	if err != nil {
		return nil, err
	}

	req := &types.GroupRequest{
		Id:        Store.GetId(),
		CreatedAt: types.TimeNow(),
		Group:     id,
		User:      uid,
		GroupObj:  grp,
		Requester: user,
	}
	if err = adp.GroupRequestCreate(req); err != nil {
		return nil, err
	}

	hooks.GroupRequestCreated(req)
	return req, nil
}

// AcceptRequest accepts a pending join request and adds the requester to the group.
func (m groupsMapper) AcceptRequest(reqID int64) (*types.GroupRequest, error) {
	req, err := adp.GroupRequestGet(reqID)
	if err != nil {
		return nil, err
	}
	if req.Accepted {
		return req, nil
	}
	if err = adp.GroupRequestAccept(reqID); err != nil {
		return nil, err
	}
	req.Accepted = true

	if _, err = m.AddMembers(req.Group, []types.Uid{req.User}); err != nil {
		return nil, err
	}
	return req, nil
}

// MessagesPersistenceInterface is an interface which defines methods for appending chat messages.
type MessagesPersistenceInterface interface {
	SaveDirect(from, to types.Uid, text string) (*types.Message, error)
	SaveGroup(group int64, from types.Uid, text string) (*types.Message, error)
}

type messagesMapper struct{}

// Messages is the anchor for chat messages.
var Messages MessagesPersistenceInterface

// SaveDirect appends a message between two users. Assigns ID and server timestamp.
func (messagesMapper) SaveDirect(from, to types.Uid, text string) (*types.Message, error) {
	msg := &types.Message{
		Id:        Store.GetId(),
		CreatedAt: types.TimeNow(),
		From:      from,
		To:        to,
		Text:      text,
	}
	if err := adp.MessageSave(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// SaveGroup appends a message to the group. Assigns ID and server timestamp.
func (messagesMapper) SaveGroup(group int64, from types.Uid, text string) (*types.Message, error) {
	msg := &types.Message{
		Id:        Store.GetId(),
		CreatedAt: types.TimeNow(),
		From:      from,
		Group:     group,
		Text:      text,
	}
	if err := adp.MessageSave(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func init() {
	Store = storeObj{}
	Users = usersMapper{}
	Friends = friendsMapper{}
	Groups = groupsMapper{}
	Messages = messagesMapper{}
}
