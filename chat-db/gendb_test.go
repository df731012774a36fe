package main

import (
	"testing"

	"github.com/chatwire/chat/server/store"
	"github.com/chatwire/chat/server/store/mock_store"
	"github.com/chatwire/chat/server/store/types"
	"github.com/golang/mock/gomock"
)

func TestGenDb(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	friends := mock_store.NewMockFriendsPersistenceInterface(ctrl)
	groups := mock_store.NewMockGroupsPersistenceInterface(ctrl)
	messages := mock_store.NewMockMessagesPersistenceInterface(ctrl)

	oldUsers, oldFriends, oldGroups, oldMessages := store.Users, store.Friends, store.Groups, store.Messages
	store.Users, store.Friends, store.Groups, store.Messages = users, friends, groups, messages
	defer func() {
		store.Users, store.Friends, store.Groups, store.Messages = oldUsers, oldFriends, oldGroups, oldMessages
	}()

	nextId := types.Uid(10)
	users.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *types.User) (*types.User, error) {
		u.Id = nextId
		nextId++
		return u, nil
	}).Times(3)

	gomock.InOrder(
		friends.EXPECT().Request(types.Uid(10), types.Uid(11)).Return(&types.FriendRequest{Id: 100}, nil),
		friends.EXPECT().Accept(int64(100)).Return(&types.FriendRequest{Id: 100, Accepted: true}, nil),
	)
	friends.EXPECT().Request(types.Uid(12), types.Uid(10)).Return(&types.FriendRequest{Id: 101}, nil)

	groups.EXPECT().Create("Hikers", "", types.Uid(10)).Return(&types.Group{Id: 200, Name: "Hikers", Admin: 10}, nil)
	gomock.InOrder(
		groups.EXPECT().Request(int64(200), types.Uid(11)).Return(&types.GroupRequest{Id: 300}, nil),
		groups.EXPECT().AcceptRequest(int64(300)).Return(&types.GroupRequest{Id: 300, Accepted: true}, nil),
	)
	groups.EXPECT().Request(int64(200), types.Uid(12)).Return(&types.GroupRequest{Id: 301}, nil)

	messages.EXPECT().SaveDirect(types.Uid(10), types.Uid(11), "hi").Return(&types.Message{}, nil)
	messages.EXPECT().SaveGroup(int64(200), types.Uid(11), "hello").Return(&types.Message{}, nil)

	err := genDb(&Data{
		Users: []User{{Username: "alice"}, {Username: "bob"}, {Username: "carol"}},
		Friends: []Friendship{
			{From: "alice", To: "bob", Accepted: true},
			{From: "carol", To: "alice"},
		},
		Groups: []Group{{Name: "Hikers", Admin: "alice", Members: []string{"bob"}, Pending: []string{"carol"}}},
		Messages: []Message{
			{From: "alice", To: "bob", Text: "hi"},
			{From: "bob", Group: "Hikers", Text: "hello"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestGenDbUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)

	oldUsers := store.Users
	store.Users = users
	defer func() { store.Users = oldUsers }()

	users.EXPECT().Create(gomock.Any()).Return(&types.User{Id: 10}, nil)

	err := genDb(&Data{
		Users:   []User{{Username: "alice"}},
		Friends: []Friendship{{From: "alice", To: "mallory"}},
	})
	if err == nil {
		t.Error("Reference to an unknown user must fail")
	}
}

func TestGenDbEmpty(t *testing.T) {
	if err := genDb(&Data{}); err != nil {
		t.Error(err)
	}
}
