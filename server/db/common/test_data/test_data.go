// Package test_data provides records shared by the adapter integration tests.
package test_data

import (
	"time"

	"github.com/chatwire/chat/server/store/types"
)

type TestData struct {
	Users     []*types.User
	Friends   []*types.FriendRequest
	Groups    []*types.Group
	GroupReqs []*types.GroupRequest
	Msgs      []*types.Message
	Now       time.Time
}

func initUsers(now time.Time) []*types.User {
	return []*types.User{
		{Id: 3, CreatedAt: now, Username: "alice", Email: "alice@example.com", FirstName: "Alice", LastName: "Johnson"},
		{Id: 7, CreatedAt: now, Username: "bob", Email: "bob@example.com", FirstName: "Bob", LastName: "Smith", Image: "/media/bob.png"},
		{Id: 9, CreatedAt: now, Username: "carol", Email: "carol@example.com", FirstName: "Carol", LastName: "Xmas"},
	}
}

func initFriends(now time.Time) []*types.FriendRequest {
	return []*types.FriendRequest{
		{Id: 100, CreatedAt: now, From: 3, To: 7},
		{Id: 101, CreatedAt: now, From: 9, To: 3},
	}
}

func initGroups(now time.Time) []*types.Group {
	return []*types.Group{
		{Id: 200, CreatedAt: now, Name: "Hikers", Admin: 3},
	}
}

func initGroupReqs(now time.Time) []*types.GroupRequest {
	return []*types.GroupRequest{
		{Id: 300, CreatedAt: now, Group: 200, User: 3, Accepted: true},
		{Id: 301, CreatedAt: now, Group: 200, User: 9},
	}
}

func initMessages(now time.Time) []*types.Message {
	return []*types.Message{
		{Id: 400, CreatedAt: now, From: 3, To: 7, Text: "hello"},
		{Id: 401, CreatedAt: now.Add(time.Second), From: 3, Group: 200, Text: "welcome"},
	}
}

func InitTestData() *TestData {
	// MySQL and Postgres keep milliseconds only.
	now := types.TimeNow()
	return &TestData{
		Users:     initUsers(now),
		Friends:   initFriends(now),
		Groups:    initGroups(now),
		GroupReqs: initGroupReqs(now),
		Msgs:      initMessages(now),
		Now:       now,
	}
}
