package notify

import (
	"testing"

	"github.com/chatwire/chat/server/hub"
	"github.com/chatwire/chat/server/store"
	"github.com/chatwire/chat/server/store/types"
	"github.com/google/go-cmp/cmp"
)

var _ store.Hooks = (*Dispatcher)(nil)

type published struct {
	Topic string
	Event hub.Event
}

type recorder struct {
	events []published
}

func (r *recorder) Publish(topic string, ev *hub.Event) int {
	r.events = append(r.events, published{topic, *ev})
	return 1
}

var (
	alice  = &types.User{Id: 3, Username: "alice", Email: "alice@example.com", FirstName: "Alice", Image: "/media/alice.png"}
	bob    = &types.User{Id: 7, Username: "bob", FirstName: "Bob"}
	carol  = &types.User{Id: 9, Username: "carol", FirstName: "Carol"}
	hikers = &types.Group{Id: 42, Name: "Hikers", Image: "/media/hikers.png", Admin: 3}
)

func newTest() (*Dispatcher, *recorder) {
	rec := &recorder{}
	return NewDispatcher(rec), rec
}

func check(t *testing.T, want []published, rec *recorder) {
	t.Helper()
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("Published events mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupMembersAdded(t *testing.T) {
	d, rec := newTest()
	d.GroupMembersAdded(hikers, []types.Uid{3, 7, 9})

	ev := hub.Event{Type: hub.TypeNotification, Id: 42, Name: "Hikers", Image: "/media/hikers.png", AddedToGroup: true}
	check(t, []published{{"notify:7", ev}, {"notify:9", ev}}, rec)
}

func TestGroupMembersAddedAdminOnly(t *testing.T) {
	d, rec := newTest()
	d.GroupMembersAdded(hikers, []types.Uid{3})
	check(t, nil, rec)
}

func TestGroupMembersRemoved(t *testing.T) {
	d, rec := newTest()
	d.GroupMembersRemoved(hikers, []types.User{*bob})

	msg := "You are no longer a member of the Hikers group"
	check(t, []published{
		{"notify:7", hub.Event{Type: hub.TypeNotification, Id: 42, GroupClosed: true, Msg: msg}},
		{"group:42", hub.Event{Type: hub.TypeChat, Username: "bob", GroupClosed: true, Msg: msg}},
	}, rec)
}

func TestGroupPreDelete(t *testing.T) {
	d, rec := newTest()
	d.GroupPreDelete(hikers, []types.Uid{3, 7})

	msg := "The group Hikers has been deleted"
	note := hub.Event{Type: hub.TypeNotification, Id: 42, GroupDeleted: true, Msg: msg}
	check(t, []published{
		{"notify:3", note},
		{"notify:7", note},
		{"group:42", hub.Event{Type: hub.TypeChat, GroupDeleted: true, Msg: msg}},
	}, rec)
}

func TestGroupPreDeleteNoMembers(t *testing.T) {
	d, rec := newTest()
	d.GroupPreDelete(hikers, nil)
	// The room is still closed.
	if len(rec.events) != 1 || rec.events[0].Topic != "group:42" {
		t.Errorf("Unexpected events %+v", rec.events)
	}
}

func TestGroupRequestCreated(t *testing.T) {
	d, rec := newTest()
	d.GroupRequestCreated(&types.GroupRequest{Id: 301, Group: 42, User: 9, GroupObj: hikers, Requester: carol})

	check(t, []published{{"notify:3", hub.Event{
		Type:                 hub.TypeNotification,
		GroupId:              42,
		GroupName:            "Hikers",
		GroupImage:           "/media/hikers.png",
		GroupReqId:           301,
		Username:             "carol",
		UserId:               9,
		ReceivedGroupRequest: true,
	}}}, rec)
}

func TestGroupRequestCreatedIgnored(t *testing.T) {
	d, rec := newTest()
	// Admin's own request.
	d.GroupRequestCreated(&types.GroupRequest{Id: 300, Group: 42, User: 3, Accepted: true, GroupObj: hikers})
	// Not preloaded.
	d.GroupRequestCreated(&types.GroupRequest{Id: 302, Group: 42, User: 7})
	d.GroupRequestCreated(nil)
	check(t, nil, rec)
}

func TestFriendRequestCreated(t *testing.T) {
	d, rec := newTest()
	d.FriendRequestSaved(&types.FriendRequest{Id: 100, From: 3, To: 7, FromUser: alice, ToUser: bob}, true)

	check(t, []published{{"notify:7", hub.Event{
		Type:                  hub.TypeNotification,
		Msg:                   "You have received friend request from alice",
		Id:                    3,
		Name:                  "Alice",
		Email:                 "alice@example.com",
		Image:                 "/media/alice.png",
		ReceivedFriendRequest: true,
	}}}, rec)
}

func TestFriendRequestAccepted(t *testing.T) {
	d, rec := newTest()
	d.FriendRequestSaved(&types.FriendRequest{Id: 100, From: 3, To: 7, Accepted: true, FromUser: alice, ToUser: bob}, false)

	check(t, []published{{"notify:3", hub.Event{
		Type:                  hub.TypeNotification,
		Msg:                   "bob accepted your friend request",
		Id:                    7,
		Name:                  "Bob",
		Email:                 "bob",
		AcceptedFriendRequest: true,
	}}}, rec)
}

func TestFriendRequestSavedNotAccepted(t *testing.T) {
	d, rec := newTest()
	d.FriendRequestSaved(&types.FriendRequest{Id: 100, From: 3, To: 7, FromUser: alice, ToUser: bob}, false)
	check(t, nil, rec)
}

func TestFriendRequestMissingUsers(t *testing.T) {
	d, rec := newTest()
	d.FriendRequestSaved(&types.FriendRequest{Id: 100, From: 3, To: 7}, true)
	d.FriendRequestPreDelete(&types.FriendRequest{Id: 100, From: 3, To: 7, Accepted: true, FromUser: alice})
	d.FriendRequestPreDelete(nil)
	check(t, nil, rec)
}

func TestUnfriend(t *testing.T) {
	d, rec := newTest()
	// Sender has the higher id: the direct topic is still ordered.
	d.FriendRequestPreDelete(&types.FriendRequest{Id: 101, From: 9, To: 3, Accepted: true, FromUser: carol, ToUser: alice})

	check(t, []published{
		{"notify:9", hub.Event{Type: hub.TypeNotification, Msg: "You are no longer friends with alice.", Id: 3, FriendConnectionDeleted: true}},
		{"notify:3", hub.Event{Type: hub.TypeNotification, Msg: "You are no longer friends with carol.", Id: 9, FriendConnectionDeleted: true}},
		{"direct:3:9", hub.Event{Type: hub.TypeChat, Msg: "You are no longer friends with carol.", Id: 9, FriendConnectionDeleted: true}},
	}, rec)
}

func TestRejectFriendRequest(t *testing.T) {
	d, rec := newTest()
	d.FriendRequestPreDelete(&types.FriendRequest{Id: 100, From: 3, To: 7, FromUser: alice, ToUser: bob})

	check(t, []published{{"notify:3", hub.Event{
		Type:                  hub.TypeNotification,
		Msg:                   "bob rejected your friend request",
		RejectedFriendRequest: true,
	}}}, rec)
}

type sink struct {
	payloads []string
}

func (s *sink) Deliver(payload []byte) bool {
	s.payloads = append(s.payloads, string(payload))
	return true
}

func TestDispatchThroughRegistry(t *testing.T) {
	reg := hub.NewRegistry(hub.Options{})
	room, feed := &sink{}, &sink{}
	reg.Join("group:42", room)
	reg.Join("notify:7", feed)

	NewDispatcher(reg).GroupMembersRemoved(hikers, []types.User{*bob})

	want := []string{`{"type":"chat_message","username":"bob","msg":"You are no longer a member of the Hikers group","group_closed":true}`}
	if diff := cmp.Diff(want, room.payloads); diff != "" {
		t.Errorf("Room payload mismatch (-want +got):\n%s", diff)
	}
	want = []string{`{"type":"send_notification","id":42,"msg":"You are no longer a member of the Hikers group","group_closed":true}`}
	if diff := cmp.Diff(want, feed.payloads); diff != "" {
		t.Errorf("Feed payload mismatch (-want +got):\n%s", diff)
	}
}
