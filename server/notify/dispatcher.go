// Package notify turns store mutations into events published to live topics.
//
// The dispatcher is stateless and never reads the store: every object it needs
// arrives as a snapshot taken by the caller.
package notify

import (
	"fmt"

	"github.com/chatwire/chat/server/hub"
	"github.com/chatwire/chat/server/logs"
	"github.com/chatwire/chat/server/store/types"
	"github.com/chatwire/chat/server/topic"
)

// Publisher is the part of hub.Registry used by the dispatcher.
type Publisher interface {
	Publish(topic string, ev *hub.Event) int
}

// Dispatcher implements store.Hooks.
type Dispatcher struct {
	pub Publisher
}

// NewDispatcher creates a dispatcher publishing through pub.
func NewDispatcher(pub Publisher) *Dispatcher {
	return &Dispatcher{pub: pub}
}

func (d *Dispatcher) notify(uid types.Uid, ev *hub.Event) {
	ev.Type = hub.TypeNotification
	d.pub.Publish(topic.Notify(uid), ev)
}

func (d *Dispatcher) chat(name string, ev *hub.Event) {
	if name == "" {
		return
	}
	ev.Type = hub.TypeChat
	d.pub.Publish(name, ev)
}

// GroupMembersAdded tells the new members about the group. The admin is skipped: it
// is added when the group is created.
func (d *Dispatcher) GroupMembersAdded(grp *types.Group, added []types.Uid) {
	if grp == nil {
		return
	}
	for _, uid := range added {
		if uid == grp.Admin {
			continue
		}
		d.notify(uid, &hub.Event{
			Id:           grp.Id,
			Name:         grp.Name,
			Image:        grp.Image,
			AddedToGroup: true,
		})
	}
}

// GroupMembersRemoved tells the removed users they are out and closes their group
// chat if it's open.
func (d *Dispatcher) GroupMembersRemoved(grp *types.Group, removed []types.User) {
	if grp == nil {
		return
	}
	msg := fmt.Sprintf("You are no longer a member of the %s group", grp.Name)
	for i := range removed {
		user := &removed[i]
		d.notify(user.Id, &hub.Event{
			Id:          grp.Id,
			GroupClosed: true,
			Msg:         msg,
		})
		// Clients in the group room match the username to decide who must leave.
		d.chat(topic.Group(grp.Id), &hub.Event{
			Username:    user.Username,
			GroupClosed: true,
			Msg:         msg,
		})
	}
}

// GroupPreDelete tells every member the group is gone, then closes the group room.
func (d *Dispatcher) GroupPreDelete(grp *types.Group, members []types.Uid) {
	if grp == nil {
		return
	}
	msg := fmt.Sprintf("The group %s has been deleted", grp.Name)
	for _, uid := range members {
		d.notify(uid, &hub.Event{
			Id:           grp.Id,
			GroupDeleted: true,
			Msg:          msg,
		})
	}
	d.chat(topic.Group(grp.Id), &hub.Event{
		GroupDeleted: true,
		Msg:          msg,
	})
}

// GroupRequestCreated notifies the group admin about a pending join request.
// Requests created already accepted belong to the admin and are ignored.
func (d *Dispatcher) GroupRequestCreated(req *types.GroupRequest) {
	if req == nil || req.Accepted {
		return
	}
	if req.GroupObj == nil || req.Requester == nil {
		logs.Warn.Println("notify: group request without preloaded objects", req.Id)
		return
	}
	grp, user := req.GroupObj, req.Requester
	d.notify(grp.Admin, &hub.Event{
		GroupId:              grp.Id,
		GroupName:            grp.Name,
		GroupImage:           grp.Image,
		GroupReqId:           req.Id,
		Username:             user.Username,
		UserId:               int64(user.Id),
		ReceivedGroupRequest: true,
	})
}

// FriendRequestSaved dispatches a saved friend request: a new request goes to the
// recipient, an accepted one goes back to the sender.
func (d *Dispatcher) FriendRequestSaved(req *types.FriendRequest, created bool) {
	if created {
		d.FriendRequestCreated(req)
	} else {
		d.FriendRequestAccepted(req)
	}
}

// FriendRequestCreated notifies the recipient of a new friend request.
func (d *Dispatcher) FriendRequestCreated(req *types.FriendRequest) {
	from, to, ok := friendUsers(req)
	if !ok {
		return
	}
	d.notify(to.Id, &hub.Event{
		Msg:                   "You have received friend request from " + from.Username,
		Id:                    int64(from.Id),
		Name:                  from.FirstName,
		Email:                 contact(from),
		Image:                 from.Image,
		ReceivedFriendRequest: true,
	})
}

// FriendRequestAccepted notifies the sender that the request was accepted.
func (d *Dispatcher) FriendRequestAccepted(req *types.FriendRequest) {
	if req == nil || !req.Accepted {
		return
	}
	from, to, ok := friendUsers(req)
	if !ok {
		return
	}
	d.notify(from.Id, &hub.Event{
		Msg:                   to.Username + " accepted your friend request",
		Id:                    int64(to.Id),
		Name:                  to.FirstName,
		Email:                 contact(to),
		Image:                 to.Image,
		AcceptedFriendRequest: true,
	})
}

// FriendRequestPreDelete handles both unfriending and rejection. Deleting an accepted
// request ends the friendship: both users are notified and their direct chat is closed.
// Deleting a pending one is a rejection and only the sender is told.
func (d *Dispatcher) FriendRequestPreDelete(req *types.FriendRequest) {
	from, to, ok := friendUsers(req)
	if !ok {
		return
	}

	if !req.Accepted {
		d.notify(from.Id, &hub.Event{
			Msg:                   to.Username + " rejected your friend request",
			RejectedFriendRequest: true,
		})
		return
	}

	d.notify(from.Id, &hub.Event{
		Msg:                     "You are no longer friends with " + to.Username + ".",
		Id:                      int64(to.Id),
		FriendConnectionDeleted: true,
	})
	d.notify(to.Id, &hub.Event{
		Msg:                     "You are no longer friends with " + from.Username + ".",
		Id:                      int64(from.Id),
		FriendConnectionDeleted: true,
	})
	d.chat(topic.Direct(from.Id, to.Id), &hub.Event{
		Msg:                     "You are no longer friends with " + from.Username + ".",
		Id:                      int64(from.Id),
		FriendConnectionDeleted: true,
	})
}

func friendUsers(req *types.FriendRequest) (from, to *types.User, ok bool) {
	if req == nil {
		return nil, nil, false
	}
	if req.FromUser == nil || req.ToUser == nil {
		logs.Warn.Println("notify: friend request without preloaded users", req.Id)
		return nil, nil, false
	}
	return req.FromUser, req.ToUser, true
}

// contact is the address shown in friend notifications.
func contact(u *types.User) string {
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}
