/******************************************************************************
 *
 *  Description :
 *
 *  Configurations of the websocket endpoints: direct chat, group chat and
 *  the notification feed. All three share the session state machine.
 *
 *****************************************************************************/

package main

import (
	"strconv"

	"github.com/chatwire/chat/server/hub"
	"github.com/chatwire/chat/server/store"
	"github.com/chatwire/chat/server/store/types"
	"github.com/chatwire/chat/server/topic"
)

// Layout of time_stamp in chat events: RFC 3339 with milliseconds.
const timeStampLayout = "2006-01-02T15:04:05.000Z07:00"

// admitErr is the reason a connection is refused.
type admitErr string

func (e admitErr) Error() string {
	return string(e)
}

const (
	// Missing or invalid credential.
	errAuthFailed = admitErr("authentication failed")
	// The user may not subscribe to the topic.
	errAccessDenied = admitErr("authorization denied")
	// The peer or the group does not exist.
	errRefNotFound = admitErr("reference not found")
)

// channelKind is a set of capabilities of an endpoint.
type channelKind struct {
	name string
	// admit resolves the topic from the path parameter and checks access.
	admit func(s *Session, param string) error
	// post stores an inbound chat message and formats the event to publish. Nil
	// means inbound frames are ignored.
	post func(s *Session, text string) (*hub.Event, error)
}

var directChannel = &channelKind{
	name:  "direct",
	admit: admitDirect,
	post:  postDirect,
}

var groupChannel = &channelKind{
	name:  "group",
	admit: admitGroup,
	post:  postGroup,
}

var notifyChannel = &channelKind{
	name:  "notify",
	admit: admitNotify,
}

func admitDirect(s *Session, param string) error {
	peer := types.ParseUid(param)
	if peer.IsZero() {
		return errRefNotFound
	}
	// Any store failure is reported as a missing peer.
	if user, err := store.Users.Get(peer); err != nil || user == nil {
		return errRefNotFound
	}

	ok, err := globals.gate.CanJoinDirect(s.uid, peer)
	if err != nil {
		return errRefNotFound
	}
	if !ok {
		return errAccessDenied
	}

	s.peer = peer
	s.topic = topic.Direct(s.uid, peer)
	return nil
}

func admitGroup(s *Session, param string) error {
	gid, err := strconv.ParseInt(param, 10, 64)
	if err != nil || gid <= 0 {
		return errRefNotFound
	}
	if grp, err := store.Groups.Get(gid); err != nil || grp == nil {
		return errRefNotFound
	}

	ok, err := globals.gate.CanJoinGroup(s.uid, gid)
	if err != nil {
		return errRefNotFound
	}
	if !ok {
		return errAccessDenied
	}

	s.group = gid
	s.topic = topic.Group(gid)
	return nil
}

func admitNotify(s *Session, _ string) error {
	name := topic.Notify(s.uid)
	if !globals.gate.OwnsNotifyTopic(s.uid, name) {
		return errAccessDenied
	}
	s.topic = name
	return nil
}

func postDirect(s *Session, text string) (*hub.Event, error) {
	msg, err := store.Messages.SaveDirect(s.uid, s.peer, text)
	if err != nil {
		return nil, err
	}
	return &hub.Event{
		Type:      hub.TypeChat,
		Id:        msg.Id,
		Message:   text,
		Username:  s.user.Username,
		TimeStamp: msg.CreatedAt.Format(timeStampLayout),
	}, nil
}

func postGroup(s *Session, text string) (*hub.Event, error) {
	msg, err := store.Messages.SaveGroup(s.group, s.uid, text)
	if err != nil {
		return nil, err
	}
	return &hub.Event{
		Type:      hub.TypeChat,
		Id:        msg.Id,
		Message:   text,
		Username:  s.user.Username,
		Name:      s.user.FullName(),
		UserId:    int64(s.uid),
		UserImg:   s.user.Image,
		TimeStamp: msg.CreatedAt.Format(timeStampLayout),
	}, nil
}
