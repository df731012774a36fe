// Package hooks ingests store mutations published to Kafka by another process and
// applies them to the local mutation hooks.
//
// Records are JSON objects with a 'kind' and the snapshots the hook needs:
//
//	{"kind":"group_members_removed","group":{...},"users":[{...}]}
package hooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chatwire/chat/server/logs"
	"github.com/chatwire/chat/server/store"
	"github.com/chatwire/chat/server/store/types"
	"github.com/segmentio/kafka-go"
)

// Record kinds.
const (
	KindGroupMembersAdded      = "group_members_added"
	KindGroupMembersRemoved    = "group_members_removed"
	KindGroupPreDelete         = "group_pre_delete"
	KindGroupRequestCreated    = "group_request_created"
	KindFriendRequestSaved     = "friend_request_saved"
	KindFriendRequestPreDelete = "friend_request_pre_delete"
)

const retryDelay = time.Second

var (
	errUnknownKind = errors.New("unknown record kind")
	errIncomplete  = errors.New("incomplete record")
)

// Config is the Kafka consumer configuration.
type Config struct {
	Brokers []string `json:"brokers"`
	Topic   string   `json:"topic"`
	GroupID string   `json:"group_id"`
	// Maximum time to wait for new data, milliseconds.
	MaxWait int `json:"max_wait"`
}

// User is the wire form of types.User.
type User struct {
	Id        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Image     string `json:"image,omitempty"`
}

// Group is the wire form of types.Group.
type Group struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Admin int64  `json:"admin"`
}

// FriendRequest is the wire form of types.FriendRequest with both users.
type FriendRequest struct {
	Id       int64 `json:"id"`
	FromUser *User `json:"from_user"`
	ToUser   *User `json:"to_user"`
	Accepted bool  `json:"accepted"`
}

// GroupRequest is the wire form of types.GroupRequest with the group and the requester.
type GroupRequest struct {
	Id            int64  `json:"id"`
	Group         *Group `json:"group"`
	RequestedUser *User  `json:"requested_user"`
	Accepted      bool   `json:"accepted"`
}

// Record is a single mutation.
type Record struct {
	Kind          string         `json:"kind"`
	Group         *Group         `json:"group,omitempty"`
	Users         []User         `json:"users,omitempty"`
	Members       []int64        `json:"members,omitempty"`
	FriendRequest *FriendRequest `json:"friend_request,omitempty"`
	GroupRequest  *GroupRequest  `json:"group_request,omitempty"`
	Created       bool           `json:"created,omitempty"`
}

func (u *User) toStore() *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		Id:        types.Uid(u.Id),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Image:     u.Image,
	}
}

func (g *Group) toStore() *types.Group {
	if g == nil {
		return nil
	}
	return &types.Group{Id: g.Id, Name: g.Name, Image: g.Image, Admin: types.Uid(g.Admin)}
}

func toUids(ids []int64) []types.Uid {
	uids := make([]types.Uid, 0, len(ids))
	for _, id := range ids {
		uids = append(uids, types.Uid(id))
	}
	return uids
}

// Apply decodes one record and calls the matching hook.
func Apply(h store.Hooks, data []byte) error {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	switch rec.Kind {
	case KindGroupMembersAdded:
		if rec.Group == nil {
			return errIncomplete
		}
		h.GroupMembersAdded(rec.Group.toStore(), toUids(rec.Members))
	case KindGroupMembersRemoved:
		if rec.Group == nil {
			return errIncomplete
		}
		users := make([]types.User, 0, len(rec.Users))
		for i := range rec.Users {
			users = append(users, *rec.Users[i].toStore())
		}
		h.GroupMembersRemoved(rec.Group.toStore(), users)
	case KindGroupPreDelete:
		if rec.Group == nil {
			return errIncomplete
		}
		h.GroupPreDelete(rec.Group.toStore(), toUids(rec.Members))
	case KindGroupRequestCreated:
		gr := rec.GroupRequest
		if gr == nil || gr.Group == nil || gr.RequestedUser == nil {
			return errIncomplete
		}
		h.GroupRequestCreated(&types.GroupRequest{
			Id:        gr.Id,
			Group:     gr.Group.Id,
			User:      types.Uid(gr.RequestedUser.Id),
			Accepted:  gr.Accepted,
			GroupObj:  gr.Group.toStore(),
			Requester: gr.RequestedUser.toStore(),
		})
	case KindFriendRequestSaved, KindFriendRequestPreDelete:
		fr := rec.FriendRequest
		if fr == nil || fr.FromUser == nil || fr.ToUser == nil {
			return errIncomplete
		}
		req := &types.FriendRequest{
			Id:       fr.Id,
			From:     types.Uid(fr.FromUser.Id),
			To:       types.Uid(fr.ToUser.Id),
			Accepted: fr.Accepted,
			FromUser: fr.FromUser.toStore(),
			ToUser:   fr.ToUser.toStore(),
		}
		if rec.Kind == KindFriendRequestSaved {
			h.FriendRequestSaved(req, rec.Created)
		} else {
			h.FriendRequestPreDelete(req)
		}
	default:
		return fmt.Errorf("%w '%s'", errUnknownKind, rec.Kind)
	}
	return nil
}

// reader is the part of kafka.Reader used by the consumer.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads mutation records from Kafka.
type Consumer struct {
	reader reader
	hooks  store.Hooks
}

// NewConsumer creates a consumer of the configured topic.
func NewConsumer(conf *Config, h store.Hooks) (*Consumer, error) {
	if conf == nil || len(conf.Brokers) == 0 {
		return nil, errors.New("hooks: at least one Kafka broker is required")
	}
	if conf.Topic == "" {
		return nil, errors.New("hooks: Kafka topic is not configured")
	}
	groupID := conf.GroupID
	if groupID == "" {
		groupID = "chat-mutations"
	}
	maxWait := time.Duration(conf.MaxWait) * time.Millisecond
	if maxWait <= 0 {
		maxWait = 500 * time.Millisecond
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  conf.Brokers,
		Topic:    conf.Topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  maxWait,
	})
	return &Consumer{reader: r, hooks: h}, nil
}

// Run consumes records until ctx is cancelled. Records which cannot be applied are
// logged and committed so they are not redelivered.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			logs.Warn.Println("hooks: kafka fetch failed", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}
			continue
		}

		if err := Apply(c.hooks, msg.Value); err != nil {
			logs.Warn.Printf("hooks: skipped record at %d/%d: %v", msg.Partition, msg.Offset, err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			logs.Warn.Println("hooks: kafka commit failed", err)
		}
	}
}
