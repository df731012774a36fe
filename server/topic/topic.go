// Package topic names the channels of the real-time core.
//
// Three kinds of topics exist:
//
//	direct:{min}:{max}  conversation between two users, IDs ordered numerically
//	group:{gid}         chat room of a group
//	notify:{uid}        notification feed owned by a single user
package topic

import (
	"errors"
	"strconv"
	"strings"

	"github.com/chatwire/chat/server/store/types"
)

// Kind is a topic category.
type Kind int

const (
	// KindUnknown is an invalid topic.
	KindUnknown Kind = iota
	// KindDirect is a two-party conversation.
	KindDirect
	// KindGroup is a group chat room.
	KindGroup
	// KindNotify is a per-user notification feed.
	KindNotify
)

const (
	prefixDirect = "direct"
	prefixGroup  = "group"
	prefixNotify = "notify"
)

// ErrMalformed is returned when a topic name cannot be parsed.
var ErrMalformed = errors.New("malformed topic name")

// String returns the prefix of the topic kind.
func (k Kind) String() string {
	switch k {
	case KindDirect:
		return prefixDirect
	case KindGroup:
		return prefixGroup
	case KindNotify:
		return prefixNotify
	}
	return "unknown"
}

// Direct returns the name of a conversation between two users. The name does not
// depend on the order of arguments. Returns an empty string for self-pairs and zero IDs.
func Direct(a, b types.Uid) string {
	if a.IsZero() || b.IsZero() || a == b {
		return ""
	}
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return prefixDirect + ":" + a.String() + ":" + b.String()
}

// Group returns the name of a group chat room.
func Group(gid int64) string {
	return prefixGroup + ":" + strconv.FormatInt(gid, 10)
}

// Notify returns the name of a user's notification feed.
func Notify(uid types.Uid) string {
	return prefixNotify + ":" + uid.String()
}

// Parse splits the topic name into its kind and the embedded IDs: two user IDs
// for a direct topic, the group ID for a group, the owner ID for a notification feed.
func Parse(name string) (Kind, []int64, error) {
	parts := strings.Split(name, ":")
	var kind Kind
	var want int
	switch parts[0] {
	case prefixDirect:
		kind, want = KindDirect, 3
	case prefixGroup:
		kind, want = KindGroup, 2
	case prefixNotify:
		kind, want = KindNotify, 2
	default:
		return KindUnknown, nil, ErrMalformed
	}
	if len(parts) != want {
		return KindUnknown, nil, ErrMalformed
	}

	ids := make([]int64, 0, want-1)
	for _, p := range parts[1:] {
		id, err := strconv.ParseInt(p, 10, 64)
		// Only canonical decimal forms are accepted.
		if err != nil || id <= 0 || strconv.FormatInt(id, 10) != p {
			return KindUnknown, nil, ErrMalformed
		}
		ids = append(ids, id)
	}

	if kind == KindDirect && ids[0] >= ids[1] {
		return KindUnknown, nil, ErrMalformed
	}
	return kind, ids, nil
}

// OwnerOf returns the user who owns the notification topic.
func OwnerOf(name string) (types.Uid, bool) {
	kind, ids, err := Parse(name)
	if err != nil || kind != KindNotify {
		return types.ZeroUid, false
	}
	return types.Uid(ids[0]), true
}
