// Package types defines the records shared by the store, its adapters and the
// real-time core: users, friend requests, groups, join requests and chat messages.
package types

import (
	"errors"
	"strconv"
	"time"
)

// StoreError satisfies Error interface but allows constant values for
// direct comparison.
type StoreError string

// Error is required by error interface.
func (s StoreError) Error() string {
	return string(s)
}

const (
	// ErrInternal means DB or other internal failure.
	ErrInternal = StoreError("internal")
	// ErrMalformed means the input is malformed.
	ErrMalformed = StoreError("malformed")
	// ErrDuplicate means a unique constraint was violated, i.e. the record already exists.
	ErrDuplicate = StoreError("duplicate value")
	// ErrNotFound means the object was not found.
	ErrNotFound = StoreError("not found")
	// ErrUnsupported means an operation is not supported.
	ErrUnsupported = StoreError("unsupported")
)

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Uid is a numeric user ID. Zero is not a valid user.
type Uid int64

// ZeroUid is a constant representing uninitialized Uid.
const ZeroUid Uid = 0

// IsZero checks if Uid is uninitialized.
func (uid Uid) IsZero() bool {
	return uid == ZeroUid
}

// Compare returns 0 if uid is equal to u2, 1 if u2 is greater than uid, -1 if u2 is smaller.
func (uid Uid) Compare(u2 Uid) int {
	if uid < u2 {
		return -1
	} else if uid > u2 {
		return 1
	}
	return 0
}

// String converts Uid to its decimal form.
func (uid Uid) String() string {
	return strconv.FormatInt(int64(uid), 10)
}

// ParseUid parses a decimal user ID. Returns ZeroUid for anything which is
// not a positive integer.
func ParseUid(s string) Uid {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return ZeroUid
	}
	return Uid(id)
}

// UidSlice is a slice of Uids.
type UidSlice []Uid

// Contains checks if the slice contains the given uid.
func (us UidSlice) Contains(uid Uid) bool {
	for _, u := range us {
		if u == uid {
			return true
		}
	}
	return false
}

// TimeNow returns current wall time in UTC rounded to milliseconds.
func TimeNow() time.Time {
	return time.Now().UTC().Round(time.Millisecond)
}

// User is a representation of a DB-stored user record.
type User struct {
	Id        Uid
	CreatedAt time.Time

	Username  string
	Email     string
	FirstName string
	LastName  string
	// Reference to the avatar image, an URL or a path within the media store.
	Image string
}

// FullName is the display name: first and last name joined by a space.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// FriendRequest is a friendship record. It's a pending request while Accepted is false
// and a friendship once accepted.
type FriendRequest struct {
	Id        int64
	CreatedAt time.Time

	From     Uid
	To       Uid
	Accepted bool

	// Preloaded users, may be nil.
	FromUser *User
	ToUser   *User
}

// Other returns the other party of the friendship.
func (fr *FriendRequest) Other(uid Uid) Uid {
	if fr.From == uid {
		return fr.To
	}
	return fr.From
}

// Group is a representation of a chat group.
type Group struct {
	Id        int64
	CreatedAt time.Time

	Name  string
	Image string
	Admin Uid
}

// GroupRequest is a request of a user to join a group. The group admin owns an
// accepted request created together with the group.
type GroupRequest struct {
	Id        int64
	CreatedAt time.Time

	Group    int64
	User     Uid
	Accepted bool

	// Preloaded objects, may be nil.
	GroupObj  *Group
	Requester *User
}

// Message is a stored chat message. Exactly one of To and Group is set.
type Message struct {
	Id        int64
	CreatedAt time.Time

	From  Uid
	To    Uid
	Group int64
	Text  string
}

// IsGroup checks if the message was posted to a group.
func (m *Message) IsGroup() bool {
	return m.Group != 0
}
