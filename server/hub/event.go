package hub

// Event types, they select the client-side handler.
const (
	// TypeChat is a chat message or a control event of a chat room.
	TypeChat = "chat_message"
	// TypeNotification is an event of a user's notification feed.
	TypeNotification = "send_notification"
)

// Event is a message published to a topic. Only the fields relevant to the event are set,
// the rest are omitted on the wire.
type Event struct {
	Type string `json:"type"`

	// ID of the message, group or user the event is about.
	Id int64 `json:"id,omitempty"`

	// Chat payload.
	Message   string `json:"message,omitempty"`
	Username  string `json:"username,omitempty"`
	TimeStamp string `json:"time_stamp,omitempty"`
	Name      string `json:"name,omitempty"`
	UserId    int64  `json:"user_id,omitempty"`
	UserImg   string `json:"user_img,omitempty"`

	// Notification payload.
	Image      string `json:"image,omitempty"`
	Email      string `json:"email,omitempty"`
	Msg        string `json:"msg,omitempty"`
	GroupId    int64  `json:"group_id,omitempty"`
	GroupName  string `json:"group_name,omitempty"`
	GroupImage string `json:"group_image,omitempty"`
	GroupReqId int64  `json:"group_req_id,omitempty"`

	// Flags.
	AddedToGroup            bool `json:"added_to_group,omitempty"`
	GroupClosed             bool `json:"group_closed,omitempty"`
	GroupDeleted            bool `json:"group_deleted,omitempty"`
	ReceivedGroupRequest    bool `json:"received_group_request,omitempty"`
	ReceivedFriendRequest   bool `json:"received_friend_request,omitempty"`
	AcceptedFriendRequest   bool `json:"accepted_friend_request,omitempty"`
	FriendConnectionDeleted bool `json:"friend_connection_deleted,omitempty"`
	RejectedFriendRequest   bool `json:"rejected_friend_request,omitempty"`
}
