/******************************************************************************
 *
 *  Description :
 *
 *  Handling of websocket sessions. A session is subscribed to exactly one
 *  topic; a user may have many sessions.
 *
 *****************************************************************************/

package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chatwire/chat/server/logs"
	"github.com/chatwire/chat/server/store/types"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rivo/uniseg"
	"golang.org/x/time/rate"
)

// Session states.
const (
	sessConnecting int32 = iota
	sessAuthorized
	sessRejected
	sessClosed
)

var (
	errEmptyMessage   = errors.New("empty message")
	errMessageTooLong = errors.New("message too long")
	errUndecodable    = errors.New("undecodable frame")
)

// Session represents a single websocket connection.
type Session struct {
	// Websocket. Nil until the upgrade is complete.
	ws *websocket.Conn

	// Session ID
	sid string

	// IP address of the client
	remoteAddr string

	// Owner of the session.
	uid  types.Uid
	user *types.User

	// Configuration of the channel.
	kind *channelKind

	// The only subscribed topic, set on admission.
	topic string
	// Counterpart of a direct chat.
	peer types.Uid
	// Group of a group chat.
	group int64

	// Outbound messages, serialized. Never closed, the write loop exits on ctx.
	send chan []byte

	// Cancelled when the session is closed.
	ctx    context.Context
	cancel context.CancelFunc

	// Limit on inbound chat messages.
	limiter *rate.Limiter

	state int32

	// Guards cleanUp.
	closeOnce sync.Once
	// Session is being shut down by the server.
	shuttingDown atomic.Bool
}

func newSession(kind *channelKind, remoteAddr string) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		sid:        uuid.NewString(),
		remoteAddr: remoteAddr,
		kind:       kind,
		send:       make(chan []byte, globals.sendQueueSize),
		ctx:        ctx,
		cancel:     cancel,
		limiter:    rate.NewLimiter(rate.Limit(globals.inboundRate), globals.inboundBurst),
		state:      sessConnecting,
	}
}

func (s *Session) getState() int32 {
	return atomic.LoadInt32(&s.state)
}

func (s *Session) setState(state int32) {
	atomic.StoreInt32(&s.state, state)
}

// Deliver queues a serialized event for sending. Waits at most globals.deliveryTimeout
// for room in the queue.
func (s *Session) Deliver(payload []byte) bool {
	if s.ctx.Err() != nil {
		return false
	}

	select {
	case s.send <- payload:
		return true
	default:
	}

	timer := time.NewTimer(globals.deliveryTimeout)
	defer timer.Stop()

	select {
	case s.send <- payload:
		return true
	case <-s.ctx.Done():
		return false
	case <-timer.C:
		logs.Warn.Println("s.Deliver: timeout", s.sid)
		return false
	}
}

// cleanUp leaves the topic and releases resources. Safe to call more than once.
func (s *Session) cleanUp() {
	s.closeOnce.Do(func() {
		wasAuthorized := s.getState() == sessAuthorized
		s.setState(sessClosed)
		s.cancel()

		if wasAuthorized {
			globals.registry.Leave(s.topic, s)
			if s.ws != nil {
				globals.sessionStore.Delete(s)
				globals.stats.sessionClosed(s.kind.name)
			}
		}
		logs.Info.Println("s.cleanUp: session closed", s.sid, s.uid, s.topic)
	})
}

// stop asks the write loop to close the connection.
func (s *Session) stop() {
	s.shuttingDown.Store(true)
	s.cancel()
}

// dispatchRaw handles an inbound frame: decodes, validates, stores and publishes it.
// Frames which cannot be handled are dropped, the connection stays open.
func (s *Session) dispatchRaw(raw []byte) {
	if s.kind.post == nil {
		// Read-only channel.
		return
	}

	toLog := raw
	truncated := ""
	if len(raw) > 512 {
		toLog = raw[:512]
		truncated = "<...>"
	}

	if !s.limiter.Allow() {
		logs.Warn.Printf("s.dispatch: rate limit exceeded, dropped '%s%s' sid='%s' uid='%s'",
			toLog, truncated, s.sid, s.uid)
		globals.stats.inboundDropped("rate_limited")
		return
	}

	text, err := decodeChatText(raw)
	if err != nil {
		if err != errEmptyMessage {
			logs.Warn.Printf("s.dispatch: %v, dropped '%s%s' sid='%s' uid='%s'",
				err, toLog, truncated, s.sid, s.uid)
		}
		globals.stats.inboundDropped(dropReason(err))
		return
	}

	ev, err := s.kind.post(s, text)
	if err != nil {
		logs.Err.Println("s.dispatch: failed to store message", s.sid, s.uid, err)
		globals.stats.inboundDropped("store_failure")
		return
	}

	globals.stats.inboundAccepted(s.kind.name)
	globals.registry.Publish(s.topic, ev)
}

// decodeChatText extracts the chat message from a frame. A frame is either a JSON string
// or an object with a string 'message'.
func decodeChatText(raw []byte) (string, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		var obj struct {
			Message *string `json:"message"`
		}
		if err = json.Unmarshal(raw, &obj); err != nil || obj.Message == nil {
			return "", errUndecodable
		}
		text = *obj.Message
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmptyMessage
	}
	if uniseg.GraphemeClusterCount(text) > globals.maxMessageLength {
		return "", errMessageTooLong
	}
	return text, nil
}

func dropReason(err error) string {
	switch err {
	case errEmptyMessage:
		return "empty"
	case errMessageTooLong:
		return "too_long"
	default:
		return "undecodable"
	}
}
