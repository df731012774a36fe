/******************************************************************************
 *
 *  Description :
 *
 *    Handler of websocket connections.
 *
 *****************************************************************************/

package main

import (
	"net/http"
	"time"

	"github.com/chatwire/chat/server/logs"
	"github.com/chatwire/chat/server/store"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
)

// Send pings to peer with this period. Must be less than idleTimeout.
func pingPeriod() time.Duration {
	return (globals.idleTimeout * 9) / 10
}

func (s *Session) readLoop() {
	defer func() {
		if r := recover(); r != nil {
			logs.Err.Println("ws: panic in readLoop", s.sid, r)
		}
		s.ws.Close()
		s.cleanUp()
	}()

	s.ws.SetReadLimit(globals.maxMessageSize)
	s.ws.SetReadDeadline(time.Now().Add(globals.idleTimeout))
	s.ws.SetPongHandler(func(string) error {
		s.ws.SetReadDeadline(time.Now().Add(globals.idleTimeout))
		return nil
	})

	for {
		// Frames are handled one by one in arrival order.
		_, raw, err := s.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				logs.Err.Println("ws: readLoop", s.sid, err)
			}
			return
		}
		s.dispatchRaw(raw)
	}
}

func (s *Session) writeLoop() {
	ticker := time.NewTicker(pingPeriod())

	defer func() {
		ticker.Stop()
		// Break readLoop.
		s.ws.Close()
	}()

	for {
		select {
		case msg := <-s.send:
			if err := wsWrite(s.ws, websocket.TextMessage, msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
					websocket.CloseNormalClosure) {
					logs.Err.Println("ws: writeLoop", s.sid, err)
				}
				return
			}

		case <-s.ctx.Done():
			if s.shuttingDown.Load() {
				// Don't care if the message is delivered.
				s.ws.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
					time.Now().Add(writeWait))
			}
			return

		case <-ticker.C:
			if err := wsWrite(s.ws, websocket.PingMessage, nil); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
					websocket.CloseNormalClosure) {
					logs.Err.Println("ws: writeLoop ping", s.sid, err)
				}
				return
			}
		}
	}
}

// Writes a message with the given message type (mt) and payload.
func wsWrite(ws *websocket.Conn, mt int, msg []byte) error {
	if msg == nil {
		msg = []byte{}
	}
	ws.SetWriteDeadline(time.Now().Add(writeWait))
	return ws.WriteMessage(mt, msg)
}

// Handles websocket requests from peers.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Acceptance is signalled by echoing the sub-protocol which precedes the credential.
	Subprotocols: []string{credentialProtocol},
	CheckOrigin:  checkOrigin,
}

func checkOrigin(req *http.Request) bool {
	if len(globals.allowedOrigins) == 0 {
		return true
	}
	return globals.allowedOrigins[req.Header.Get("Origin")]
}

// reject refuses the connection: 403 with no body.
func reject(wrt http.ResponseWriter, s *Session, err error) {
	s.setState(sessRejected)
	s.cleanUp()
	wrt.WriteHeader(http.StatusForbidden)
	reason := "unknown"
	if ae, ok := err.(admitErr); ok {
		reason = string(ae)
	}
	globals.stats.rejected(reason)
	logs.Warn.Printf("ws: %s connection rejected: %v, uid='%s' ip='%s'", s.kind.name, err, s.uid, s.remoteAddr)
}

// serveWebSocket returns a handler of websocket connections to the given kind of channel.
func serveWebSocket(kind *channelKind) http.HandlerFunc {
	return func(wrt http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			wrt.WriteHeader(http.StatusMethodNotAllowed)
			logs.Err.Println("ws: Invalid HTTP method", req.Method)
			return
		}

		s := newSession(kind, remoteAddr(req))

		if !checkOrigin(req) {
			reject(wrt, s, errAccessDenied)
			return
		}
		if err := s.authenticate(credentialFromRequest(req)); err != nil {
			reject(wrt, s, err)
			return
		}
		if err := kind.admit(s, mux.Vars(req)["id"]); err != nil {
			reject(wrt, s, err)
			return
		}

		// Join before the upgrade so that no event published after acceptance is missed.
		s.setState(sessAuthorized)
		globals.registry.Join(s.topic, s)

		ws, err := upgrader.Upgrade(wrt, req, nil)
		if err != nil {
			// Upgrader has already responded to the client.
			if _, ok := err.(websocket.HandshakeError); ok {
				logs.Err.Println("ws: Not a websocket handshake")
			} else {
				logs.Err.Println("ws: failed to Upgrade ", err)
			}
			s.cleanUp()
			return
		}
		s.ws = ws

		count := globals.sessionStore.Add(s)
		globals.stats.sessionOpened(kind.name)
		logs.Info.Println("ws: session started", s.sid, s.uid, s.topic, s.remoteAddr, count)

		// Do work in goroutines to return from serveWebSocket() to release file pointers.
		// Otherwise "too many open files" will happen.
		go s.writeLoop()
		go s.readLoop()
	}
}

// authenticate resolves the credential to a user.
func (s *Session) authenticate(secret string) error {
	if secret == "" {
		return errAuthFailed
	}
	uid, err := globals.resolver.Resolve([]byte(secret))
	if err != nil {
		return errAuthFailed
	}
	user, err := store.Users.Get(uid)
	if err != nil || user == nil {
		return errAuthFailed
	}
	s.uid = uid
	s.user = user
	return nil
}
