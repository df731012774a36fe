/******************************************************************************
 *
 *  Description :
 *
 *  Registry of live sessions, used for accounting and shutdown.
 *
 *****************************************************************************/

package main

import (
	"sync"
	"time"

	"github.com/chatwire/chat/server/logs"
)

// SessionStore holds live sessions indexed by session ID.
type SessionStore struct {
	lock sync.Mutex

	sessCache map[string]*Session
}

// Add saves the session to the store. Returns the number of live sessions.
func (ss *SessionStore) Add(s *Session) int {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	ss.sessCache[s.sid] = s
	return len(ss.sessCache)
}

// Delete removes session from store.
func (ss *SessionStore) Delete(s *Session) int {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	delete(ss.sessCache, s.sid)
	return len(ss.sessCache)
}

// Count returns the number of live sessions.
func (ss *SessionStore) Count() int {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return len(ss.sessCache)
}

// Shutdown terminates all sessions and waits up to a few seconds for them to close.
func (ss *SessionStore) Shutdown() {
	ss.lock.Lock()
	count := len(ss.sessCache)
	for _, s := range ss.sessCache {
		s.stop()
	}
	ss.lock.Unlock()

	deadline := time.Now().Add(shutdownTimeout)
	for ss.Count() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	logs.Info.Printf("SessionStore shut down, sessions terminated: %d", count)
}

// NewSessionStore initializes a session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessCache: make(map[string]*Session),
	}
}
