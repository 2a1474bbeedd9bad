package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

/*
* One live websocket session
* Gorilla allows a single writer per connection,every outbound frame
* goes through Send so the lock is the only write path
 */
type session struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (s *session) send(v interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *session) close() {
	if s.conn != nil {
		s.conn.Close()
	}
}

// Registry tracks which user is connected on which websocket. One
// instance is created at server start and closed at shutdown, so the
// session state has an explicit lifecycle instead of living in a
// package-level map.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*session)}
}

/*
* A second connection for the same user replaces the first
 */
func (r *Registry) Add(userId string, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.sessions[userId]; ok {
		old.close()
	}
	r.sessions[userId] = &session{conn: conn}
}

/*
* Remove drops the session only while it still owns this connection
* After a reconnect the map holds the replacement,and the old read
* loop's teardown must leave it registered
 */
func (r *Registry) Remove(userId string, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.sessions[userId]; ok && current.conn == conn {
		delete(r.sessions, userId)
	}
}

func (r *Registry) Get(userId string) (*websocket.Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	current, ok := r.sessions[userId]
	if !ok {
		return nil, false
	}
	return current.conn, true
}

func (r *Registry) Online(userId string) bool {
	_, ok := r.Get(userId)
	return ok
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

/*
* Send writes to the user's session under its write lock
* Returns false when the user has no session,the write error otherwise
 */
func (r *Registry) Send(userId string, v interface{}) (bool, error) {
	r.mu.RLock()
	current, ok := r.sessions[userId]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, current.send(v)
}

/*
* Close every session,used at shutdown
 */
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userId, current := range r.sessions {
		current.close()
		delete(r.sessions, userId)
	}
}
