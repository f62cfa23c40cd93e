// Package session tracks the authenticated identity for a browser client
// across requests, backed by a signed cookie store. It also carries the
// one-shot flash messages shown after redirects.
package session

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"vaani_web/internal/common"
)

const (
	keyUserID       = "user_id"
	keyUsername     = "username"
	keyFullName     = "full_name"
	keyLoginStarted = "login_started"

	// A login attempt older than this is considered abandoned and no
	// longer blocks a new attempt.
	loginGrace = 30 * time.Second
)

// Identity is the authenticated user state carried by a session.
type Identity struct {
	UserID   string
	Username string
	FullName string
}

// Flash is a one-shot status message surfaced on the next rendered page.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Manager wraps a cookie store with the login state machine:
// Anonymous -> LoginInProgress -> Authenticated -> Anonymous.
type Manager struct {
	store *sessions.CookieStore
	name  string
	now   func() time.Time
}

func NewManager(secret, name string) *Manager {
	return &Manager{
		store: sessions.NewCookieStore([]byte(secret)),
		name:  name,
		now:   time.Now,
	}
}

func (m *Manager) session(r *http.Request) *sessions.Session {
	// Get returns a fresh session when the cookie is absent or fails
	// authentication, which is the behavior we want for both cases.
	s, _ := m.store.Get(r, m.name)
	return s
}

// Identity returns the authenticated identity, if any.
func (m *Manager) Identity(r *http.Request) (Identity, bool) {
	s := m.session(r)
	userID, ok := s.Values[keyUserID].(string)
	if !ok || userID == "" {
		return Identity{}, false
	}
	username, _ := s.Values[keyUsername].(string)
	fullName, _ := s.Values[keyFullName].(string)
	return Identity{UserID: userID, Username: username, FullName: fullName}, true
}

// BeginLogin marks a login attempt as in flight. A second attempt from the
// same session while one is pending is rejected with ErrLoginInProgress.
func (m *Manager) BeginLogin(w http.ResponseWriter, r *http.Request) error {
	s := m.session(r)
	if started, ok := s.Values[keyLoginStarted].(int64); ok {
		if m.now().Sub(time.Unix(started, 0)) < loginGrace {
			return common.ErrLoginInProgress
		}
	}
	s.Values[keyLoginStarted] = m.now().Unix()
	return s.Save(r, w)
}

// CompleteLogin records the verified identity and clears the in-flight flag.
func (m *Manager) CompleteLogin(w http.ResponseWriter, r *http.Request, id Identity) error {
	s := m.session(r)
	delete(s.Values, keyLoginStarted)
	s.Values[keyUserID] = id.UserID
	s.Values[keyUsername] = id.Username
	s.Values[keyFullName] = id.FullName
	return s.Save(r, w)
}

// FailLogin clears the in-flight flag without touching identity state.
func (m *Manager) FailLogin(w http.ResponseWriter, r *http.Request) error {
	s := m.session(r)
	delete(s.Values, keyLoginStarted)
	return s.Save(r, w)
}

// Clear drops all session state (logout). The cookie itself stays alive so a
// following flash message can still be delivered.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s := m.session(r)
	for k := range s.Values {
		delete(s.Values, k)
	}
	return s.Save(r, w)
}

// AddFlash queues a status message for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, kind, message string) error {
	s := m.session(r)
	s.AddFlash(Flash{Kind: kind, Message: message})
	return s.Save(r, w)
}

// Flashes consumes and returns all queued status messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s := m.session(r)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes mutates the session; persist the consumption.
	_ = s.Save(r, w)

	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	return out
}
