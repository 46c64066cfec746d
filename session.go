package underboss

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/underboss/underboss-go/auth"
)

// Session holds the cached identity of the logged-in user: the bearer token,
// who it belongs to, and the last-fetched profile snapshot. It is a
// read-optimization only; authorization decisions stay server-side and every
// privileged dispatch still sends the token.
//
// Construct one per client (or share one across clients) and inject it via
// Config.Session so tests can run isolated instances. All methods are safe
// for concurrent use.
type Session struct {
	mu              sync.RWMutex
	token           string
	userID          uuid.UUID
	username        string
	profile         *Profile
	profileComplete bool
}

// NewSession returns an empty, logged-out session.
func NewSession() *Session {
	return &Session{}
}

// Token returns the cached bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a token is cached.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// UserID returns the cached user id, or uuid.Nil when logged out.
func (s *Session) UserID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Username returns the cached username, or "" when logged out.
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Profile returns a copy of the last-fetched profile snapshot, which may be
// stale, and false when none has been fetched yet.
func (s *Session) Profile() (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return Profile{}, false
	}
	return *s.profile, true
}

// IsProfileComplete reports whether the cached profile has both first and
// last name filled in.
func (s *Session) IsProfileComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileComplete
}

// Claims decodes the cached token's JWT claims without verifying the
// signature. Diagnostics only; the server remains the authority on token
// validity.
func (s *Session) Claims() (*auth.Claims, error) {
	return auth.DecodeClaims(s.Token())
}

// Logout clears the token, identity, and profile snapshot.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = uuid.Nil
	s.username = ""
	s.profile = nil
	s.profileComplete = false
}

func (s *Session) setIdentity(id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = id.Token
	s.userID = id.UserID
	s.username = id.Username
}

func (s *Session) refreshIdentity(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = u.UserID
	s.username = u.Username
}

func (s *Session) setProfile(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := p
	s.profile = &snapshot
	s.profileComplete = p.Complete()
}

// Descriptor side effects. Best-effort: a body that does not decode leaves
// the session untouched rather than failing the call.

func cacheLoginIdentity(s *Session, body json.RawMessage) {
	var id Identity
	if err := json.Unmarshal(body, &id); err != nil || id.Token == "" {
		return
	}
	s.setIdentity(id)
}

func cacheIdentity(s *Session, body json.RawMessage) {
	var u User
	if err := json.Unmarshal(body, &u); err != nil || u.UserID == uuid.Nil {
		return
	}
	s.refreshIdentity(u)
}

func cacheProfile(s *Session, body json.RawMessage) {
	var p Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return
	}
	s.setProfile(p)
}
