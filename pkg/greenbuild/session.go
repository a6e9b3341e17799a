package greenbuild

import (
	"context"
	"encoding/json"
	"net/http"
)

type SessionState int

const (
	StateUninitialized SessionState = iota
	StateAnonymous
	StateAuthenticated
)

type User struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
}

// SessionStore manages the persisted credential and the derived role flags.
type SessionStore struct {
	client  *Client
	storage Storage
	notify  Notifier

	state SessionState
	user  *User
}

func NewSessionStore(client *Client, storage Storage, notify Notifier) *SessionStore {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &SessionStore{
		client:  client,
		storage: storage,
		notify:  notify,
		state:   StateUninitialized,
	}
}

// Initialize restores a persisted session by validating the stored token
// against the user endpoint. It always lands in anonymous or authenticated;
// a rejected token clears storage rather than leaving stale identity.
func (s *SessionStore) Initialize(ctx context.Context) {
	raw, found := s.storage.Get(storageKeyToken)
	if !found || raw == "" {
		s.clearLocal()
		return
	}

	s.client.SetToken(raw)

	var user User
	if err := s.client.do(ctx, http.MethodGet, "/api/user", nil, &user); err != nil {
		s.clearLocal()
		return
	}

	s.user = &user
	s.state = StateAuthenticated
	s.persistUser(&user)
}

type authPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (s *SessionStore) Login(ctx context.Context, email, password string) Result {
	body := map[string]string{"email": email, "password": password}

	var payload authPayload
	if err := s.client.do(ctx, http.MethodPost, "/api/login", body, &payload); err != nil {
		msg := remoteMessage(err)
		s.notify.Error(msg)
		return failRemote(msg)
	}

	s.adopt(payload)
	s.notify.Success("Welcome back, " + payload.User.Name)
	return ok()
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *SessionStore) Register(ctx context.Context, input RegisterInput) Result {
	var payload authPayload
	if err := s.client.do(ctx, http.MethodPost, "/api/register", input, &payload); err != nil {
		msg := remoteMessage(err)
		s.notify.Error(msg)
		return failRemote(msg)
	}

	s.adopt(payload)
	s.notify.Success("Account created")
	return ok()
}

// Logout revokes the token remotely on a best-effort basis and always
// clears the local session.
func (s *SessionStore) Logout(ctx context.Context) {
	if s.state == StateAuthenticated {
		_ = s.client.do(ctx, http.MethodPost, "/api/logout", nil, nil)
	}
	s.clearLocal()
	s.notify.Success("Logged out")
}

func (s *SessionStore) adopt(payload authPayload) {
	s.client.SetToken(payload.Token)
	s.storage.Set(storageKeyToken, payload.Token)
	s.persistUser(&payload.User)
	user := payload.User
	s.user = &user
	s.state = StateAuthenticated
}

func (s *SessionStore) persistUser(user *User) {
	if data, err := json.Marshal(user); err == nil {
		s.storage.Set(storageKeyUser, string(data))
	}
}

func (s *SessionStore) clearLocal() {
	s.client.SetToken("")
	s.storage.Remove(storageKeyToken)
	s.storage.Remove(storageKeyUser)
	s.user = nil
	s.state = StateAnonymous
}

func (s *SessionStore) State() SessionState {
	return s.state
}

func (s *SessionStore) CurrentUser() *User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *SessionStore) role() string {
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

func (s *SessionStore) IsDesigner() bool { return s.role() == "designer" }
func (s *SessionStore) IsBuyer() bool    { return s.role() == "buyer" }
func (s *SessionStore) IsAdmin() bool    { return s.role() == "admin" }
