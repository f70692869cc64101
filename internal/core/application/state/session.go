package state

import (
	"errors"
	"strings"
	"sync"

	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/pkg/errs"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Session holds the token and profile of the logged-in admin.
// It implements ports.TokenSource.
type Session struct {
	mu    sync.RWMutex
	token string
	admin *account.User
}

func NewSession() *Session {
	return &Session{}
}

// Start begins a session for user. Only admins with a non-blank token are accepted;
// a rejected start leaves the previous state untouched.
func (s *Session) Start(user account.User, token string) error {
	if err := user.ValidateAdmin(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.admin = &user
	return nil
}

// End forgets the token and profile. Ending an inactive session is a no-op.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.admin = nil
}

func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNotLoggedIn
	}
	return s.token, nil
}

func (s *Session) Admin() (account.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin == nil {
		return account.User{}, ErrNotLoggedIn
	}
	return *s.admin, nil
}

func (s *Session) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
