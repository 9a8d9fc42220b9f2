package domain

import "context"

// Session represents an authenticated catalog session. A Session is created
// once per successful login and never modified afterwards.
type Session struct {
	SessionID string
	Username  string
	Roles     []string
}

// HasRoles reports whether the service returned any roles for the session.
func (s *Session) HasRoles() bool {
	return len(s.Roles) > 0
}

// Credentials is a username/password pair entered by the operator.
type Credentials struct {
	Username string
	Password string
}

// Authenticator performs a single login attempt against the catalog service.
type Authenticator interface {
	Login(ctx context.Context, baseURL, username, password string) (*Session, error)
}
