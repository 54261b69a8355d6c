package domain

import "errors"

// ErrNoSigningSecret means the process has no token signing secret
// configured; sessions can neither be issued nor verified.
var ErrNoSigningSecret = errors.New("no signing secret configured")

// ErrInvalidToken covers every token verification failure: bad
// signature, wrong algorithm, expired, malformed, or empty subject.
var ErrInvalidToken = errors.New("invalid session token")

// ErrNoSession means the request carried no session cookie at all.
var ErrNoSession = errors.New("no session")

// ErrEmptySubject means a session was requested for a blank user ID.
var ErrEmptySubject = errors.New("empty session subject")

// AuthStatus is the public result of session validation. It carries no
// failure detail: a request is either authenticated as User, or it is
// not, with every rejection reason collapsed.
type AuthStatus struct {
	Authenticated bool
	User          *User
}
