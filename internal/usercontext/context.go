// Package usercontext carries the authenticated caller through request
// contexts. Role-based visibility filters in the data-access services
// read from here.
package usercontext

import "context"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// UserSession is the identity attached to an authenticated request.
type UserSession struct {
	ID     string
	Role   string
	Nombre string
}

// IsAdmin reports whether the caller bypasses visibility filters.
func (u UserSession) IsAdmin() bool { return u.Role == RoleAdmin }

type userKey struct{}

// WithUser annotates the context with the authenticated caller.
func WithUser(ctx context.Context, user UserSession) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// FromContext returns the authenticated caller, if any.
func FromContext(ctx context.Context) (UserSession, bool) {
	user, ok := ctx.Value(userKey{}).(UserSession)
	return user, ok
}
