package user

const (
	// AdminUsername is the single privileged identity.
	AdminUsername = "ADMIN"

	// AnonymousUsername identifies callers without credentials.
	AnonymousUsername = "ANONYMOUS"
)

// User is the resolved identity of a caller.
// It is a value object: two users with the same username are the same user.
type User struct {
	username string
}

// New creates a user for the given username.
func New(username string) *User {
	return &User{username: username}
}

// Admin returns the privileged user.
func Admin() *User { return New(AdminUsername) }

// Anonymous returns the user of unauthenticated requests.
func Anonymous() *User { return New(AnonymousUsername) }

// Username returns the username, or an empty string for a nil user.
func (u *User) Username() string {
	if u == nil {
		return ""
	}
	return u.username
}

// IsAdmin reports whether u is present and is the admin identity.
func IsAdmin(u *User) bool {
	return u != nil && u.username != "" && u.username == AdminUsername
}

// RequireAdmin returns an invalid-user error unless u is the admin.
func RequireAdmin(u *User) error {
	if !IsAdmin(u) {
		return NewInvalidUserError()
	}
	return nil
}
