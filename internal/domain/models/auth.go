package model

// Scope is a named role granted to an authenticated user.
type Scope string

const (
	ScopeUser     Scope = "user"
	ScopeMod      Scope = "mod"
	ScopeAdmin    Scope = "admin"
	ScopeInternal Scope = "internal"
)

// AuthUser is the authenticated caller as produced by the auth middleware.
// An anonymous request yields the zero value with Authenticated false.
type AuthUser struct {
	ID            int64   `json:"user_id"`
	Scopes        []Scope `json:"scopes"`
	Authenticated bool    `json:"authenticated"`
}

func (u AuthUser) HasScope(scope Scope) bool {
	for _, s := range u.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
