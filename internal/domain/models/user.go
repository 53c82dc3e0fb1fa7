package model

// InternalUser is the user-directory record with internal ids attached.
type InternalUser struct {
	UserID int64  `json:"user_id"`
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

// Portable strips the internal id for client-facing payloads.
func (u *InternalUser) Portable() *UserPortable {
	return &UserPortable{
		Handle: u.Handle,
		Name:   u.Name,
	}
}

type UserPortable struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
}
