package model

// Privacy is the visibility of a post. Only public posts count toward tag
// counters; public and unlisted posts expose their tags to any caller.
type Privacy string

const (
	PrivacyPublic   Privacy = "public"
	PrivacyUnlisted Privacy = "unlisted"
	PrivacyPrivate  Privacy = "private"
)

// InternalPost is the slice of a post record served by the post directory
// service that the tag pipeline consumes.
type InternalPost struct {
	PostID  PostID  `json:"post_id"`
	UserID  int64   `json:"uploader"`
	Privacy Privacy `json:"privacy"`
}
