package model

// InternalTag is the storage form of a tag. It carries the owner as a raw
// user id; resolving it to a portable user happens at projection time.
type InternalTag struct {
	Name          string   `json:"name"`
	Group         string   `json:"group"`
	OwnerID       *int64   `json:"owner,omitempty"`
	Deprecated    bool     `json:"deprecated"`
	InheritedTags []string `json:"inherited_tags"`
	Description   *string  `json:"description,omitempty"`
}

// Tag is the public form served to clients: the owner is resolved to a
// portable user record and Count reflects the public-post usage counter.
type Tag struct {
	Tag           string        `json:"tag"`
	Owner         *UserPortable `json:"owner,omitempty"`
	Group         string        `json:"group"`
	Deprecated    bool          `json:"deprecated"`
	InheritedTags []string      `json:"inherited_tags"`
	Description   *string       `json:"description,omitempty"`
	Count         int64         `json:"count"`
}

// PostTags is the storage view of one post: its non-deprecated tag names
// grouped by class, plus the post's privacy and uploader. A known post with
// no tags has empty Groups, which keeps it distinguishable from a post that
// does not exist at all.
type PostTags struct {
	Groups  TagGroups
	Privacy Privacy
	UserID  int64
}
