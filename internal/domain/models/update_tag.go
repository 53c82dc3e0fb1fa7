package model

// UpdateTagDTO carries the optional fields of a tag patch as received at the
// API boundary. Nil fields are left untouched; Owner is a user handle.
type UpdateTagDTO struct {
	Name        *string `json:"name,omitempty"`
	Group       *string `json:"group,omitempty"`
	Owner       *string `json:"owner,omitempty"`
	Description *string `json:"description,omitempty"`
	Deprecated  *bool   `json:"deprecated,omitempty"`
}

func (d *UpdateTagDTO) Empty() bool {
	return d.Name == nil &&
		d.Group == nil &&
		d.Owner == nil &&
		d.Description == nil &&
		d.Deprecated == nil
}

// TagPatch is UpdateTagDTO with the owner handle resolved to a user id,
// ready to be applied by the repository.
type TagPatch struct {
	Name        *string
	Group       *string
	OwnerID     *int64
	Description *string
	Deprecated  *bool
}
