package tag_service

import (
	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
)

// AuthGate holds the ownership and scope predicates for tag operations. An
// unauthenticated caller on a gated check fails with ErrUnauthenticated; an
// authenticated caller lacking the needed scope fails with a Forbidden-class
// error.
type AuthGate struct{}

func NewAuthGate() *AuthGate {
	return &AuthGate{}
}

// RequireUser gates operations that need any authenticated caller.
func (g *AuthGate) RequireUser(user model.AuthUser) error {
	if !user.Authenticated {
		return custom_errors.ErrUnauthenticated
	}
	return nil
}

// MayEdit allows the tag owner and moderators. An ownerless tag can only be
// edited by a moderator.
func (g *AuthGate) MayEdit(user model.AuthUser, tag *model.InternalTag) error {
	if !user.Authenticated {
		return custom_errors.ErrUnauthenticated
	}
	if tag.OwnerID != nil && *tag.OwnerID == user.ID {
		return nil
	}
	if user.HasScope(model.ScopeMod) {
		return nil
	}
	return custom_errors.ErrNotTagOwner
}

// MayEditDeprecation allows moderators to toggle the deprecated flag.
func (g *AuthGate) MayEditDeprecation(user model.AuthUser) error {
	if !user.Authenticated {
		return custom_errors.ErrUnauthenticated
	}
	if !user.HasScope(model.ScopeMod) {
		return custom_errors.ErrInsufficientScope
	}
	return nil
}

// MayInherit allows administrators to create inheritance edges.
func (g *AuthGate) MayInherit(user model.AuthUser) error {
	if !user.Authenticated {
		return custom_errors.ErrUnauthenticated
	}
	if !user.HasScope(model.ScopeAdmin) {
		return custom_errors.ErrInsufficientScope
	}
	return nil
}

// MayRemoveInheritance allows administrators to delete inheritance edges.
func (g *AuthGate) MayRemoveInheritance(user model.AuthUser) error {
	if !user.Authenticated {
		return custom_errors.ErrUnauthenticated
	}
	if !user.HasScope(model.ScopeAdmin) {
		return custom_errors.ErrInsufficientScope
	}
	return nil
}

// MaySeePostTags reports whether the caller can read the tags of a post.
// Public and unlisted posts are visible to anyone, private posts only to
// their uploader. Callers map a denial to NotFound so that post existence
// is not leaked.
func (g *AuthGate) MaySeePostTags(user model.AuthUser, post *model.InternalPost) bool {
	if post.Privacy == model.PrivacyPublic || post.Privacy == model.PrivacyUnlisted {
		return true
	}
	return user.Authenticated && post.UserID == user.ID
}
