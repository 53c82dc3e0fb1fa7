package tag_http

import (
	tag_service "pinstack-tag-service/internal/domain/ports/input/tag"
	ports "pinstack-tag-service/internal/domain/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TagAPI aggregates the per-operation handlers and owns the route table.
type TagAPI struct {
	addTags           *AddTagsHandler
	removeTags        *RemoveTagsHandler
	inheritTag        *InheritTagHandler
	removeInheritance *RemoveInheritanceHandler
	updateTag         *UpdateTagHandler
	getTag            *GetTagHandler
	fetchTags         *FetchTagsHandler
	lookupTags        *LookupTagsHandler
	getUserTags       *GetUserTagsHandler
	frequentlyUsed    *FrequentlyUsedHandler
	internalTags      *InternalTagsHandler
}

func NewTagAPI(tagService tag_service.Service, log ports.Logger) *TagAPI {
	validate := validator.New()
	return &TagAPI{
		addTags:           NewAddTagsHandler(tagService, validate, log),
		removeTags:        NewRemoveTagsHandler(tagService, validate, log),
		inheritTag:        NewInheritTagHandler(tagService, validate, log),
		removeInheritance: NewRemoveInheritanceHandler(tagService, validate, log),
		updateTag:         NewUpdateTagHandler(tagService, validate, log),
		getTag:            NewGetTagHandler(tagService, log),
		fetchTags:         NewFetchTagsHandler(tagService, log),
		lookupTags:        NewLookupTagsHandler(tagService, log),
		getUserTags:       NewGetUserTagsHandler(tagService, log),
		frequentlyUsed:    NewFrequentlyUsedHandler(tagService, log),
		internalTags:      NewInternalTagsHandler(tagService, log),
	}
}

// RegisterRoutes attaches the public tag surface to the given group.
func (a *TagAPI) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/add_tags", a.addTags.Handle)
	rg.POST("/remove_tags", a.removeTags.Handle)
	rg.POST("/inherit_tag", a.inheritTag.Handle)
	rg.POST("/remove_inheritance", a.removeInheritance.Handle)
	rg.PATCH("/tag/:tag", a.updateTag.Handle)
	rg.GET("/tag/:tag", a.getTag.Handle)
	rg.GET("/fetch_tags/:post_id", a.fetchTags.Handle)
	rg.POST("/lookup_tags", a.lookupTags.Handle)
	rg.GET("/get_user_tags/:handle", a.getUserTags.Handle)
	rg.GET("/frequently_used", a.frequentlyUsed.Handle)
}

// RegisterInternalRoutes attaches the service-to-service surface. The caller
// is expected to guard the group with the internal-scope middleware.
func (a *TagAPI) RegisterInternalRoutes(rg *gin.RouterGroup) {
	rg.GET("/tags/:post_id", a.internalTags.Handle)
}
