package tag_service

import (
	"context"
	"errors"
	"log/slog"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"
	"pinstack-tag-service/internal/domain/ports/output/cache"
	"pinstack-tag-service/internal/domain/ports/output/client"

	"golang.org/x/sync/errgroup"
)

// Projector turns storage-form tags into the public form: the owner id is
// resolved through the user service and the usage counter is attached. The
// counter is advisory, so a failed counter read degrades to zero instead of
// failing the whole projection.
type Projector struct {
	userClient client.UserClient
	counters   cache.CounterStore
	log        ports.Logger
}

func NewProjector(userClient client.UserClient, counters cache.CounterStore, log ports.Logger) *Projector {
	return &Projector{
		userClient: userClient,
		counters:   counters,
		log:        log,
	}
}

// Tag projects a single tag. A tag whose owner no longer exists is served
// without an owner rather than failing.
func (p *Projector) Tag(ctx context.Context, itag *model.InternalTag) (*model.Tag, error) {
	tag := &model.Tag{
		Tag:           itag.Name,
		Group:         itag.Group,
		Deprecated:    itag.Deprecated,
		InheritedTags: itag.InheritedTags,
		Description:   itag.Description,
	}
	if tag.InheritedTags == nil {
		tag.InheritedTags = []string{}
	}

	if itag.OwnerID != nil {
		owner, err := p.userClient.GetUserByID(ctx, *itag.OwnerID)
		switch {
		case err == nil:
			tag.Owner = owner.Portable()
		case errors.Is(err, custom_errors.ErrUserNotFound):
			p.log.Warn("Tag owner no longer exists",
				slog.String("tag", itag.Name),
				slog.Int64("owner_id", *itag.OwnerID))
		default:
			p.log.Error("Failed to resolve tag owner",
				slog.String("tag", itag.Name),
				slog.Int64("owner_id", *itag.OwnerID),
				slog.String("error", err.Error()))
			return nil, custom_errors.ErrExternalServiceError
		}
	}

	count, err := p.counters.Get(ctx, itag.Name)
	if err != nil {
		p.log.Warn("Failed to read tag counter",
			slog.String("tag", itag.Name),
			slog.String("error", err.Error()))
	} else {
		tag.Count = count
	}

	return tag, nil
}

// Tags projects a batch concurrently, preserving input order.
func (p *Projector) Tags(ctx context.Context, itags []*model.InternalTag) ([]*model.Tag, error) {
	result := make([]*model.Tag, len(itags))
	g, gctx := errgroup.WithContext(ctx)
	for i, itag := range itags {
		g.Go(func() error {
			tag, err := p.Tag(gctx, itag)
			if err != nil {
				return err
			}
			result[i] = tag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
