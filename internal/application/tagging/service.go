package tagging

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
	"go.uber.org/zap"
)

// ErrDuplicateLabel is returned when a tag with the same label exists
var ErrDuplicateLabel = shared.NewDomainError(shared.CodeAlreadyExists, "A tag with this label already exists.")

// ErrAlreadyTagged is returned when the tag is already attached to the entity
var ErrAlreadyTagged = shared.NewDomainError(shared.CodeAlreadyExists, "The entity already carries this tag.")

// TagService handles tags, tag associations and likes
type TagService struct {
	tagRepo   tagging.TagRepository
	itemRepo  tagging.TaggedItemRepository
	likeRepo  tagging.LikedItemRepository
	resolvers tagging.Resolvers
	logger    *zap.Logger
}

// NewTagService creates a new TagService
func NewTagService(
	tagRepo tagging.TagRepository,
	itemRepo tagging.TaggedItemRepository,
	likeRepo tagging.LikedItemRepository,
	resolvers tagging.Resolvers,
	logger *zap.Logger,
) *TagService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TagService{
		tagRepo:   tagRepo,
		itemRepo:  itemRepo,
		likeRepo:  likeRepo,
		resolvers: resolvers,
		logger:    logger,
	}
}

// CreateTag creates a new tag
func (s *TagService) CreateTag(ctx context.Context, req CreateTagRequest) (*TagResponse, error) {
	tag, err := tagging.NewTag(req.Label)
	if err != nil {
		return nil, err
	}

	exists, err := s.tagRepo.ExistsByLabel(ctx, tag.Label)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateLabel
	}

	if err := s.tagRepo.Save(ctx, tag); err != nil {
		return nil, err
	}
	response := ToTagResponse(tag)
	return &response, nil
}

// ListTags lists tags ordered by label
func (s *TagService) ListTags(ctx context.Context, filter TagListFilter) ([]TagResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		OrderBy:  "label",
		OrderDir: "asc",
	}

	tags, err := s.tagRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tagRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TagResponse, len(tags))
	for i := range tags {
		responses[i] = ToTagResponse(&tags[i])
	}
	return responses, total, nil
}

// DeleteTag deletes a tag together with its associations
func (s *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return tagging.ErrTagNotFound
		}
		return err
	}
	return nil
}

// TagsFor lists the tags attached to an entity
func (s *TagService) TagsFor(ctx context.Context, query EntityQuery) ([]TaggedItemResponse, error) {
	ref, err := parseQuery(query)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByEntity(ctx, ref)
	if err != nil {
		return nil, err
	}
	responses := make([]TaggedItemResponse, len(items))
	for i := range items {
		responses[i] = ToTaggedItemResponse(&items[i])
	}
	return responses, nil
}

// TagEntity attaches a tag to an entity after checking that the entity exists
func (s *TagService) TagEntity(ctx context.Context, req TagEntityRequest) (*TaggedItemResponse, error) {
	ref, err := tagging.NewEntityRef(req.Kind, req.ObjectID)
	if err != nil {
		return nil, err
	}
	if err := s.resolvers.Resolve(ctx, ref); err != nil {
		return nil, err
	}

	tag, err := s.tagRepo.FindByID(ctx, req.TagID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("No tag with the given ID was found.")
		}
		return nil, err
	}

	item := tagging.NewTaggedItem(tag, ref)
	if err := s.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrAlreadyTagged
		}
		return nil, err
	}

	response := ToTaggedItemResponse(item)
	return &response, nil
}

// UntagItem removes one tag association
func (s *TagService) UntagItem(ctx context.Context, id uuid.UUID) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return tagging.ErrTaggedItemNotFound
		}
		return err
	}
	return nil
}

// Like records that the actor likes an entity. Liking twice has no further effect.
func (s *TagService) Like(ctx context.Context, actor shared.Actor, req LikeRequest) (*LikeSummaryResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}
	ref, err := tagging.NewEntityRef(req.Kind, req.ObjectID)
	if err != nil {
		return nil, err
	}
	if err := s.resolvers.Resolve(ctx, ref); err != nil {
		return nil, err
	}

	like, err := tagging.NewLikedItem(actor.UserID, ref)
	if err != nil {
		return nil, err
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return s.summary(ctx, actor, ref)
}

// Unlike removes the actor's like of an entity
func (s *TagService) Unlike(ctx context.Context, actor shared.Actor, req LikeRequest) error {
	if !actor.IsAuthenticated() {
		return shared.ErrUnauthorized
	}
	ref, err := tagging.NewEntityRef(req.Kind, req.ObjectID)
	if err != nil {
		return err
	}
	if err := s.likeRepo.Delete(ctx, actor.UserID, ref); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return tagging.ErrLikeNotFound
		}
		return err
	}
	return nil
}

// LikeSummary reports the like count of an entity. Liked is only set for authenticated actors.
func (s *TagService) LikeSummary(ctx context.Context, actor shared.Actor, query EntityQuery) (*LikeSummaryResponse, error) {
	ref, err := parseQuery(query)
	if err != nil {
		return nil, err
	}
	return s.summary(ctx, actor, ref)
}

// RemoveEntity deletes every tag association and like that points at an entity.
// It is called when a taggable entity is deleted.
func (s *TagService) RemoveEntity(ctx context.Context, entity tagging.EntityRef) error {
	tags, err := s.itemRepo.DeleteByEntity(ctx, entity)
	if err != nil {
		return err
	}
	likes, err := s.likeRepo.DeleteByEntity(ctx, entity)
	if err != nil {
		return err
	}
	if tags > 0 || likes > 0 {
		s.logger.Debug("Removed tagging rows of deleted entity",
			zap.String("entity", entity.String()),
			zap.Int64("tagged_items", tags),
			zap.Int64("liked_items", likes),
		)
	}
	return nil
}

func (s *TagService) summary(ctx context.Context, actor shared.Actor, ref tagging.EntityRef) (*LikeSummaryResponse, error) {
	count, err := s.likeRepo.CountByEntity(ctx, ref)
	if err != nil {
		return nil, err
	}
	resp := &LikeSummaryResponse{
		Kind:     string(ref.Kind),
		ObjectID: ref.ID,
		Count:    count,
	}
	if actor.IsAuthenticated() {
		liked, err := s.likeRepo.ExistsForUser(ctx, actor.UserID, ref)
		if err != nil {
			return nil, err
		}
		resp.Liked = liked
	}
	return resp, nil
}

func parseQuery(query EntityQuery) (tagging.EntityRef, error) {
	id, err := uuid.Parse(query.ID)
	if err != nil {
		return tagging.EntityRef{}, shared.NewValidationError("id must be a valid UUID")
	}
	return tagging.NewEntityRef(query.Kind, id)
}
