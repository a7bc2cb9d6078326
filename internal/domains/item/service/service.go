package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"shareit/config"
	"shareit/infras/otel"
	bookingService "shareit/internal/domains/booking/service"
	commentDto "shareit/internal/domains/comment/model/dto"
	commentModel "shareit/internal/domains/comment/model"
	commentRepository "shareit/internal/domains/comment/repository"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/repository"
	requestModel "shareit/internal/domains/request/model"
	requestRepository "shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepository "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/cache"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

const cacheSearchItem = "item:search"

var ErrNotItemOwner = failure.Forbidden("only the item owner can update an item")

type Item interface {
	Create(ctx context.Context, ownerID int64, req dto.CreateItemRequest) (dto.ItemResponse, error)
	Update(ctx context.Context, ownerID, itemID int64, req dto.UpdateItemRequest) (dto.ItemResponse, error)
	GetByID(ctx context.Context, viewerID, itemID int64) (dto.ItemDetailResponse, error)
	GetOwn(ctx context.Context, ownerID int64, params gDto.QueryParams) (dto.GetItemDetailsResponse, error)
	Search(ctx context.Context, text string, params gDto.QueryParams) (dto.GetItemsResponse, error)
}

type serviceImpl struct {
	repo        repository.Item
	userRepo    userRepository.User
	requestRepo requestRepository.ItemRequest
	commentRepo commentRepository.Comment
	projection  bookingService.Projection
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Item,
	userRepo userRepository.User,
	requestRepo requestRepository.ItemRequest,
	commentRepo commentRepository.Comment,
	projection bookingService.Projection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Item {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		commentRepo: commentRepo,
		projection:  projection,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, ownerID int64, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUser(ctx, ownerID); err != nil {
		return res, err
	}

	if req.RequestID != nil {
		exist, err := s.requestRepo.Exist(ctx, shared.FilterByID(*req.RequestID, requestModel.FieldID, requestModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if item request exists")

			return res, fmt.Errorf("failed to check if item request exists: %w", err)
		}

		if !exist {
			return res, failure.NotFound("item request not found") //nolint:wrapcheck
		}
	}

	item := req.ToModel(ownerID)

	id, err := s.repo.Create(ctx, item)
	if err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	item.ID = id
	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchItem)
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, ownerID, itemID int64, req dto.UpdateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return res, err
	}

	if item.OwnerID != ownerID {
		return res, ErrNotItemOwner
	}

	if req.Name != "" {
		item.Name = req.Name
	}

	if req.Description != "" {
		item.Description = req.Description
	}

	if req.Available != nil {
		item.Available = *req.Available
	}

	updatedFields := shared.TransformFields(req)
	if len(updatedFields) > 0 {
		if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(itemID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update item")

			return res, fmt.Errorf("failed to update item: %w", err)
		}
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchItem)
	}()

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, viewerID, itemID int64) (res dto.ItemDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return res, err
	}

	return s.detail(ctx, viewerID, item)
}

func (s *serviceImpl) GetOwn(ctx context.Context, ownerID int64, params gDto.QueryParams) (res dto.GetItemDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUser(ctx, ownerID); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    ownerID,
				Table:    model.TableName,
			},
		},
	}

	params.SortBy = model.TableName + "." + model.FieldID
	params.SortDir = gDto.SortDirAsc

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get own items")

		return res, fmt.Errorf("failed to get own items: %w", err)
	}

	res.Items = make([]dto.ItemDetailResponse, len(items))

	for i, item := range items {
		detail, err := s.detail(ctx, ownerID, item)
		if err != nil {
			return res, err
		}

		res.Items[i] = detail
	}

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, text string, params gDto.QueryParams) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	// A blank query is answered without touching the store.
	if strings.TrimSpace(text) == "" {
		res.Items = []dto.ItemResponse{}

		return res, nil
	}

	cacheKey := shared.BuildCacheKey(cacheSearchItem, text, strconv.Itoa(params.Offset), strconv.Itoa(params.Limit))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for item search")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldName,
						Operator: gDto.FilterOperatorLike,
						Value:    text,
						Table:    model.TableName,
					},
					gDto.Filter{
						Field:    model.FieldDescription,
						Operator: gDto.FilterOperatorLike,
						Value:    text,
						Table:    model.TableName,
					},
				},
			},
		},
	}

	params.SortBy = model.TableName + "." + model.FieldID
	params.SortDir = gDto.SortDirAsc

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search items")

		return res, fmt.Errorf("failed to search items: %w", err)
	}

	res.FromModels(items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save item search to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) detail(ctx context.Context, viewerID int64, item model.Item) (res dto.ItemDetailResponse, err error) {
	last, err := s.projection.ClosestPast(ctx, viewerID, item.ID)
	if err != nil {
		return res, err
	}

	next, err := s.projection.NearestFuture(ctx, viewerID, item.ID)
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    commentModel.FieldItemID,
				Operator: gDto.FilterOperatorEq,
				Value:    item.ID,
				Table:    commentModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  commentModel.TableName + "." + commentModel.FieldCreated,
		SortDir: gDto.SortDirAsc,
	}

	comments, err := s.commentRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item comments")

		return res, fmt.Errorf("failed to get item comments: %w", err)
	}

	res.FromModel(item, last, next, commentDto.CommentsFromModels(comments))

	return res, nil
}

func (s *serviceImpl) getItem(ctx context.Context, itemID int64) (model.Item, error) {
	item, err := s.repo.Get(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return item, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 {
		return item, failure.NotFound("item not found") //nolint:wrapcheck
	}

	return item, nil
}

func (s *serviceImpl) ensureUser(ctx context.Context, userID int64) error {
	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	return nil
}
