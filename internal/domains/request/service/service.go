package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"shareit/config"
	"shareit/infras/otel"
	itemModel "shareit/internal/domains/item/model"
	itemRepository "shareit/internal/domains/item/repository"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepository "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

type ItemRequest interface {
	Create(ctx context.Context, userID int64, req dto.CreateItemRequestRequest) (dto.ItemRequestResponse, error)
	GetOwn(ctx context.Context, userID int64) (dto.GetItemRequestsResponse, error)
	GetAll(ctx context.Context, userID int64, params gDto.QueryParams) (dto.GetItemRequestsResponse, error)
	GetByID(ctx context.Context, userID, requestID int64) (dto.ItemRequestResponse, error)
}

type serviceImpl struct {
	repo     repository.ItemRequest
	userRepo userRepository.User
	itemRepo itemRepository.Item
	clock    clock.Clock
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.ItemRequest, userRepo userRepository.User, itemRepo itemRepository.Item, clk clock.Clock, cfg *config.Config, otel otel.Otel) ItemRequest {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		clock:    clk,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, userID int64, req dto.CreateItemRequestRequest) (res dto.ItemRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	request := req.ToModel(userID, s.clock.Now())

	id, err := s.repo.Create(ctx, request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create item request")

		return res, fmt.Errorf("failed to create item request: %w", err)
	}

	request.ID = id
	res.FromModel(request, nil)

	return res, nil
}

func (s *serviceImpl) GetOwn(ctx context.Context, userID int64) (res dto.GetItemRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	requests, err := s.repo.GetAll(ctx, requestOrdering(gDto.QueryParams{}), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get own item requests")

		return res, fmt.Errorf("failed to get own item requests: %w", err)
	}

	itemsByRequest, err := s.itemsByRequest(ctx, requests)
	if err != nil {
		return res, err
	}

	res.FromModels(requests, itemsByRequest)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, userID int64, params gDto.QueryParams) (res dto.GetItemRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Operator: gDto.FilterOperatorNotEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	requests, err := s.repo.GetAll(ctx, requestOrdering(params), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item requests")

		return res, fmt.Errorf("failed to get item requests: %w", err)
	}

	itemsByRequest, err := s.itemsByRequest(ctx, requests)
	if err != nil {
		return res, err
	}

	res.FromModels(requests, itemsByRequest)

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, userID, requestID int64) (res dto.ItemRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(requestID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item request")

		return res, fmt.Errorf("failed to get item request: %w", err)
	}

	if request.ID == 0 {
		return res, failure.NotFound("item request not found") //nolint:wrapcheck
	}

	itemsByRequest, err := s.itemsByRequest(ctx, []model.ItemRequest{request})
	if err != nil {
		return res, err
	}

	res.FromModel(request, itemsByRequest[request.ID])

	return res, nil
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

// itemsByRequest loads every item offered for the given requests, grouped by
// the request they answer.
func (s *serviceImpl) itemsByRequest(ctx context.Context, requests []model.ItemRequest) (map[int64][]itemModel.Item, error) {
	if len(requests) == 0 {
		return map[int64][]itemModel.Item{}, nil
	}

	ids := make([]int64, len(requests))
	for i, request := range requests {
		ids[i] = request.ID
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    itemModel.FieldRequestID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    itemModel.TableName,
			},
		},
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get items for requests")

		return nil, fmt.Errorf("failed to get items for requests: %w", err)
	}

	itemsByRequest := make(map[int64][]itemModel.Item, len(requests))

	for _, item := range items {
		if item.RequestID == nil {
			continue
		}

		itemsByRequest[*item.RequestID] = append(itemsByRequest[*item.RequestID], item)
	}

	return itemsByRequest, nil
}

func requestOrdering(params gDto.QueryParams) gDto.QueryParams {
	params.SortBy = model.TableName + "." + model.FieldCreated
	params.SortDir = gDto.SortDirDesc

	return params
}
