package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"shareit/config"
	"shareit/infras/otel"
	bookingService "shareit/internal/domains/booking/service"
	"shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/comment/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepository "shareit/internal/domains/item/repository"
	userModel "shareit/internal/domains/user/model"
	userRepository "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/clock"
	"shareit/shared/constant"
	"shareit/shared/failure"
)

var ErrCommentNotAllowed = failure.BadRequestFromString("commenting requires a finished booking of the item")

type Comment interface {
	Create(ctx context.Context, authorID, itemID int64, req dto.CreateCommentRequest) (dto.CommentResponse, error)
}

type serviceImpl struct {
	repo        repository.Comment
	userRepo    userRepository.User
	itemRepo    itemRepository.Item
	eligibility bookingService.Eligibility
	clock       clock.Clock
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Comment,
	userRepo userRepository.User,
	itemRepo itemRepository.Item,
	eligibility bookingService.Eligibility,
	clk clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Comment {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		eligibility: eligibility,
		clock:       clk,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, authorID, itemID int64, req dto.CreateCommentRequest) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	author, err := s.userRepo.Get(ctx, shared.FilterByID(authorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get comment author")

		return res, fmt.Errorf("failed to get comment author: %w", err)
	}

	if author.ID == 0 {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	exist, err := s.itemRepo.Exist(ctx, shared.FilterByID(itemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if item exists")

		return res, fmt.Errorf("failed to check if item exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("item not found") //nolint:wrapcheck
	}

	allowed, err := s.eligibility.CanComment(ctx, authorID, itemID)
	if err != nil {
		return res, err
	}

	if !allowed {
		return res, ErrCommentNotAllowed
	}

	comment := req.ToModel(itemID, authorID, s.clock.Now())

	id, err := s.repo.Create(ctx, comment)
	if err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	comment.ID = id
	comment.AuthorName = author.Name

	res.FromModel(comment)

	return res, nil
}
