package service

//go:generate go run go.uber.org/mock/mockgen -source=./projection.go -destination=../mocks/projection_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepository "shareit/internal/domains/item/repository"
	"shareit/shared"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

// Projection derives the closest past and nearest future APPROVED bookings of
// an item. Both views are owner-only: any other viewer gets nil rather than
// an error, so booking existence never leaks through an item view.
type Projection interface {
	ClosestPast(ctx context.Context, viewerID, itemID int64) (*dto.ItemBookingResponse, error)
	NearestFuture(ctx context.Context, viewerID, itemID int64) (*dto.ItemBookingResponse, error)
}

type projectionImpl struct {
	repo     repository.Booking
	itemRepo itemRepository.Item
	clock    clock.Clock
	otel     otel.Otel
}

func NewProjection(repo repository.Booking, itemRepo itemRepository.Item, clk clock.Clock, otel otel.Otel) Projection {
	return &projectionImpl{
		repo:     repo,
		itemRepo: itemRepo,
		clock:    clk,
		otel:     otel,
	}
}

func (p *projectionImpl) ClosestPast(ctx context.Context, viewerID, itemID int64) (res *dto.ItemBookingResponse, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ClosestPast")
	defer scope.End()
	defer scope.TraceIfError(err)

	return p.project(ctx, viewerID, itemID, gDto.FilterOperatorLessEq, gDto.SortDirDesc)
}

func (p *projectionImpl) NearestFuture(ctx context.Context, viewerID, itemID int64) (res *dto.ItemBookingResponse, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.NearestFuture")
	defer scope.End()
	defer scope.TraceIfError(err)

	return p.project(ctx, viewerID, itemID, gDto.FilterOperatorGreater, gDto.SortDirAsc)
}

func (p *projectionImpl) project(ctx context.Context, viewerID, itemID int64, startOperator, sortDir string) (*dto.ItemBookingResponse, error) {
	item, err := p.itemRepo.Get(ctx, shared.FilterByID(itemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 {
		return nil, failure.NotFound("item not found") //nolint:wrapcheck
	}

	if item.OwnerID != viewerID {
		return nil, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemID,
				Operator: gDto.FilterOperatorEq,
				Value:    itemID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusApproved,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartDate,
				Operator: startOperator,
				Value:    p.clock.Now(),
				Table:    model.TableName,
			},
		},
	}

	booking, err := p.repo.First(ctx, filter, model.TableName+"."+model.FieldStartDate, sortDir)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking projection")

		return nil, fmt.Errorf("failed to get booking projection: %w", err)
	}

	if booking.ID == 0 {
		return nil, nil
	}

	res := &dto.ItemBookingResponse{}
	res.FromModel(booking)

	return res, nil
}
