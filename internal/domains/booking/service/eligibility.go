package service

//go:generate go run go.uber.org/mock/mockgen -source=./eligibility.go -destination=../mocks/eligibility_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/repository"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
)

// Eligibility decides whether a user may comment on an item. Any booking by
// the user on the item that has already ended qualifies, regardless of its
// status.
type Eligibility interface {
	CanComment(ctx context.Context, userID, itemID int64) (bool, error)
}

type eligibilityImpl struct {
	repo  repository.Booking
	clock clock.Clock
	otel  otel.Otel
}

func NewEligibility(repo repository.Booking, clk clock.Clock, otel otel.Otel) Eligibility {
	return &eligibilityImpl{
		repo:  repo,
		clock: clk,
		otel:  otel,
	}
}

func (e *eligibilityImpl) CanComment(ctx context.Context, userID, itemID int64) (ok bool, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CanComment")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookerID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldItemID,
				Operator: gDto.FilterOperatorEq,
				Value:    itemID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				Operator: gDto.FilterOperatorLess,
				Value:    e.clock.Now(),
				Table:    model.TableName,
			},
		},
	}

	ok, err = e.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check comment eligibility")

		return false, fmt.Errorf("failed to check comment eligibility: %w", err)
	}

	return ok, nil
}
