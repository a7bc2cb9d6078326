package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/booking/model"
	gDto "shareit/shared/dto"
	gRepo "shareit/shared/repository"
)

type Booking interface {
	Create(ctx context.Context, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	First(ctx context.Context, filter gDto.FilterGroup, sortBy, sortDir string) (model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Transition(ctx context.Context, bookingID int64, from, to string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Create(ctx context.Context, model model.Booking) (int64, error) {
	return repo.InsertReturningID(ctx, model)
}

// First returns the single best booking under the given ordering, or a zero
// model when none matches.
func (repo *repositoryImpl) First(ctx context.Context, filter gDto.FilterGroup, sortBy, sortDir string) (model.Booking, error) {
	params := gDto.QueryParams{Limit: 1, SortBy: sortBy, SortDir: sortDir}

	bookings, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return model.Booking{}, err
	}

	if len(bookings) == 0 {
		return model.Booking{}, nil
	}

	return bookings[0], nil
}

// Transition moves a booking from one status to another in a single
// conditional update. It reports false when no row matched, which means the
// booking was already decided by a concurrent request.
func (repo *repositoryImpl) Transition(ctx context.Context, bookingID int64, from, to string) (bool, error) {
	affected, err := repo.UpdateChecked(ctx, map[string]any{model.FieldStatus: to}, transitionFilter(bookingID, from))
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// transitionFilter guards the update on the current status. The guard binds
// under its own arg name so the SET value cannot clobber it when the named
// args are merged.
func transitionFilter(bookingID int64, from string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
			},
			gDto.Filter{
				ArgName:  "status_from",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    from,
			},
		},
	}
}
