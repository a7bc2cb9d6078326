package service

import (
	"strings"
	"time"

	"shareit/internal/domains/booking/model"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

var (
	ErrPastDate         = failure.BadRequestFromString("booking window must not start or end in the past")
	ErrEndBeforeStart   = failure.BadRequestFromString("booking end date is before its start date")
	ErrEndEqualsStart   = failure.BadRequestFromString("booking end date equals its start date")
	ErrSelfReservation  = failure.Forbidden("owner cannot book their own item")
	ErrItemUnavailable  = failure.BadRequestFromString("item is not available for booking")
	ErrAlreadyDecided   = failure.BadRequestFromString("booking has already been decided")
	ErrNotOwner         = failure.Forbidden("only the item owner can decide a booking")
	ErrNoAccess         = failure.Forbidden("only the booker or the item owner can view a booking")
	ErrUnsupportedState = failure.BadRequestFromString("Unknown state: UNSUPPORTED_STATUS")
)

// Booking list state tokens, matched case-insensitively.
const (
	StateAll      = "ALL"
	StateCurrent  = "CURRENT"
	StatePast     = "PAST"
	StateFuture   = "FUTURE"
	StateWaiting  = "WAITING"
	StateApproved = "APPROVED"
	StateRejected = "REJECTED"
)

// ValidateWindow checks a proposed booking window against the current instant
// and against itself. The checks run in a fixed order: past dates first, then
// ordering, then the degenerate equal-instant window.
func ValidateWindow(start, end, now time.Time) error {
	if start.Before(now) || end.Before(now) {
		return ErrPastDate
	}

	if end.Before(start) {
		return ErrEndBeforeStart
	}

	if end.Equal(start) {
		return ErrEndEqualsStart
	}

	return nil
}

// bucketFilters translates a state token into the temporal or status filters
// of the corresponding booking bucket. An empty token means ALL.
func bucketFilters(state string, now time.Time) ([]any, error) {
	if state == "" {
		state = StateAll
	}

	switch strings.ToUpper(state) {
	case StateAll:
		return nil, nil
	case StateCurrent:
		return []any{
			gDto.Filter{
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorLess,
				Value:    now,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				Operator: gDto.FilterOperatorGreater,
				Value:    now,
				Table:    model.TableName,
			},
		}, nil
	case StatePast:
		return []any{
			gDto.Filter{
				Field:    model.FieldEndDate,
				Operator: gDto.FilterOperatorLess,
				Value:    now,
				Table:    model.TableName,
			},
		}, nil
	case StateFuture:
		return []any{
			gDto.Filter{
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorGreater,
				Value:    now,
				Table:    model.TableName,
			},
		}, nil
	case StateWaiting, StateApproved, StateRejected:
		return []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToUpper(state),
				Table:    model.TableName,
			},
		}, nil
	default:
		return nil, ErrUnsupportedState
	}
}
