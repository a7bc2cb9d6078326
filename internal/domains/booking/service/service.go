package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"shareit/config"
	"shareit/infras/kafka"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepository "shareit/internal/domains/item/repository"
	userModel "shareit/internal/domains/user/model"
	userRepository "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

// Booking lifecycle events published on the booking topic.
const (
	EventBookingCreated  = "booking.created"
	EventBookingApproved = "booking.approved"
	EventBookingRejected = "booking.rejected"
)

type Booking interface {
	Create(ctx context.Context, bookerID int64, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Decide(ctx context.Context, ownerID, bookingID int64, approve bool) (dto.BookingResponse, error)
	GetByID(ctx context.Context, viewerID, bookingID int64) (dto.BookingResponse, error)
	GetForBooker(ctx context.Context, bookerID int64, state string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetForOwner(ctx context.Context, ownerID int64, state string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	userRepo userRepository.User
	itemRepo itemRepository.Item
	clock    clock.Clock
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Booking, userRepo userRepository.User, itemRepo itemRepository.Item, clk clock.Clock, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		clock:    clk,
		kafka:    kafkaClient,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, bookerID int64, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUser(ctx, bookerID); err != nil {
		return res, err
	}

	start, end, err := req.Window()
	if err != nil {
		return res, err
	}

	if err = ValidateWindow(start, end, s.clock.Now()); err != nil {
		return res, err
	}

	item, err := s.itemRepo.Get(ctx, shared.FilterByID(req.ItemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 {
		return res, failure.NotFound("item not found") //nolint:wrapcheck
	}

	// The owner branch wins over availability: the owner of an unavailable
	// item still gets the self-reservation failure.
	if item.OwnerID == bookerID {
		return res, ErrSelfReservation
	}

	if !item.Available {
		return res, ErrItemUnavailable
	}

	booking := req.ToModel(bookerID, start, end)

	id, err := s.repo.Create(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = id
	booking.ItemName = item.Name
	booking.OwnerID = item.OwnerID

	s.publishEvent(ctx, EventBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Decide(ctx context.Context, ownerID, bookingID int64, approve bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Decide")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.OwnerID != ownerID {
		return res, ErrNotOwner
	}

	if booking.Status != model.StatusWaiting {
		return res, ErrAlreadyDecided
	}

	status := model.StatusApproved
	event := EventBookingApproved

	if !approve {
		status = model.StatusRejected
		event = EventBookingRejected
	}

	// Compare-and-set on the WAITING status. Losing the race to a concurrent
	// decision surfaces as the same invalid-transition failure.
	ok, err := s.repo.Transition(ctx, bookingID, model.StatusWaiting, status)
	if err != nil {
		log.Error().Err(err).Msg("failed to transition booking")

		return res, fmt.Errorf("failed to transition booking: %w", err)
	}

	if !ok {
		return res, ErrAlreadyDecided
	}

	booking.Status = status

	s.publishEvent(ctx, event, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, viewerID, bookingID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.BookerID != viewerID && booking.OwnerID != viewerID {
		return res, ErrNoAccess
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetForBooker(ctx context.Context, bookerID int64, state string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetForBooker")
	defer scope.End()
	defer scope.TraceIfError(err)

	keyFilter := gDto.Filter{
		Field:    model.FieldBookerID,
		Operator: gDto.FilterOperatorEq,
		Value:    bookerID,
		Table:    model.TableName,
	}

	return s.list(ctx, bookerID, keyFilter, state, params)
}

func (s *serviceImpl) GetForOwner(ctx context.Context, ownerID int64, state string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetForOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	keyFilter := gDto.Filter{
		Field:    itemModel.FieldOwnerID,
		Operator: gDto.FilterOperatorEq,
		Value:    ownerID,
		Table:    itemModel.TableName,
	}

	return s.list(ctx, ownerID, keyFilter, state, params)
}

func (s *serviceImpl) list(ctx context.Context, userID int64, keyFilter gDto.Filter, state string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	bucket, err := bucketFilters(state, s.clock.Now())
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  append([]any{keyFilter}, bucket...),
	}

	params.SortBy = model.TableName + "." + model.FieldStartDate
	params.SortDir = gDto.SortDirDesc

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, bookingID int64) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
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

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   strconv.FormatInt(booking.ID, 10),
			Value: dto.NewBookingEvent(event, booking),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("event", event).Int64("bookingId", booking.ID).Msg("failed to publish booking event")
		}
	}()
}
