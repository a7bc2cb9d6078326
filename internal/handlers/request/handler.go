package request

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"shareit/infras/otel"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/service"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/validator"
	"shareit/transport/http/response"
)

type Handler struct {
	service service.ItemRequest
	otel    otel.Otel
}

func New(service service.ItemRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItemRequest)
		routerGroup.Get("/", handler.GetOwnItemRequests)
		routerGroup.Get("/all", handler.GetAllItemRequests)
		routerGroup.Get("/{requestId}", handler.GetItemRequestByID)
	})
}

// CreateItemRequest records a wish for an item that is not listed yet.
func (handler *Handler) CreateItemRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItemRequest")
	defer scope.End()

	userID, err := shared.UserIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.CreateItemRequestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	itemRequest, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item request created successfully")

	response.WithJSON(w, http.StatusCreated, itemRequest)
}

func (handler *Handler) GetOwnItemRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnItemRequests")
	defer scope.End()

	userID, err := shared.UserIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	requests, err := handler.service.GetOwn(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own item requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, requests)
}

func (handler *Handler) GetAllItemRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllItemRequests")
	defer scope.End()

	userID, err := shared.UserIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	requests, err := handler.service.GetAll(ctx, userID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, requests)
}

func (handler *Handler) GetItemRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemRequestByID")
	defer scope.End()

	userID, err := shared.UserIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	requestID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamRequestID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	itemRequest, err := handler.service.GetByID(ctx, userID, requestID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item request by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, itemRequest)
}
