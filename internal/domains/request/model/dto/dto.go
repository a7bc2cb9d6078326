package dto

import (
	"time"

	itemModel "shareit/internal/domains/item/model"
	"shareit/internal/domains/request/model"
	"shareit/shared/constant"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" validate:"required,max=500"`
}

func (c *CreateItemRequestRequest) ToModel(requesterID int64, now time.Time) model.ItemRequest {
	return model.ItemRequest{
		Description: c.Description,
		RequesterID: requesterID,
		Created:     now,
	}
}

// RequestedItemResponse is an item offered in answer to an item request.
type RequestedItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId"`
}

func (r *RequestedItemResponse) FromModel(item itemModel.Item) {
	r.ID = item.ID
	r.Name = item.Name
	r.Description = item.Description
	r.Available = item.Available
	r.OwnerID = item.OwnerID
	r.RequestID = item.RequestID
}

type ItemRequestResponse struct {
	ID          int64                   `json:"id"`
	Description string                  `json:"description"`
	Created     string                  `json:"created"`
	Items       []RequestedItemResponse `json:"items"`
}

func (r *ItemRequestResponse) FromModel(request model.ItemRequest, items []itemModel.Item) {
	r.ID = request.ID
	r.Description = request.Description
	r.Created = request.Created.Format(constant.DateFormat)
	r.Items = make([]RequestedItemResponse, len(items))

	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type GetItemRequestsResponse struct {
	Requests []ItemRequestResponse `json:"requests"`
}

func (r *GetItemRequestsResponse) FromModels(requests []model.ItemRequest, itemsByRequest map[int64][]itemModel.Item) {
	r.Requests = make([]ItemRequestResponse, len(requests))
	for i, request := range requests {
		r.Requests[i].FromModel(request, itemsByRequest[request.ID])
	}
}
