package dto

import (
	bookingDto "shareit/internal/domains/booking/model/dto"
	commentDto "shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/item/model"
)

type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=1000"`
	Available   *bool  `json:"available"   validate:"required"`
	RequestID   *int64 `json:"requestId"   validate:"omitempty,gt=0"`
}

func (c *CreateItemRequest) ToModel(ownerID int64) model.Item {
	return model.Item{
		Name:        c.Name,
		Description: c.Description,
		Available:   *c.Available,
		OwnerID:     ownerID,
		RequestID:   c.RequestID,
	}
}

type UpdateItemRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	Available   *bool  `db:"available"   json:"available"   validate:"omitempty"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId"`
}

func (r *ItemResponse) FromModel(item model.Item) {
	r.ID = item.ID
	r.Name = item.Name
	r.Description = item.Description
	r.Available = item.Available
	r.OwnerID = item.OwnerID
	r.RequestID = item.RequestID
}

type GetItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

func (r *GetItemsResponse) FromModels(items []model.Item) {
	r.Items = make([]ItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

// ItemDetailResponse is the full item view: the item itself, the owner-only
// booking projections, and the item's comments.
type ItemDetailResponse struct {
	ID          int64                          `json:"id"`
	Name        string                         `json:"name"`
	Description string                         `json:"description"`
	Available   bool                           `json:"available"`
	RequestID   *int64                         `json:"requestId"`
	LastBooking *bookingDto.ItemBookingResponse `json:"lastBooking"`
	NextBooking *bookingDto.ItemBookingResponse `json:"nextBooking"`
	Comments    []commentDto.CommentResponse    `json:"comments"`
}

func (r *ItemDetailResponse) FromModel(item model.Item, last, next *bookingDto.ItemBookingResponse, comments []commentDto.CommentResponse) {
	r.ID = item.ID
	r.Name = item.Name
	r.Description = item.Description
	r.Available = item.Available
	r.RequestID = item.RequestID
	r.LastBooking = last
	r.NextBooking = next
	r.Comments = comments
}

type GetItemDetailsResponse struct {
	Items []ItemDetailResponse `json:"items"`
}
