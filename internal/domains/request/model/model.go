package model

import "time"

const (
	TableName  = "item_requests"
	EntityName = "item_request"

	FieldID          = "id"
	FieldDescription = "description"
	FieldRequesterID = "requester_id"
	FieldCreated     = "created"
)

type ItemRequest struct {
	ID          int64     `db:"id"`
	Description string    `db:"description"`
	RequesterID int64     `db:"requester_id"`
	Created     time.Time `db:"created"`
}
