package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldItemID    = "item_id"
	FieldBookerID  = "booker_id"
	FieldStatus    = "status"

	FieldItemName    = "name"
	FieldItemOwnerID = "owner_id"
)

// Booking statuses. A booking is created WAITING and moves exactly once to
// APPROVED or REJECTED; both are terminal. Bookings are never deleted.
const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Booking struct {
	ID        int64     `db:"id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	ItemID    int64     `db:"item_id"`
	BookerID  int64     `db:"booker_id"`
	Status    string    `db:"status"`
	ItemName  string    `db:"item_name"    table:"items" column:"name"`
	OwnerID   int64     `db:"item_owner_id" table:"items" column:"owner_id"`
}

func (Booking) GetJoinQuery() string {
	return "JOIN items ON items.id = bookings.item_id"
}
