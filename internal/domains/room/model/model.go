package model

import "inn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
	FieldStatus      = "status"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
)

// RoomType is the commercial category of a room.
type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeDeluxe RoomType = "Deluxe"
	RoomTypeSuite  RoomType = "Suite"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeDeluxe, RoomTypeSuite:
		return true
	default:
		return false
	}
}

// RoomStatus is the coarse operational flag set by admins. It is
// deliberately not derived from bookings; availability for a date range is
// answered by the booking ledger.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusMaintenance RoomStatus = "Maintenance"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	default:
		return false
	}
}

type Room struct {
	ID          string     `db:"id"`
	RoomNumber  string     `db:"room_number"`
	RoomType    RoomType   `db:"room_type"`
	Price       float64    `db:"price"`
	Status      RoomStatus `db:"status"`
	Description string     `db:"description"`
	ImageURL    string     `db:"image_url"`
	model.Metadata
}
